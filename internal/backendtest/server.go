// Package backendtest runs an in-process fake of the diary backend for
// tests. It implements the user, diary and analysis routes with in-memory
// state and issues real HS256 tokens whose subject is the user's e-mail.
package backendtest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/mood"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DuplicateDetail is the rejection detail for a second entry on one date.
const DuplicateDetail = "오늘은 이미 일기를 작성하셨습니다."

const timestampLayout = "2006-01-02T15:04:05.000000"

var secret = []byte("backendtest")

type user struct {
	ID        int
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

type diary struct {
	ID        int
	Owner     string
	Title     string
	Content   string
	Emotion   string
	Date      string
	Empathy   string
	CreatedAt time.Time
}

// Request is a recorded inbound request.
type Request struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          map[string]any
}

// Server is the fake backend. Its URL is the API base URL.
type Server struct {
	URL string

	srv *httptest.Server

	mu         sync.Mutex
	users      map[string]*user
	diaries    []*diary
	nextID     int
	requests   []Request
	revoked    bool
	now        func() time.Time
	failNext   int
	failDetail string
}

// New starts a fake backend. It is closed with t's cleanup when t is non-nil.
func New(t interface{ Cleanup(func()) }) *Server {
	s := &Server{
		users:  make(map[string]*user),
		nextID: 1,
		now:    time.Now,
	}
	s.srv = httptest.NewServer(s.router())
	s.URL = s.srv.URL + "/api"
	if t != nil {
		t.Cleanup(s.Close)
	}
	return s
}

func (s *Server) Close() { s.srv.Close() }

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.record)

	api.HandleFunc("/user/", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/user/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/user/profile", s.authed(s.handleProfile)).Methods(http.MethodGet)
	api.HandleFunc("/user/{username}/change", s.authed(s.handleUpdateUser)).Methods(http.MethodPut)
	api.HandleFunc("/user/{username}/del", s.authed(s.handleDeleteUser)).Methods(http.MethodDelete)

	api.HandleFunc("/diaries/", s.authed(s.handleCreate)).Methods(http.MethodPost)
	api.HandleFunc("/diaries/read", s.authed(s.handleList)).Methods(http.MethodGet)
	api.HandleFunc("/diaries/{id}/read_Diary", s.authed(s.handleGet)).Methods(http.MethodGet)
	api.HandleFunc("/diaries/{id}/change", s.authed(s.handleUpdate)).Methods(http.MethodPut)
	api.HandleFunc("/diaries/{id}/del", s.authed(s.handleDelete)).Methods(http.MethodDelete)

	api.HandleFunc("/analyze_emotion", s.authed(s.handleAnalyze)).Methods(http.MethodPost)
	return r
}

// AddUser registers a user directly.
func (s *Server) AddUser(username, email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = &user{
		ID:        len(s.users) + 1,
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: s.now(),
	}
}

// AddDiary stores an entry for the user with the given e-mail and returns
// its id.
func (s *Server) AddDiary(email, title, content, emotion, date string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := &diary{
		ID: s.nextID, Owner: email, Title: title, Content: content,
		Emotion: emotion, Date: date, CreatedAt: s.now(),
	}
	s.nextID++
	s.diaries = append(s.diaries, d)
	return strconv.Itoa(d.ID)
}

// Token issues a valid token for email.
func (s *Server) Token(email string) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   email,
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	if err != nil {
		panic(err)
	}
	return tok
}

// RevokeTokens makes every authenticated route answer 401.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked = true
}

// FailNext makes the next request answer status with detail.
func (s *Server) FailNext(status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
	s.failDetail = detail
}

// SetNow fixes the clock used for created_at and default dates.
func (s *Server) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// DiaryCount returns the number of stored entries.
func (s *Server) DiaryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.diaries)
}

// HasUser reports whether a user with the given e-mail exists.
func (s *Server) HasUser(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[email]
	return ok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := Request{
			Method:        r.Method,
			Path:          strings.TrimPrefix(r.URL.Path, "/api"),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		}
		if r.Body != nil && r.ContentLength != 0 {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeDetail(w, http.StatusUnprocessableEntity, "invalid JSON body")
				return
			}
			rec.Body = body
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		status, detail := s.failNext, s.failDetail
		s.failNext, s.failDetail = 0, ""
		s.mu.Unlock()

		if status != 0 {
			writeDetail(w, status, detail)
			return
		}
		next.ServeHTTP(w, r.WithContext(withBody(r.Context(), rec.Body)))
	})
}

type handlerFunc func(w http.ResponseWriter, r *http.Request, u *user)

func (s *Server) authed(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := s.userFromRequest(r)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		h(w, r, u)
	}
}

func (s *Server) userFromRequest(r *http.Request) (*user, error) {
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return nil, errors.New("missing bearer token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.revoked {
		return nil, errors.New("revoked")
	}
	u, ok := s.users[claims.Subject]
	if !ok {
		return nil, errors.New("unknown subject")
	}
	return u, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func str(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

func (s *Server) diaryJSON(d *diary) map[string]any {
	return map[string]any{
		"id":               d.ID,
		"title":            d.Title,
		"content":          d.Content,
		"emotion_tag":      d.Emotion,
		"date":             d.Date,
		"empathy_response": d.Empathy,
		"feedback":         nil,
		"created_at":       d.CreatedAt.UTC().Format(timestampLayout),
	}
}

func (s *Server) findDiary(r *http.Request, u *user) (*diary, int) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return nil, http.StatusUnprocessableEntity
	}
	for _, d := range s.diaries {
		if d.ID == id && d.Owner == u.Email {
			return d, 0
		}
	}
	return nil, http.StatusNotFound
}

func analyze(content string) (emotion, empathy string) {
	m := mood.Classify(content)
	return string(m), fmt.Sprintf("오늘의 감정은 %s 이군요.", mood.Korean(m))
}
