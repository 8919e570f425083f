package backendtest

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
)

type bodyKey struct{}

func withBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey{}, body)
}

func bodyOf(r *http.Request) map[string]any {
	b, _ := r.Context().Value(bodyKey{}).(map[string]any)
	if b == nil {
		return map[string]any{}
	}
	return b
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	b := bodyOf(r)
	username, email, password := str(b, "username"), str(b, "email"), str(b, "password")
	if username == "" || email == "" || password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "username, email and password are required")
		return
	}

	s.mu.Lock()
	_, exists := s.users[email]
	s.mu.Unlock()
	if exists {
		writeDetail(w, http.StatusBadRequest, "이미 등록된 이메일입니다.")
		return
	}

	s.AddUser(username, email, password)
	writeJSON(w, http.StatusOK, map[string]string{"message": "registered"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	b := bodyOf(r)
	email, password := str(b, "email"), str(b, "password")

	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()
	if !ok || u.Password != password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": s.Token(email), "token_type": "bearer"})
}

func (s *Server) handleProfile(w http.ResponseWriter, _ *http.Request, u *user) {
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt.UTC().Format(timestampLayout),
	})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request, u *user) {
	if mux.Vars(r)["username"] != u.Username {
		writeDetail(w, http.StatusForbidden, "Not allowed")
		return
	}
	b := bodyOf(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	if v := str(b, "username"); v != "" {
		u.Username = v
	}
	if v := str(b, "password"); v != "" {
		u.Password = v
	}
	if v := str(b, "email"); v != "" && v != u.Email {
		delete(s.users, u.Email)
		for _, d := range s.diaries {
			if d.Owner == u.Email {
				d.Owner = v
			}
		}
		u.Email = v
		s.users[v] = u
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request, u *user) {
	if mux.Vars(r)["username"] != u.Username {
		writeDetail(w, http.StatusForbidden, "Not allowed")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, u.Email)
	kept := s.diaries[:0]
	for _, d := range s.diaries {
		if d.Owner != u.Email {
			kept = append(kept, d)
		}
	}
	s.diaries = kept
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, u *user) {
	b := bodyOf(r)
	title, content := str(b, "title"), str(b, "content")
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date := str(b, "date")
	if date == "" {
		date = now.Format("2006-01-02")
	}
	for _, d := range s.diaries {
		if d.Owner == u.Email && d.Date == date {
			writeDetail(w, http.StatusBadRequest, DuplicateDetail)
			return
		}
	}

	emotion, empathy := analyze(content)
	if m := str(b, "mood"); m != "" {
		emotion = m
	}
	d := &diary{
		ID: s.nextID, Owner: u.Email, Title: title, Content: content,
		Emotion: emotion, Date: date, Empathy: empathy, CreatedAt: now,
	}
	s.nextID++
	s.diaries = append(s.diaries, d)
	writeJSON(w, http.StatusOK, s.diaryJSON(d))
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mine []map[string]any
	idx := make([]int, 0, len(s.diaries))
	for i, d := range s.diaries {
		if d.Owner == u.Email {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool { return s.diaries[idx[a]].ID > s.diaries[idx[b]].ID })
	for _, i := range idx {
		mine = append(mine, s.diaryJSON(s.diaries[i]))
	}
	if mine == nil {
		mine = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, mine)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, status := s.findDiary(r, u)
	if d == nil {
		writeDetail(w, status, "일기를 찾을 수 없습니다.")
		return
	}
	writeJSON(w, http.StatusOK, s.diaryJSON(d))
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, u *user) {
	b := bodyOf(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	d, status := s.findDiary(r, u)
	if d == nil {
		writeDetail(w, status, "일기를 찾을 수 없습니다.")
		return
	}
	if v := str(b, "title"); v != "" {
		d.Title = v
	}
	if v := str(b, "content"); v != "" {
		d.Content = v
		d.Emotion, d.Empathy = analyze(v)
	}
	if v := str(b, "mood"); v != "" {
		d.Emotion = v
	}
	writeJSON(w, http.StatusOK, s.diaryJSON(d))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, u *user) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, status := s.findDiary(r, u)
	if d == nil {
		writeDetail(w, status, "일기를 찾을 수 없습니다.")
		return
	}
	for i := range s.diaries {
		if s.diaries[i] == d {
			s.diaries = append(s.diaries[:i], s.diaries[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, s.diaryJSON(d))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request, _ *user) {
	b := bodyOf(r)
	emotion, _ := analyze(str(b, "content"))
	writeJSON(w, http.StatusOK, map[string]string{"emotion": emotion})
}
