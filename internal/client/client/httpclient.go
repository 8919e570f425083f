package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/logging"
	"github.com/dmitrijs2005/moodiary/internal/mood"
	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

// HTTPClient talks to the diary backend over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   session.Store
	timeout time.Duration
	log     logging.Logger

	// newRequestID is swapped in tests.
	newRequestID func() string
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a client rooted at baseURL. The token for each request
// is read from store.
func NewHTTPClient(baseURL string, store session.Store, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", baseURL)
	}

	c := &HTTPClient{
		baseURL:      strings.TrimRight(u.String(), "/"),
		http:         http.DefaultClient,
		store:        store,
		log:          logging.Nop(),
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// do sends one request. in, when non-nil, is encoded as the JSON body; out,
// when non-nil, receives the decoded response body.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	if c.store != nil {
		sess, err := c.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("read session: %w", err)
		}
		if auth := sess.Authorization(); auth != "" {
			req.Header.Set(common.AuthorizationHeaderName, auth)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%s %s: %w: %v", method, path, common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", reqID, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Detail: parseDetail(raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s %s: empty body: %w", method, path, common.ErrServer)
		}
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.Token, error) {
	var tok models.Token
	err := c.do(ctx, http.MethodPost, "/user/login", models.Credentials{Email: email, Password: password}, &tok)
	return tok, err
}

func (c *HTTPClient) Register(ctx context.Context, r models.Registration) error {
	return c.do(ctx, http.MethodPost, "/user/", r, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := c.do(ctx, http.MethodGet, "/user/profile", nil, &p)
	return p, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, username string, u models.ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/user/"+url.PathEscape(username)+"/change", u, nil)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/user/"+url.PathEscape(username)+"/del", nil, nil)
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var out []models.Entry
	if err := c.do(ctx, http.MethodGet, "/diaries/read", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Entry{}
	}
	return out, nil
}

func (c *HTTPClient) GetEntry(ctx context.Context, id string) (models.Entry, error) {
	var e models.Entry
	err := c.do(ctx, http.MethodGet, "/diaries/"+url.PathEscape(id)+"/read_Diary", nil, &e)
	return e, err
}

func (c *HTTPClient) CreateEntry(ctx context.Context, d models.EntryDraft) (models.Entry, error) {
	var e models.Entry
	err := c.do(ctx, http.MethodPost, "/diaries/", d, &e)
	return e, err
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id string, d models.EntryDraft) (models.Entry, error) {
	var e models.Entry
	err := c.do(ctx, http.MethodPut, "/diaries/"+url.PathEscape(id)+"/change", d, &e)
	return e, err
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/diaries/"+url.PathEscape(id)+"/del", nil, nil)
}

type analyzeRequest struct {
	Content   string `json:"content"`
	Intensity string `json:"intensity"`
}

type analyzeResponse struct {
	Emotion *string `json:"emotion"`
	Mood    *string `json:"mood"`
}

// AnalyzeEmotion asks the backend to classify content. The label is
// normalised to the mood enumeration.
func (c *HTTPClient) AnalyzeEmotion(ctx context.Context, content, intensity string) (mood.Mood, error) {
	var resp analyzeResponse
	if err := c.do(ctx, http.MethodPost, "/analyze_emotion", analyzeRequest{Content: content, Intensity: intensity}, &resp); err != nil {
		return mood.Neutral, err
	}
	switch {
	case resp.Emotion != nil:
		return mood.Normalize(*resp.Emotion), nil
	case resp.Mood != nil:
		return mood.Normalize(*resp.Mood), nil
	}
	return mood.Neutral, nil
}
