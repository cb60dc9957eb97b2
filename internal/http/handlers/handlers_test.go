package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/config"
	transport "github.com/shaharman18/porfolio-shaharman-backend/internal/http"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/http/middleware"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/metrics"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/repo"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/storage"
)

const (
	testAdminID  = "f8f9f4a8-0000-4000-8000-000000000001"
	testPasscode = "open-sesame"
	testPassword = "admin123"
)

// --- in-memory stores ---

type memUserStore struct {
	mu   sync.Mutex
	user *models.User
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil || m.user.Username != username {
		return nil, repo.ErrNotFound
	}
	copied := *m.user
	return &copied, nil
}

func (m *memUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil || m.user.ID != id {
		return nil, repo.ErrNotFound
	}
	copied := *m.user
	return &copied, nil
}

func (m *memUserStore) Update(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil || m.user.ID != user.ID {
		return nil, repo.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	copied := *user
	m.user = &copied
	return user, nil
}

type memProjectStore struct {
	mu    sync.Mutex
	items map[string]models.Project
	clock time.Time
}

func newMemProjectStore() *memProjectStore {
	return &memProjectStore{
		items: make(map[string]models.Project),
		clock: time.Now().Add(-time.Hour),
	}
}

func (m *memProjectStore) List(_ context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Project, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memProjectStore) GetByID(_ context.Context, id string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &item, nil
}

func (m *memProjectStore) Create(_ context.Context, project *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = m.clock.Add(time.Second)
	project.ID = uuid.NewString()
	project.CreatedAt = m.clock
	project.UpdatedAt = m.clock
	m.items[project.ID] = *project
	return project, nil
}

func (m *memProjectStore) Update(_ context.Context, project *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[project.ID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()
	m.items[project.ID] = *project
	return project, nil
}

func (m *memProjectStore) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *memProjectStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

type memResumeStore struct {
	mu     sync.Mutex
	record *models.Resume
}

func (m *memResumeStore) Get(_ context.Context) (*models.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.record == nil {
		return nil, repo.ErrNotFound
	}
	copied := *m.record
	return &copied, nil
}

func (m *memResumeStore) Upsert(_ context.Context, resume *models.Resume) (*models.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if m.record == nil {
		resume.ID = uuid.NewString()
		resume.CreatedAt = now
	} else {
		resume.ID = m.record.ID
		resume.CreatedAt = m.record.CreatedAt
	}
	resume.UpdatedAt = now
	copied := *resume
	m.record = &copied
	return resume, nil
}

type mockMailer struct {
	mu    sync.Mutex
	err   error
	calls int
	last  services.ContactMessage
}

func (m *mockMailer) Send(_ context.Context, msg services.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.last = msg
	return m.err
}

func (m *mockMailer) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- harness ---

type testEnv struct {
	router   *gin.Engine
	users    *memUserStore
	projects *memProjectStore
	resumes  *memResumeStore
	mailer   *mockMailer
	sessions *services.SessionManager
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	env := &testEnv{
		users: &memUserStore{user: &models.User{
			ID:           testAdminID,
			Username:     "admin",
			PasswordHash: string(hash),
		}},
		projects: newMemProjectStore(),
		resumes:  &memResumeStore{},
		mailer:   &mockMailer{},
		sessions: services.NewSessionManager("test-secret", 30*24*time.Hour),
	}

	cfg := &config.Config{
		Env:            "dev",
		AllowedOrigins: []string{"http://localhost:5173"},
		MaxUploadBytes: 5 << 20,
		ResumeStorage:  "db",
	}

	env.router = transport.NewRouter(transport.Dependencies{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sessions:       env.sessions,
		AuthService:    services.NewAuthService(env.users, env.sessions, testPasscode),
		ProjectService: services.NewProjectService(env.projects),
		ResumeService:  services.NewResumeService(env.resumes, storage.NewEmbeddedStore(), cfg.MaxUploadBytes),
		ContactService: services.NewContactService(env.mailer),
		Metrics:        metrics.NewCollector(),
		RateLimiter:    middleware.NewRateLimiter(1000, time.Hour),
	})

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) authCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := e.sessions.Issue(testAdminID)
	require.NoError(t, err)
	return &http.Cookie{Name: "jwt", Value: token}
}

// multipartBody builds a file upload the way a browser would, including the
// MIME type derived from the file extension.
func multipartBody(t *testing.T, field, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	if contentType := mime.TypeByExtension(filepath.Ext(fileName)); contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
