package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"nexcraft-service/internal/domain/admin"
	"nexcraft-service/internal/domain/contact"
	"nexcraft-service/internal/domain/content"
	"nexcraft-service/internal/domain/status"
	authHandler "nexcraft-service/internal/handlers/auth"
	contactHandler "nexcraft-service/internal/handlers/contact"
	contentHandler "nexcraft-service/internal/handlers/content"
	statusHandler "nexcraft-service/internal/handlers/status"
	wsHandler "nexcraft-service/internal/handlers/ws"
	"nexcraft-service/internal/middleware"
	xerrors "nexcraft-service/internal/pkg/errors"
	"nexcraft-service/internal/pkg/password"
	"nexcraft-service/internal/pkg/token"
	authService "nexcraft-service/internal/service/auth"
	contentService "nexcraft-service/internal/service/content"
	submissionService "nexcraft-service/internal/service/submission"
	"nexcraft-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ---- in-memory stores ----

type memAdminStore struct {
	byEmail map[string]*admin.Admin
}

func (m *memAdminStore) Create(_ context.Context, a *admin.Admin) error {
	if _, ok := m.byEmail[a.Email]; ok {
		return xerrors.ErrDuplicateEntry
	}
	cp := *a
	m.byEmail[a.Email] = &cp
	return nil
}

func (m *memAdminStore) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

type memContactStore struct {
	items map[string]contact.Submission
}

func (m *memContactStore) Insert(_ context.Context, s *contact.Submission) error {
	m.items[s.ID] = *s
	return nil
}

func (m *memContactStore) List(context.Context) ([]contact.Submission, error) {
	out := make([]contact.Submission, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (m *memContactStore) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memStatusStore struct {
	items []status.Check
}

func (m *memStatusStore) Insert(_ context.Context, c *status.Check) error {
	m.items = append(m.items, *c)
	return nil
}

func (m *memStatusStore) List(context.Context) ([]status.Check, error) {
	return append([]status.Check(nil), m.items...), nil
}

type memContentStore struct {
	doc *content.Document
}

func (m *memContentStore) Get(context.Context) (*content.Document, error) {
	if m.doc == nil {
		return nil, xerrors.ErrNotFound
	}
	return m.doc, nil
}

func (m *memContentStore) UpdateSection(_ context.Context, section string, data json.RawMessage) error {
	if m.doc == nil {
		m.doc = &content.Document{Type: content.DocumentType}
	}
	m.doc.SetSection(section, data)
	return nil
}

// ---- test server ----

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	tokens := token.NewService("router-test-secret")
	hasher := password.NewHasher(bcrypt.MinCost)

	authSvc := authService.NewService(&memAdminStore{byEmail: map[string]*admin.Admin{}}, tokens, hasher, logger)
	contentSvc := contentService.NewService(&memContentStore{}, nil, logger)
	submissionSvc := submissionService.NewService(
		&memContactStore{items: map[string]contact.Submission{}},
		&memStatusStore{},
		nil,
		logger,
	)

	engine := gin.New()
	SetupRouter(engine, &Handlers{
		AuthHandler:    authHandler.NewAuthHandler(authSvc, logger),
		ContactHandler: contactHandler.NewContactHandler(submissionSvc, logger),
		StatusHandler:  statusHandler.NewStatusHandler(submissionSvc, logger),
		ContentHandler: contentHandler.NewContentHandler(contentSvc, logger),
		WSHandler:      wsHandler.NewWSHandler(ws.NewHub(logger), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authSvc),
	})
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := do(t, engine, http.MethodPost, "/api/admin/signup",
		`{"email":"admin@nexcraft.dev","password":"hunter22","name":"Admin"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp admin.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

// ---- tests ----

func TestRootEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	w := do(t, engine, http.MethodGet, "/api/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, w.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/me"},
		{http.MethodGet, "/api/admin/contacts"},
		{http.MethodDelete, "/api/admin/contacts/some-id"},
		{http.MethodPut, "/api/admin/content"},
	}

	for _, tc := range cases {
		w := do(t, engine, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, w.Body.String())
	}
}

func TestSignupLoginAndMe(t *testing.T) {
	engine := newTestEngine(t)
	signup(t, engine)

	// Duplicate signup conflicts.
	w := do(t, engine, http.MethodPost, "/api/admin/signup",
		`{"email":"admin@nexcraft.dev","password":"other","name":"Other"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	// Wrong password rejected.
	w = do(t, engine, http.MethodPost, "/api/admin/login",
		`{"email":"admin@nexcraft.dev","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct login returns a usable token.
	w = do(t, engine, http.MethodPost, "/api/admin/login",
		`{"email":"admin@nexcraft.dev","password":"hunter22"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp admin.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = do(t, engine, http.MethodGet, "/api/admin/me", "", resp.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@nexcraft.dev")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestContactLifecycle(t *testing.T) {
	engine := newTestEngine(t)
	tok := signup(t, engine)

	// Public submission.
	w := do(t, engine, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","phone":"555-0100",
		  "service_interest":"Web Development","budget":"$5k","message":"Hi"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created contact.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Timestamp.IsZero())

	// Listed for admins.
	w = do(t, engine, http.MethodGet, "/api/admin/contacts", "", tok)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []contact.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	// Deleting an unknown id is a 404.
	w = do(t, engine, http.MethodDelete, "/api/admin/contacts/no-such-id", "", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Contact not found"}`, w.Body.String())

	// Deleting the real one removes it.
	w = do(t, engine, http.MethodDelete, "/api/admin/contacts/"+created.ID, "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Contact deleted successfully"}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/api/admin/contacts", "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	listed = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed)
}

func TestContactsSortedNewestFirst(t *testing.T) {
	engine := newTestEngine(t)
	tok := signup(t, engine)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"name":"n%d","email":"n%d@example.com","phone":"p",
			"service_interest":"SEO","budget":"b","message":"m"}`, i, i)
		w := do(t, engine, http.MethodPost, "/api/contact", body, "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, engine, http.MethodGet, "/api/admin/contacts", "", tok)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []contact.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 3)
	for i := 1; i < len(listed); i++ {
		assert.False(t, listed[i].Timestamp.After(listed[i-1].Timestamp))
	}
}

func TestContentDefaultAndUpdate(t *testing.T) {
	engine := newTestEngine(t)
	tok := signup(t, engine)

	// Default document before any write.
	w := do(t, engine, http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc content.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, content.DocumentType, doc.Type)

	var services []content.Service
	raw, ok := doc.Section("services")
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, &services))
	assert.Len(t, services, 5)

	var hero content.Hero
	raw, ok = doc.Section("hero")
	require.True(t, ok)
	require.NoError(t, json.Unmarshal(raw, &hero))
	assert.Equal(t, "Transform Your Business with", hero.Title)

	// First write creates the document with only the written section.
	w = do(t, engine, http.MethodPut, "/api/admin/content",
		`{"section":"hero","data":{"title":"Updated"}}`, tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Content updated successfully"}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	doc = content.Document{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	raw, ok = doc.Section("hero")
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"Updated"}`, string(raw))

	_, hasServices := doc.Section("services")
	assert.False(t, hasServices, "first write must not backfill default sections")
}

func TestStatusChecks(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/status", `{"client_name":"uptime-bot"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var check status.Check
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.Equal(t, "uptime-bot", check.ClientName)
	assert.NotEmpty(t, check.ID)

	w = do(t, engine, http.MethodGet, "/api/status", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var checks []status.Check
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checks))
	require.Len(t, checks, 1)
	assert.Equal(t, check.ID, checks[0].ID)
}

func TestMissingBodyValidation(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodPost, "/api/contact", `{"name":"only-name"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPost, "/api/admin/signup", `{"email":"not-an-email","password":"x","name":"n"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
