package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/hr-center/internal/hrserver/store"
	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/errors"
	"github.com/kart-io/hr-center/pkg/options/weather"
	"github.com/kart-io/hr-center/pkg/security/auth"
	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// tokenAuthenticator admits tokens of the form "token-<uid>".
type tokenAuthenticator struct{}

func (a *tokenAuthenticator) Verify(ctx context.Context, tokenString string) (*auth.Claims, error) {
	uid, ok := strings.CutPrefix(tokenString, "token-")
	if !ok {
		return nil, errors.ErrInvalidToken
	}
	return &auth.Claims{Subject: uid, Email: uid + "@example.com"}, nil
}

func (a *tokenAuthenticator) Type() string { return "static" }

func newTestRouter(t *testing.T) (*store.MemoryFactory, http.Handler) {
	t.Helper()

	f := store.NewMemoryFactory()
	now := time.Now().UTC()
	seed := []struct {
		id   string
		uid  string
		role rbac.Role
	}{
		{"alice", "alice", rbac.RoleAdmin},
		{"bob", "bob", rbac.RoleManager},
		{"carol", "carol", rbac.RoleEmployee},
	}
	for _, p := range seed {
		require.NoError(t, f.Profiles().Create(context.Background(), &model.UserProfile{
			ID:        p.id,
			UID:       p.uid,
			FirstName: p.uid,
			LastName:  "Test",
			Email:     p.uid + "@example.com",
			Role:      p.role,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}
	require.NoError(t, f.Employees().Create(context.Background(), &model.Employee{
		ID:            "emp-carol",
		UserProfileID: "carol",
		LocationID:    "loc1",
		HireDate:      now,
		IsActive:      true,
	}))
	require.NoError(t, f.Employees().Create(context.Background(), &model.Employee{
		ID:            "emp-bob",
		UserProfileID: "bob",
		LocationID:    "loc1",
		HireDate:      now,
		IsActive:      true,
	}))

	engine, err := New(&Config{
		Store:         f,
		Authenticator: &tokenAuthenticator{},
		Weather:       &weather.Options{APIKey: "k", BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		Mode:          "test",
	})
	require.NoError(t, err)
	return f, engine
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_HealthzStoreDown(t *testing.T) {
	f, h := newTestRouter(t)
	f.SetError(errors.ErrDatabase)

	w := do(h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodGet, "/api/employees", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(h, http.MethodGet, "/api/employees", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_NoProfileNoAccess(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodGet, "/api/employees", "token-stranger", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_MatrixEnforcement(t *testing.T) {
	_, h := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"manager cannot delete", http.MethodDelete, "/api/employees/emp-carol", "token-bob", "", http.StatusForbidden},
		{"employee cannot create", http.MethodPost, "/api/employees", "token-carol", `{"uid":"x","firstName":"X","lastName":"Y","email":"x@example.com"}`, http.StatusForbidden},
		{"manager lists employees", http.MethodGet, "/api/employees", "token-bob", "", http.StatusOK},
		{"employee reads locations", http.MethodGet, "/api/locations", "token-carol", "", http.StatusOK},
		// Runs last: deleting the record also removes bob's profile.
		{"admin deletes employee", http.MethodDelete, "/api/employees/emp-bob", "token-alice", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(h, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRouter_EmployeeOwnership(t *testing.T) {
	_, h := newTestRouter(t)

	// Own record is readable.
	w := do(h, http.MethodGet, "/api/employees/emp-carol", "token-carol", "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// A colleague's record is not, and the denial does not reveal
	// whether it exists.
	w = do(h, http.MethodGet, "/api/employees/emp-bob", "token-carol", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(h, http.MethodGet, "/api/employees/emp-ghost", "token-carol", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Managers and admins are not ownership scoped.
	w = do(h, http.MethodGet, "/api/employees/emp-carol", "token-bob", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PermissionsEndpoint(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodGet, "/api/permissions", "token-carol", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Role        string   `json:"role"`
			Permissions []string `json:"permissions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "employee", envelope.Data.Role)
	assert.Equal(t, []string{"read"}, envelope.Data.Permissions)
}

func TestRouter_DepartmentLifecycle(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodPost, "/api/departments", "token-bob",
		`{"name":"Engineering","positions":[{"name":"Backend Engineer"}]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data struct {
			Departments []struct {
				ID        string `json:"id"`
				ManagerID string `json:"managerId"`
			} `json:"departments"`
			Positions []struct {
				ID string `json:"id"`
			} `json:"positions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Data.Departments, 1)
	assert.Equal(t, "bob", created.Data.Departments[0].ManagerID)
	require.Len(t, created.Data.Positions, 1)

	deptID := created.Data.Departments[0].ID
	posID := created.Data.Positions[0].ID

	w = do(h, http.MethodDelete, "/api/positions/"+posID, "token-alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodDelete, "/api/departments/"+deptID, "token-alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodDelete, "/api/departments/"+deptID, "token-alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_InitData(t *testing.T) {
	f, h := newTestRouter(t)

	w := do(h, http.MethodPost, "/api/init-data", "token-alice", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	_, _, _, _, locations := f.Counts()
	assert.Equal(t, 10, locations)

	// Employees cannot seed reference data.
	w = do(h, http.MethodPost, "/api/init-data", "token-carol", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_LinkProfile(t *testing.T) {
	f, h := newTestRouter(t)
	now := time.Now().UTC()
	require.NoError(t, f.Profiles().Create(context.Background(), &model.UserProfile{
		ID:        "dana",
		FirstName: "dana",
		LastName:  "Test",
		Email:     "dana@example.com",
		Role:      rbac.RoleEmployee,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	// linking is create-gated, employees are denied
	w := do(h, http.MethodPost, "/api/user-profiles/link", "token-carol",
		`{"email":"dana@example.com","uid":"idp-dana"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(h, http.MethodPost, "/api/user-profiles/link", "token-bob",
		`{"email":"dana@example.com","uid":"idp-dana"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(h, http.MethodGet, "/api/user-profiles/idp-dana", "token-bob", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodPost, "/api/user-profiles/link", "token-bob",
		`{"email":"ghost@example.com","uid":"idp-ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ValidationFailure(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodPost, "/api/user-profiles", "token-alice",
		`{"uid":"new","firstName":"New","lastName":"User","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
