package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck-dev/taskdeck/internal/auth"
	"github.com/taskdeck-dev/taskdeck/internal/router"
	"github.com/taskdeck-dev/taskdeck/internal/store"
	"github.com/taskdeck-dev/taskdeck/internal/testutil"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	return router.NewRouter(store.New(testutil.NewDB(t)))
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func register(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok, "register response must carry a token")

	return token
}

func createProject(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/projects", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return uint(decode(t, w)["id"].(float64))
}

func createTask(t *testing.T, r *gin.Engine, token string, projectID uint, title string) uint {
	t.Helper()

	w := do(t, r, http.MethodPost, "/api/tasks", token, gin.H{"projectId": projectID, "title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return uint(decode(t, w)["id"].(float64))
}

func TestAuthFlow(t *testing.T) {
	r := newServer(t)

	token := register(t, r, "alice@example.com")

	w := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "Alice@Example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code, "login email is case-insensitive")

	w = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskToggleWithoutBody(t *testing.T) {
	r := newServer(t)
	token := register(t, r, "alice@example.com")

	projectID := createProject(t, r, token, "Alpha")
	taskID := createTask(t, r, token, projectID, "write spec")

	path := fmt.Sprintf("/api/tasks/%d", taskID)

	w := do(t, r, http.MethodPut, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode(t, w)["completed"])

	// An empty JSON object carries no recognized field and also toggles
	w = do(t, r, http.MethodPut, path, token, gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["completed"])

	// Explicit completed=false is a set, not a toggle
	w = do(t, r, http.MethodPut, path, token, gin.H{"completed": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["completed"])

	w = do(t, r, http.MethodPut, path, token, gin.H{"title": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrossUserAccess(t *testing.T) {
	r := newServer(t)
	alice := register(t, r, "alice@example.com")
	bob := register(t, r, "bob@example.com")

	projectID := createProject(t, r, alice, "Alpha")
	taskID := createTask(t, r, alice, projectID, "write spec")

	// Foreign project access reads as missing
	w := do(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), bob, gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Foreign task access is forbidden
	w = do(t, r, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Bob's listings stay empty
	w = do(t, r, http.MethodGet, "/api/projects", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestProjectDeleteCascades(t *testing.T) {
	r := newServer(t)
	token := register(t, r, "alice@example.com")

	projectID := createProject(t, r, token, "Alpha")
	createTask(t, r, token, projectID, "one")
	createTask(t, r, token, projectID, "two")

	w := do(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", projectID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Project is gone, so listing its tasks now reads as missing
	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/tasks?projectId=%d", projectID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksRequiresProjectID(t *testing.T) {
	r := newServer(t)
	token := register(t, r, "alice@example.com")

	w := do(t, r, http.MethodGet, "/api/tasks", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := newServer(t)

	register(t, r, "alice@example.com")

	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Copycat",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Shorty",
		"email":    "short@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	r := newServer(t)
	token := register(t, r, "alice@example.com")

	for _, name := range []string{"", "   "} {
		w := do(t, r, http.MethodPost, "/api/projects", token, gin.H{"name": name})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
