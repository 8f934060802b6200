package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/db"
	"github.com/shreyash398/Green-World/internal/auth"
	"github.com/shreyash398/Green-World/internal/handlers"
	"github.com/shreyash398/Green-World/internal/router"
)

// newTestRouter builds an isolated router backed by a fresh in-memory
// database, one per test.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tokens, err := auth.NewTokenService("test-secret")
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	return router.NewRouter(handlers.New(gdb, tokens)), gdb
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}

	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}

	return body
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "Test " + role,
		"role":     role,
	})

	if w.Code != 201 {
		t.Fatalf("expected 201 registering %s, got %d: %s", email, w.Code, w.Body.String())
	}

	token, ok := decodeBody(t, w)["token"].(string)

	if !ok || token == "" {
		t.Fatalf("expected token in register response")
	}

	return token
}

// loginUser authenticates an existing account and returns its token.
func loginUser(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})

	if w.Code != 200 {
		t.Fatalf("expected 200 logging in %s, got %d: %s", email, w.Code, w.Body.String())
	}

	token, ok := decodeBody(t, w)["token"].(string)

	if !ok || token == "" {
		t.Fatalf("expected token in login response")
	}

	return token
}

// createProject makes a valid project through the API and returns its id.
func createProject(t *testing.T, r *gin.Engine, token, title string) uint {
	t.Helper()

	w := doRequest(t, r, "POST", "/api/projects", token, map[string]interface{}{
		"title":       title,
		"description": "a valid ten-char description",
		"location":    "City",
		"fundingGoal": 1000,
	})

	if w.Code != 201 {
		t.Fatalf("expected 201 creating project, got %d: %s", w.Code, w.Body.String())
	}

	project, ok := decodeBody(t, w)["project"].(map[string]interface{})

	if !ok {
		t.Fatalf("expected project in response")
	}

	id, ok := project["id"].(float64)

	if !ok {
		t.Fatalf("expected project id in response")
	}

	return uint(id)
}
