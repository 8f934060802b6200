package handlers_test

import (
	"fmt"
	"testing"

	"github.com/shreyash398/Green-World/db"
	"github.com/shreyash398/Green-World/internal/models"
)

func TestListUsersAdminOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	if w := doRequest(t, r, "GET", "/api/users", "", nil); w.Code != 401 {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")

	if w := doRequest(t, r, "GET", "/api/users", ngoToken, nil); w.Code != 403 {
		t.Fatalf("expected 403 for ngo, got %d", w.Code)
	}

	adminToken := registerUser(t, r, "admin@example.com", "admin")

	w := doRequest(t, r, "GET", "/api/users", adminToken, nil)

	if w.Code != 200 {
		t.Fatalf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
	}

	users := decodeBody(t, w)["users"].([]interface{})

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	// Password hashes must never leave the API.
	for _, u := range users {
		user := u.(map[string]interface{})
		for key := range user {
			if key == "password" || key == "passwordHash" {
				t.Fatalf("user response leaks %q", key)
			}
		}
	}
}

func TestDeleteUser(t *testing.T) {
	r, gdb := newTestRouter(t)

	if err := db.Seed(gdb); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	adminToken := loginUser(t, r, "admin@greenworld.org", "password123")

	var volunteer models.User

	if err := gdb.Where("email = ?", "volunteer@example.com").First(&volunteer).Error; err != nil {
		t.Fatalf("failed to load volunteer: %v", err)
	}

	w := doRequest(t, r, "DELETE", fmt.Sprintf("/api/users/%d", volunteer.ID), adminToken, nil)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var userCount int64

	if err := gdb.Model(&models.User{}).Where("email = ?", "volunteer@example.com").Count(&userCount).Error; err != nil {
		t.Fatalf("count error: %v", err)
	}

	if userCount != 0 {
		t.Fatal("volunteer should be gone")
	}

	// Registrations cascade with the account so stats stay consistent.
	var registrationCount int64

	if err := gdb.Model(&models.Registration{}).Where("user_id = ?", volunteer.ID).Count(&registrationCount).Error; err != nil {
		t.Fatalf("count error: %v", err)
	}

	if registrationCount != 0 {
		t.Fatalf("expected registrations to cascade, %d left", registrationCount)
	}

	// The deleted user's token no longer resolves to an account.
	staleToken := loginUser(t, r, "csr@techcorp.com", "password123")

	var corporate models.User

	if err := gdb.Where("email = ?", "csr@techcorp.com").First(&corporate).Error; err != nil {
		t.Fatalf("failed to load corporate: %v", err)
	}

	w = doRequest(t, r, "DELETE", fmt.Sprintf("/api/users/%d", corporate.ID), adminToken, nil)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if w = doRequest(t, r, "GET", "/api/auth/me", staleToken, nil); w.Code != 401 {
		t.Fatalf("expected 401 for deleted account token, got %d", w.Code)
	}
}

func TestDeleteUserSelf(t *testing.T) {
	r, gdb := newTestRouter(t)

	adminToken := registerUser(t, r, "admin@example.com", "admin")

	var admin models.User

	if err := gdb.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		t.Fatalf("failed to load admin: %v", err)
	}

	w := doRequest(t, r, "DELETE", fmt.Sprintf("/api/users/%d", admin.ID), adminToken, nil)

	if w.Code != 400 {
		t.Fatalf("expected 400 for self-delete, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, "DELETE", "/api/users/abc", adminToken, nil)

	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed id, got %d", w.Code)
	}
}
