package handlers_test

import (
	"fmt"
	"testing"

	"github.com/shreyash398/Green-World/db"
	"github.com/shreyash398/Green-World/internal/models"
)

func TestCreateProjectRoleGate(t *testing.T) {
	r, _ := newTestRouter(t)

	body := map[string]interface{}{
		"title":       "Tree Planting",
		"description": "a valid ten-char description",
		"location":    "City",
		"fundingGoal": 1000,
	}

	w := doRequest(t, r, "POST", "/api/projects", "", body)

	if w.Code != 401 {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	volunteerToken := registerUser(t, r, "volunteer@example.com", "volunteer")

	w = doRequest(t, r, "POST", "/api/projects", volunteerToken, body)

	if w.Code != 403 {
		t.Fatalf("expected 403 for volunteer, got %d", w.Code)
	}

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")

	w = doRequest(t, r, "POST", "/api/projects", ngoToken, body)

	if w.Code != 201 {
		t.Fatalf("expected 201 for ngo, got %d: %s", w.Code, w.Body.String())
	}

	project := decodeBody(t, w)["project"].(map[string]interface{})

	// Status is forced to active no matter what the caller intended.
	if project["status"] != "active" {
		t.Fatalf("expected active status, got %v", project["status"])
	}
}

func TestCreateProjectValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")

	cases := []map[string]interface{}{
		{"title": "ab", "description": "a valid ten-char description", "location": "City"},
		{"title": "Valid Title", "description": "too short", "location": "City"},
		{"title": "Valid Title", "description": "a valid ten-char description", "location": "C"},
		{"description": "a valid ten-char description", "location": "City"},
	}

	for i, body := range cases {
		w := doRequest(t, r, "POST", "/api/projects", ngoToken, body)
		if w.Code != 400 {
			t.Errorf("case %d: expected 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}

func TestUpdateProjectOwnership(t *testing.T) {
	r, _ := newTestRouter(t)

	ownerToken := registerUser(t, r, "owner@example.com", "ngo")
	otherToken := registerUser(t, r, "other@example.com", "ngo")
	adminToken := registerUser(t, r, "admin@example.com", "admin")

	projectID := createProject(t, r, ownerToken, "Owned Project")
	path := fmt.Sprintf("/api/projects/%d", projectID)

	update := map[string]interface{}{"fundingReceived": 250}

	w := doRequest(t, r, "PUT", path, otherToken, update)

	if w.Code != 403 {
		t.Fatalf("expected 403 for non-owner ngo, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, "PUT", path, ownerToken, update)

	if w.Code != 200 {
		t.Fatalf("expected 200 for owner, got %d: %s", w.Code, w.Body.String())
	}

	// Admins bypass ownership checks.
	w = doRequest(t, r, "PUT", path, adminToken, map[string]interface{}{"status": "completed"})

	if w.Code != 200 {
		t.Fatalf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
	}

	project := decodeBody(t, w)["project"].(map[string]interface{})

	if project["status"] != "completed" || project["fundingReceived"] != float64(250) {
		t.Fatalf("updates not applied: %v", project)
	}
}

func TestUpdateMissingProject(t *testing.T) {
	r, _ := newTestRouter(t)

	adminToken := registerUser(t, r, "admin@example.com", "admin")

	w := doRequest(t, r, "PUT", "/api/projects/9999", adminToken, map[string]interface{}{"status": "completed"})

	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDraftVisibility(t *testing.T) {
	r, _ := newTestRouter(t)

	ownerToken := registerUser(t, r, "owner@example.com", "ngo")
	otherToken := registerUser(t, r, "other@example.com", "ngo")

	projectID := createProject(t, r, ownerToken, "Hidden Draft")

	w := doRequest(t, r, "PUT", fmt.Sprintf("/api/projects/%d", projectID), ownerToken, map[string]interface{}{
		"status": "draft",
	})

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	countProjects := func(token string) int {
		w := doRequest(t, r, "GET", "/api/projects", token, nil)
		if w.Code != 200 {
			t.Fatalf("expected 200 listing projects, got %d", w.Code)
		}
		return len(decodeBody(t, w)["projects"].([]interface{}))
	}

	if got := countProjects(""); got != 0 {
		t.Fatalf("anonymous caller should not see drafts, got %d projects", got)
	}

	if got := countProjects(otherToken); got != 0 {
		t.Fatalf("non-owning ngo should not see drafts, got %d projects", got)
	}

	if got := countProjects(ownerToken); got != 1 {
		t.Fatalf("owning ngo should see its draft, got %d projects", got)
	}
}

func TestListProjectsFilters(t *testing.T) {
	r, gdb := newTestRouter(t)

	if err := db.Seed(gdb); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	list := func(query string) []interface{} {
		w := doRequest(t, r, "GET", "/api/projects"+query, "", nil)
		if w.Code != 200 {
			t.Fatalf("expected 200 for %q, got %d: %s", query, w.Code, w.Body.String())
		}
		return decodeBody(t, w)["projects"].([]interface{})
	}

	if got := len(list("")); got != 4 {
		t.Errorf("unfiltered list: got %d projects, want 4", got)
	}

	if got := len(list("?status=completed")); got != 1 {
		t.Errorf("status filter: got %d projects, want 1", got)
	}

	if got := len(list("?impactType=Trees")); got != 2 {
		t.Errorf("impactType filter: got %d projects, want 2", got)
	}

	if got := len(list("?location=Goa,%20India")); got != 1 {
		t.Errorf("location filter: got %d projects, want 1", got)
	}

	if got := len(list("?search=Mangrove")); got != 1 {
		t.Errorf("search filter: got %d projects, want 1", got)
	}

	// "all" means no filter at all.
	if got := len(list("?status=all&impactType=all&location=all")); got != 4 {
		t.Errorf("all filters: got %d projects, want 4", got)
	}

	if got := len(list("?limit=2")); got != 2 {
		t.Errorf("limit: got %d projects, want 2", got)
	}

	if got := len(list("?limit=2&offset=3")); got != 1 {
		t.Errorf("offset: got %d projects, want 1", got)
	}
}

func TestDuplicateRegistration(t *testing.T) {
	r, gdb := newTestRouter(t)

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")
	volunteerToken := registerUser(t, r, "volunteer@example.com", "volunteer")

	projectID := createProject(t, r, ngoToken, "Cleanup Drive")
	path := fmt.Sprintf("/api/projects/%d/register", projectID)

	w := doRequest(t, r, "POST", path, volunteerToken, nil)

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, r, "POST", path, volunteerToken, nil)

	if w.Code != 400 {
		t.Fatalf("expected 400 for duplicate registration, got %d", w.Code)
	}

	var count int64

	if err := gdb.Model(&models.Registration{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		t.Fatalf("count error: %v", err)
	}

	if count != 1 {
		t.Fatalf("expected exactly one registration row, got %d", count)
	}

	w = doRequest(t, r, "POST", "/api/projects/9999/register", volunteerToken, nil)

	if w.Code != 404 {
		t.Fatalf("expected 404 for unknown project, got %d", w.Code)
	}
}

func TestMilestoneToggle(t *testing.T) {
	r, gdb := newTestRouter(t)

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")
	projectID := createProject(t, r, ngoToken, "Forest Restoration")

	milestone := models.Milestone{ProjectID: projectID, Name: "Site Preparation"}

	if err := gdb.Create(&milestone).Error; err != nil {
		t.Fatalf("failed to create milestone: %v", err)
	}

	path := fmt.Sprintf("/api/projects/%d/milestones/%d", projectID, milestone.ID)

	toggle := func() bool {
		w := doRequest(t, r, "PUT", path, ngoToken, nil)
		if w.Code != 200 {
			t.Fatalf("expected 200 toggling milestone, got %d: %s", w.Code, w.Body.String())
		}
		return decodeBody(t, w)["milestone"].(map[string]interface{})["completed"].(bool)
	}

	// toggle(toggle(x)) == x, but toggle(x) != x.
	if !toggle() {
		t.Fatal("first toggle should mark the milestone completed")
	}

	if toggle() {
		t.Fatal("second toggle should return the milestone to incomplete")
	}

	otherProject := createProject(t, r, ngoToken, "Another Project")

	w := doRequest(t, r, "PUT", fmt.Sprintf("/api/projects/%d/milestones/%d", otherProject, milestone.ID), ngoToken, nil)

	if w.Code != 404 {
		t.Fatalf("expected 404 for milestone under wrong project, got %d", w.Code)
	}
}

func TestGetProjectDetail(t *testing.T) {
	r, gdb := newTestRouter(t)

	ngoToken := registerUser(t, r, "ngo@example.com", "ngo")
	volunteerToken := registerUser(t, r, "volunteer@example.com", "volunteer")

	projectID := createProject(t, r, ngoToken, "Detail Project")

	photo := models.ProjectPhoto{ProjectID: projectID, URL: "https://example.com/p1.jpg"}

	if err := gdb.Create(&photo).Error; err != nil {
		t.Fatalf("failed to create photo: %v", err)
	}

	w := doRequest(t, r, "POST", fmt.Sprintf("/api/projects/%d/register", projectID), volunteerToken, nil)

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = doRequest(t, r, "GET", fmt.Sprintf("/api/projects/%d", projectID), volunteerToken, nil)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)

	if body["isRegistered"] != true {
		t.Fatalf("expected isRegistered true, got %v", body["isRegistered"])
	}

	if body["volunteers"] != float64(1) {
		t.Fatalf("expected 1 volunteer, got %v", body["volunteers"])
	}

	photos := body["photos"].([]interface{})

	if len(photos) != 1 || photos[0] != "https://example.com/p1.jpg" {
		t.Fatalf("unexpected photos: %v", photos)
	}

	// Anonymous callers see the project too, just without a registration flag.
	w = doRequest(t, r, "GET", fmt.Sprintf("/api/projects/%d", projectID), "", nil)

	if w.Code != 200 {
		t.Fatalf("expected 200 for anonymous caller, got %d", w.Code)
	}

	if decodeBody(t, w)["isRegistered"] != false {
		t.Fatal("expected isRegistered false for anonymous caller")
	}

	w = doRequest(t, r, "GET", "/api/projects/9999", "", nil)

	if w.Code != 404 {
		t.Fatalf("expected 404 for unknown project, got %d", w.Code)
	}
}

func TestEndToEndScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    "ngo@example.com",
		"password": "secret1",
		"name":     "Scenario NGO",
		"role":     "ngo",
	})

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	ngoToken := loginUser(t, r, "ngo@example.com", "secret1")

	w = doRequest(t, r, "POST", "/api/projects", ngoToken, map[string]interface{}{
		"title":       "Test",
		"description": "a valid ten-char description",
		"location":    "City",
		"fundingGoal": 1000,
	})

	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	project := decodeBody(t, w)["project"].(map[string]interface{})

	if project["status"] != "active" {
		t.Fatalf("expected active status, got %v", project["status"])
	}

	projectID := uint(project["id"].(float64))

	volunteerToken := registerUser(t, r, "volunteer@example.com", "volunteer")

	path := fmt.Sprintf("/api/projects/%d/register", projectID)

	if w = doRequest(t, r, "POST", path, volunteerToken, nil); w.Code != 201 {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	if w = doRequest(t, r, "POST", path, volunteerToken, nil); w.Code != 400 {
		t.Fatalf("expected 400 on repeat registration, got %d", w.Code)
	}

	w = doRequest(t, r, "GET", "/api/stats/ngo", ngoToken, nil)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	stats := decodeBody(t, w)

	if stats["projects"].(map[string]interface{})["total"] != float64(1) {
		t.Fatalf("expected 1 project, got %v", stats["projects"])
	}

	if stats["volunteers"] != float64(1) {
		t.Fatalf("expected 1 volunteer, got %v", stats["volunteers"])
	}
}
