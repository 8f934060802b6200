package handlers_test

import "testing"

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(t, r, "GET", "/api/ping", "", nil)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if decodeBody(t, w)["message"] != "ping" {
		t.Fatalf("unexpected ping response: %s", w.Body.String())
	}
}
