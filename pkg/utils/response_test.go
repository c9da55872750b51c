package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	resp := httptest.NewRecorder()

	RespondJSON(resp, http.StatusCreated, map[string]int{"id": 1})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := resp.Body.String(); body != "{\"id\":1}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestRespondError(t *testing.T) {
	resp := httptest.NewRecorder()

	RespondError(resp, http.StatusNotFound, "person not found")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "{\"error\":\"person not found\"}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}
