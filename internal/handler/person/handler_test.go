package person

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/zhouzirui/people/backend/internal/model/person"
)

func setupRouter() *chi.Mux {
	handler := New(person.MustMemoryStore(person.Seed()))

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestListPeople(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got []person.Person
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if diff := cmp.Diff(person.Seed(), got); diff != "" {
		t.Fatalf("people mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPerson(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/people/0", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got person.Person
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := person.Person{ID: 0, Name: "hojin", Age: 24, Gender: person.GenderMale}
	if got != want {
		t.Fatalf("unexpected person: got %+v want %+v", got, want)
	}
}

func TestGetPersonNotFound(t *testing.T) {
	r := setupRouter()

	for _, path := range []string{"/people/4", "/people/99", "/people/-1"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)

		if resp.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, resp.Code)
		}
	}
}

func TestGetPersonInvalidID(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/people/abc", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
