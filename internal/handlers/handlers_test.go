package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seanharvey/people-starter/internal/types"
)

func TestRootHandler_Hello(t *testing.T) {
	h := NewRootHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Hello(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Hello, World!" {
		t.Errorf("expected body %q, got %q", "Hello, World!", got)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain content type, got %q", ct)
	}
}

func TestPeopleHandler_List(t *testing.T) {
	h := NewPeopleHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %q", ct)
	}

	var list []types.Person
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 people, got %d", len(list))
	}
	if list[0].Name != "Person A" || list[1].Name != "Person B" || list[2].Name != "Person C" {
		t.Errorf("unexpected order: %q, %q, %q", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestPeopleHandler_NullFavouriteFood(t *testing.T) {
	h := NewPeopleHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"favourite_food":null`) {
		t.Errorf("expected a null favourite_food in body, got %s", body)
	}
	if !strings.Contains(body, `"favourite_food":"Pizza"`) {
		t.Errorf("expected favourite_food \"Pizza\" in body, got %s", body)
	}
}
