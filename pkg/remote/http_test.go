package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPListSendsOwnerFilter(t *testing.T) {
	var gotPath, gotFilter, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFilter = r.URL.Query().Get("owner_id")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Record{{"id": "h1", "name": "Read"}})
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "anon-key", nil)
	rows, err := c.List(context.Background(), TableHabits, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/rest/v1/habits" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotFilter != "eq.user-1" {
		t.Fatalf("unexpected filter: %s", gotFilter)
	}
	if gotAuth != "Bearer anon-key" {
		t.Fatalf("unexpected auth: %s", gotAuth)
	}
	if len(rows) != 1 || rows[0].String("id") != "h1" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestHTTPInsertReturnsRepresentation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("missing Prefer header, got %q", r.Header.Get("Prefer"))
		}
		var rows []Record
		_ = json.NewDecoder(r.Body).Decode(&rows)
		rows[0]["id"] = "assigned"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(rows)
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "anon-key", nil)
	rec, err := c.Insert(context.Background(), TableHabits, Record{"name": "Read"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.String("id") != "assigned" {
		t.Fatalf("expected server-assigned id, got %+v", rec)
	}
}

func TestHTTPUpsertMergesDuplicates(t *testing.T) {
	var gotPrefer, gotConflict string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotConflict = r.URL.Query().Get("on_conflict")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "anon-key", nil)
	err := c.Upsert(context.Background(), TableHistory, "2026-03-03",
		Record{"owner_id": "u", "date": "2026-03-03", "completions": map[string]bool{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPrefer != "resolution=merge-duplicates" {
		t.Fatalf("unexpected Prefer: %s", gotPrefer)
	}
	if gotConflict != "owner_id,date" {
		t.Fatalf("unexpected on_conflict: %s", gotConflict)
	}
}

func TestHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "anon-key", nil)
	if _, err := c.List(context.Background(), TableHabits, "u"); err == nil {
		t.Fatalf("expected error for 403")
	}
}

func TestHTTPSessionTokenPreferred(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, "anon-key", nil)
	c.SetToken("session-jwt")
	if _, err := c.List(context.Background(), TableHabits, "u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer session-jwt" {
		t.Fatalf("expected session bearer, got %s", gotAuth)
	}
}
