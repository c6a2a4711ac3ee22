package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shareapi/share-api-mcp/internal/config"
)

func newTestClient(settings config.Settings) *Client {
	return New(settings, nil)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://host/share/", "http://host/share"},
		{"http://host/share///", "http://host/share"},
		{"http://localhost:8080/share", "http://127.0.0.1:8080/share"},
		{"https://example.com", "https://example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeBaseURL(tt.in); got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetEntry_ParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api.php/entries/42" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 42, "type": "note", "subject": "Demo",
			"body": {"content": "hello"},
			"attachments": [
				{"id": 7, "type": "file", "filename": "report.pdf", "file_size": 1024, "file_url": "/api.php/files/7"},
				{"id": 8, "type": "text", "body": {"content": "inline"}}
			]
		}`))
	}))
	defer srv.Close()

	entry, err := newTestClient(config.Settings{}).GetEntry(context.Background(), srv.URL, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 42 || entry.Subject != "Demo" {
		t.Errorf("entry = %+v", entry)
	}
	if len(entry.Attachments) != 2 {
		t.Fatalf("attachments = %d, want 2", len(entry.Attachments))
	}
	if !entry.Attachments[0].IsFile() || entry.Attachments[0].Filename != "report.pdf" {
		t.Errorf("attachment[0] = %+v", entry.Attachments[0])
	}
	if entry.Attachments[1].Body["content"] != "inline" {
		t.Errorf("attachment[1] body = %v", entry.Attachments[1].Body)
	}
}

func TestGetEntry_StripsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(config.Settings{}).GetEntry(context.Background(), srv.URL+"/", 1); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api.php/entries/1" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestGetEntry_Non2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(config.Settings{}).GetEntry(context.Background(), srv.URL, 99)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %T (%v), want *FetchError", err, err)
	}
	if fe.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", fe.Status)
	}
}

func TestGetEntry_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer srv.Close()

	_, err := newTestClient(config.Settings{}).GetEntry(context.Background(), srv.URL, 1)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %T, want *FetchError", err)
	}
	if fe.Status != 0 {
		t.Errorf("status = %d, want 0 for decode failure", fe.Status)
	}
}

func TestGetEntry_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // reject connections

	_, err := newTestClient(config.Settings{}).GetEntry(context.Background(), srv.URL, 1)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %T, want *FetchError", err)
	}
}

func TestBasicAuth_SentWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "secret" {
			t.Errorf("basic auth = %q/%q ok=%v", user, pass, ok)
		}
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	client := newTestClient(config.Settings{AuthUser: "alice", AuthPassword: "secret"})
	if _, err := client.GetEntry(context.Background(), srv.URL, 1); err != nil {
		t.Fatal(err)
	}
}

func TestBasicAuth_AbsentWhenPartial(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); ok {
			t.Error("request should carry no auth header")
		}
		w.Write([]byte(`{"id": 1}`))
	}))
	defer srv.Close()

	// Only one credential present counts as no auth.
	client := newTestClient(config.Settings{AuthUser: "alice"})
	if _, err := client.GetEntry(context.Background(), srv.URL, 1); err != nil {
		t.Fatal(err)
	}
}

func TestListEntries_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("per_page") != "10" {
			t.Errorf("pagination params = %v", q)
		}
		if q.Get("project_id") != "1" || q.Get("status_id") != "3" {
			t.Errorf("filter params = %v", q)
		}
		w.Write([]byte(`{"entries": [{"id": 5, "subject": "First"}], "total": 1, "page": 2, "per_page": 10}`))
	}))
	defer srv.Close()

	list, err := newTestClient(config.Settings{}).ListEntries(context.Background(), srv.URL, 2, 10,
		map[string]any{"project_id": 1, "status_id": 3})
	if err != nil {
		t.Fatal(err)
	}
	if list.Total != 1 || len(list.Entries) != 1 || list.Entries[0].ID != 5 {
		t.Errorf("list = %+v", list)
	}
}

func TestUpdateEntry_SendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q", r.Method)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		if payload["subject"] != "New subject" {
			t.Errorf("payload = %v", payload)
		}
		w.Write([]byte(`{"id": 7, "subject": "New subject"}`))
	}))
	defer srv.Close()

	entry, err := newTestClient(config.Settings{}).UpdateEntry(context.Background(), srv.URL, 7,
		map[string]any{"subject": "New subject"})
	if err != nil {
		t.Fatal(err)
	}
	if entry.Subject != "New subject" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestDeleteEntry_MessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	msg, err := newTestClient(config.Settings{}).DeleteEntry(context.Background(), srv.URL, 3)
	if err != nil {
		t.Fatal(err)
	}
	if msg != "Entry deleted" {
		t.Errorf("msg = %q", msg)
	}
}

func TestGetAuthInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api.php/auth" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"method": "basic"}`))
	}))
	defer srv.Close()

	info, err := newTestClient(config.Settings{}).GetAuthInfo(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if info.Method != "basic" {
		t.Errorf("method = %q", info.Method)
	}
}

func TestListFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"name": "project", "type": "option", "resource_path": "field-options/project"}]}`))
	}))
	defer srv.Close()

	fields, err := newTestClient(config.Settings{}).ListFields(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if len(fields) != 1 || fields[0].Name != "project" {
		t.Errorf("fields = %+v", fields)
	}
}
