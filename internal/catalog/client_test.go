package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const searchBody = `{
	"data": [
		{
			"id": "base1-4",
			"name": "Charizard",
			"number": "4",
			"rarity": "Rare Holo",
			"set": {"id": "base1", "name": "Base", "series": "Base"},
			"images": {"small": "https://images.example/base1-4.png", "large": "https://images.example/base1-4_hires.png"}
		}
	]
}`

func TestClient_Search(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, APIKey: "test-key", PageSize: 20})

	candidates, err := client.Search(context.Background(), "Charizard")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != `name:"Charizard"` {
		t.Errorf("query = %q, want name:\"Charizard\"", gotQuery)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want test-key", gotKey)
	}

	if len(candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(candidates))
	}
	c := candidates[0]
	if c.ID != "base1-4" || c.Name != "Charizard" || c.SetName != "Base" || c.Number != "4" {
		t.Errorf("unexpected candidate: %+v", c)
	}
	if c.ImageURL != "https://images.example/base1-4.png" {
		t.Errorf("image url = %q, want the small image", c.ImageURL)
	}
}

func TestClient_Search_CachesPerQuery(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(searchBody))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	for i := 0; i < 3; i++ {
		if _, err := client.Search(context.Background(), "Charizard"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("upstream calls = %d, want 1 (cached after first)", got)
	}
}

func TestClient_Search_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(searchBody))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, MaxRetries: 2})

	candidates, err := client.Search(context.Background(), "Charizard")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Errorf("candidates = %d, want 1", len(candidates))
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("upstream calls = %d, want 2", got)
	}
}

func TestClient_Search_ErrorAfterRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, MaxRetries: 1})

	if _, err := client.Search(context.Background(), "Charizard"); err == nil {
		t.Error("expected an error when every attempt fails")
	}
}

func TestClient_Search_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})

	candidates, err := client.Search(context.Background(), "Missingno")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("candidates = %d, want 0", len(candidates))
	}
}
