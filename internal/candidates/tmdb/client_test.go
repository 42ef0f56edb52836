package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"curator/internal/candidates/tmdb"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := tmdb.NewClient(tmdb.Config{BaseURL: "https://example.com", Language: "en-US"})
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := tmdb.NewClient(tmdb.Config{APIKey: "key"})
	if err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchMoviesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("query") != "Halloween" {
			t.Fatalf("expected query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("language") != "en-US" {
			t.Fatalf("expected language parameter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":948,"title":"Halloween","release_date":"1978-10-25","vote_average":7.6}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{APIKey: "key", BaseURL: server.URL, Language: "en-US"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	results, err := client.SearchMovies(context.Background(), "Halloween")
	if err != nil {
		t.Fatalf("SearchMovies returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	got := results[0]
	if got.ID != 948 || got.Title != "Halloween" || got.ReleaseDate != "1978-10-25" || got.VoteAverage != 7.6 {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestSearchMoviesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{APIKey: "key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := client.SearchMovies(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMoviesEmptyQuery(t *testing.T) {
	client, err := tmdb.NewClient(tmdb.Config{APIKey: "key", BaseURL: "https://example.com"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := client.SearchMovies(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/configuration" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"images":{}}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{APIKey: "key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestPingAuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.NewClient(tmdb.Config{APIKey: "bad", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error when TMDB rejects the key")
	}
}
