package library_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"curator/internal/library"
	"curator/internal/logging"
)

const sectionsJSON = `{"MediaContainer":{"Directory":[` +
	`{"key":"3","title":"Photos","type":"photo"},` +
	`{"key":"1","title":"Movies","type":"movie"}]}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *library.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := library.NewClient(library.Config{
		URL:     server.URL,
		Token:   "token",
		Section: "Movies",
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestNewClientValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  library.Config
	}{
		{name: "missing url", cfg: library.Config{Token: "t", Section: "Movies"}},
		{name: "missing token", cfg: library.Config{URL: "http://localhost:32400", Section: "Movies"}},
		{name: "missing section", cfg: library.Config{URL: "http://localhost:32400", Token: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := library.NewClient(tc.cfg, logging.NewNop()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestListMovies(t *testing.T) {
	var sectionLookups int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Plex-Token") != "token" {
			t.Fatalf("missing X-Plex-Token header on %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Fatalf("missing Accept header on %s", r.URL.Path)
		}
		switch r.URL.Path {
		case "/library/sections":
			sectionLookups++
			_, _ = w.Write([]byte(sectionsJSON))
		case "/library/sections/1/all":
			if r.URL.Query().Get("type") != "1" {
				t.Fatalf("expected type=1, got %q", r.URL.RawQuery)
			}
			_, _ = w.Write([]byte(`{"MediaContainer":{"Metadata":[` +
				`{"ratingKey":"11","title":"A Christmas Carol","summary":"Scrooge faces three spirits.","Genre":[{"tag":"Drama"},{"tag":"Fantasy"}]},` +
				`{"ratingKey":"22","title":"Home Alone","summary":"Kevin defends the house."}]}}`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	items, err := client.ListMovies(context.Background())
	if err != nil {
		t.Fatalf("ListMovies returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].RatingKey != "11" || items[0].Title != "A Christmas Carol" {
		t.Fatalf("unexpected first item: %#v", items[0])
	}
	if got := strings.Join(items[0].Genres, ","); got != "Drama,Fantasy" {
		t.Fatalf("genres = %q", got)
	}
	if len(items[1].Genres) != 0 {
		t.Fatalf("expected no genres, got %v", items[1].Genres)
	}

	if _, err := client.ListMovies(context.Background()); err != nil {
		t.Fatalf("second ListMovies returned error: %v", err)
	}
	if sectionLookups != 1 {
		t.Fatalf("section key should be cached, lookups: %d", sectionLookups)
	}
}

func TestListMoviesSectionMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"MediaContainer":{"Directory":[{"key":"2","title":"Shows","type":"show"}]}}`))
	})

	_, err := client.ListMovies(context.Background())
	if err == nil || !strings.Contains(err.Error(), "Movies") {
		t.Fatalf("expected missing-section error, got %v", err)
	}
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/identity" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"MediaContainer":{"machineIdentifier":"abc123"}}`))
	})
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}
