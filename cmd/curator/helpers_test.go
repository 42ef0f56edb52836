package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"curator/internal/history"
	"curator/internal/services"
	"curator/internal/themes"
)

func TestFormatRunDuration(t *testing.T) {
	cases := []struct {
		input time.Duration
		want  string
	}{
		{0, "-"},
		{-time.Second, "-"},
		{450 * time.Millisecond, "450ms"},
		{3*time.Second + 240*time.Millisecond, "3.2s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tc := range cases {
		if got := formatRunDuration(tc.input); got != tc.want {
			t.Errorf("formatRunDuration(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestShortRunID(t *testing.T) {
	if got := shortRunID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("expected truncated id, got %q", got)
	}
	if got := shortRunID("abc"); got != "abc" {
		t.Fatalf("expected short id unchanged, got %q", got)
	}
}

func TestBuildHistoryRows(t *testing.T) {
	started := time.Date(2026, time.March, 1, 4, 30, 0, 0, time.UTC)
	runs := []*history.Run{
		{
			ID:         "11112222-3333-4444-5555-666677778888",
			Theme:      "noir",
			Status:     history.StatusSucceeded,
			Matched:    12,
			StartedAt:  started,
			FinishedAt: started.Add(42 * time.Second),
		},
	}

	rows := buildHistoryRows(runs)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "11112222" {
		t.Errorf("expected truncated run id, got %q", row[0])
	}
	if row[1] != "noir" || row[2] != string(history.StatusSucceeded) {
		t.Errorf("unexpected theme/status cells: %v", row)
	}
	if row[4] != "2026-03-01 04:30" {
		t.Errorf("unexpected start cell: %q", row[4])
	}
}

func TestDescribeRunErrorSuggestsThemes(t *testing.T) {
	dir := t.TempDir()
	for _, slug := range []string{"halloween", "holiday"} {
		if _, err := themes.Save(dir, themes.Theme{Slug: slug, Keywords: []string{slug}}); err != nil {
			t.Fatalf("save theme %s: %v", slug, err)
		}
	}

	cause := services.Wrap(services.ErrNotFound, "themes", "load", "theme hallowen not found", nil)
	err := describeRunError(dir, "hallowen", cause)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "halloween") {
		t.Fatalf("expected suggestion in error, got %q", err.Error())
	}
}

func TestDescribeRunErrorPassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("boom")
	if err := describeRunError(t.TempDir(), "any", cause); !errors.Is(err, cause) {
		t.Fatalf("expected original error, got %v", err)
	}
}
