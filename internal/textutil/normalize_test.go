package textutil

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "The MATRIX", "the matrix"},
		{"strips year parenthetical", "The Matrix (1999)", "the matrix"},
		{"strips multiple parentheticals", "Dune (2021) (IMAX)", "dune"},
		{"strips punctuation", "Don't Look Up!", "dont look up"},
		{"folds diacritics", "Amélie", "amelie"},
		{"folds decomposed diacritics", "Amélie", "amelie"},
		{"keeps digits", "2001: A Space Odyssey", "2001 a space odyssey"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation only", "?!*", ""},
		{"unmatched paren", "Movie (unfinished", "movie unfinished"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTitle(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTitleEquivalence(t *testing.T) {
	if NormalizeTitle("The Matrix (1999)") != NormalizeTitle("the matrix") {
		t.Errorf("parenthetical and case variants should normalize equal")
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{
		"The Matrix (1999)",
		"Amélie",
		"Wall·E",
		"2001: A Space Odyssey",
		"",
	}
	for _, input := range inputs {
		once := NormalizeTitle(input)
		twice := NormalizeTitle(once)
		if once != twice {
			t.Errorf("NormalizeTitle not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"splits words", "October Horror Nights", []string{"october", "horror", "nights"}},
		{"dedups preserving order", "Holiday Holiday Classics", []string{"holiday", "classics"}},
		{"keeps digits", "Top 10 Thrillers", []string{"top", "10", "thrillers"}},
		{"empty", "", nil},
		{"punctuation only", "&&&", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
