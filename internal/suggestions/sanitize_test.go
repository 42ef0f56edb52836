package suggestions

import (
	"reflect"
	"testing"
)

func TestSanitizeKeywords(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "numbering and artifacts stripped",
			in:   []string{"1. Holiday", `"Spooky"`, "Winter-Time"},
			want: []string{"Holiday", "Spooky", "Winter-Time"},
		},
		{
			name: "short keywords dropped",
			in:   []string{"A", "AB", "abc"},
			want: []string{"abc"},
		},
		{
			name: "shape enforced",
			in:   []string{"-Family", "Two Words", "90s", "Family", "Noir90"},
			want: []string{"Family", "Noir90"},
		},
		{
			name: "blank entries skipped",
			in:   []string{"", "   ", "Snow"},
			want: []string{"Snow"},
		},
		{
			name: "json punctuation residue removed",
			in:   []string{"{Holiday}", "Theme:", "[Joy]", "Joy!"},
			want: []string{"Holiday", "Theme", "Joy"},
		},
		{
			name: "mixed list",
			in:   []string{"1. Holiday", "AB", "Winter-Time", "-Family"},
			want: []string{"Holiday", "Winter-Time"},
		},
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeKeywords(tc.in)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("SanitizeKeywords(%v) = %v, want empty", tc.in, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SanitizeKeywords(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanTitles(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "year fragment cut",
			in:   []string{"The Matrix (1999)"},
			want: []string{"The Matrix"},
		},
		{
			name: "dash subtitle cut",
			in:   []string{"Halloween - Director's Cut"},
			want: []string{"Halloween"},
		},
		{
			name: "colon subtitle cut",
			in:   []string{"Alien: Resurrection"},
			want: []string{"Alien"},
		},
		{
			name: "surrounding quotes trimmed",
			in:   []string{`"The Thing"`, "'Psycho'"},
			want: []string{"The Thing", "Psycho"},
		},
		{
			name: "conversational refusals dropped",
			in: []string{
				"Here are ten movies for you",
				"It seems you want horror",
				"Sure thing",
				"Based on your theme",
				"I'd suggest these",
				"From what you describe",
				"Psycho",
			},
			want: []string{"Psycho"},
		},
		{
			name: "short titles dropped",
			in:   []string{"Up", "It", "Big"},
			want: []string{"Big"},
		},
		{
			name: "titles reduced to nothing dropped",
			in:   []string{"(1999)", "- untitled", "The Shining"},
			want: []string{"The Shining"},
		},
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanTitles(tc.in)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("CleanTitles(%v) = %v, want empty", tc.in, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("CleanTitles(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
