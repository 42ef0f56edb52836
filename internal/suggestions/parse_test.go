package suggestions

import (
	"reflect"
	"testing"
)

func TestParseList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["Spooky", "Halloween", "Pumpkin"]`,
			want: []string{"Spooky", "Halloween", "Pumpkin"},
		},
		{
			name: "json array with surrounding whitespace",
			raw:  "  [ \"Spooky\" , \"Halloween\" ]\n",
			want: []string{"Spooky", "Halloween"},
		},
		{
			name: "json array mixed scalars",
			raw:  `["Action", 7, true, null, "  "]`,
			want: []string{"Action", "7", "true"},
		},
		{
			name: "json array skips nested containers",
			raw:  `["Action", {"genre": "ignored"}, ["ignored"], "Drama"]`,
			want: []string{"Action", "Drama"},
		},
		{
			name: "json object arrays in document order",
			raw:  `{"genres": ["Christmas", "Holiday"], "note": "ignored", "moods": ["Family", "Joy"]}`,
			want: []string{"Christmas", "Holiday", "Family", "Joy"},
		},
		{
			name: "empty json array yields nothing",
			raw:  `[]`,
			want: nil,
		},
		{
			name: "json with trailing prose falls through to extraction",
			raw:  `["Spooky", "Halloween"] plus a few more if you want them`,
			want: []string{"Spooky", "Halloween"},
		},
		{
			name: "arrays embedded in prose",
			raw:  `Here you go: ["Spooky", "Halloween"] and also ["Pumpkin"]. Enjoy!`,
			want: []string{"Spooky", "Halloween", "Pumpkin"},
		},
		{
			name: "malformed fragments with quoted keys",
			raw:  `Genre": ["Christmas", "Holiday"], Theme": ["Family"]`,
			want: []string{"Christmas", "Holiday", "Family"},
		},
		{
			name: "extraction drops short pieces",
			raw:  `Keywords: ["A", "AB", "ABC"]`,
			want: []string{"ABC"},
		},
		{
			name: "numbered lines",
			raw:  "1. The Shining\n2. Halloween\n3. Scream",
			want: []string{"The Shining", "Halloween", "Scream"},
		},
		{
			name: "bulleted lines",
			raw:  "- Spooky\n- Halloween\n- Pumpkin",
			want: []string{"Spooky", "Halloween", "Pumpkin"},
		},
		{
			name: "comma separated prose",
			raw:  `Spooky, Halloween, Pumpkin Patch`,
			want: []string{"Spooky", "Halloween", "Pumpkin Patch"},
		},
		{
			name: "single bare value",
			raw:  "Spooky",
			want: []string{"Spooky"},
		},
		{
			name: "one enclosing layer stripped before line split",
			raw:  "{Spooky\nHalloween}",
			want: []string{"Spooky", "Halloween"},
		},
		{
			name: "duplicate lines removed in order",
			raw:  "1. Halloween\n2. Halloween\n3. Scream",
			want: []string{"Halloween", "Scream"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \n\t",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseList(tc.raw)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("ParseList(%q) = %v, want empty", tc.raw, got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseList(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseListCapsEmbeddedExtraction(t *testing.T) {
	raw := `Plenty of options here: [One1, Two2, Three3, Four4, Five5, Six6, Seven7, Eight8, Nine9, Ten10, Eleven11, Twelve12]`
	got := ParseList(raw)
	if len(got) != 10 {
		t.Fatalf("expected extraction capped at 10 items, got %d: %v", len(got), got)
	}
	if got[0] != "One1" || got[9] != "Ten10" {
		t.Fatalf("unexpected capped slice: %v", got)
	}
}
