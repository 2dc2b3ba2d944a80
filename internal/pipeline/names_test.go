package pipeline

import "testing"

func TestSplitName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Anna Maria Schmidt", "Anna Maria", "Schmidt"},
		{"Max Mustermann", "Max", "Mustermann"},
		{"  Max   Mustermann  ", "Max", "Mustermann"},
		{"Madonna", "", "Madonna"},
		{"", "", ""},
		// Particle surnames split at the last space; documented limitation.
		{"Jan van der Berg", "Jan van der", "Berg"},
	}
	for _, tc := range cases {
		first, last := SplitName(tc.in)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitName(%q) = (%q, %q), want (%q, %q)",
				tc.in, first, last, tc.first, tc.last)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct{ in, out string }{
		{"  a  b ", "a b"},
		{"a\t\tb", "a b"},
		{"a", "a"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := CollapseWhitespace(tc.in); got != tc.out {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
