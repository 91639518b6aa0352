package quiz

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"BareLetter", "C", "C"},
		{"LowercaseBare", "c", "C"},
		{"FullOptionString", "C) It quadruples", "C"},
		{"LowercaseOption", "b) something", "B"},
		{"Parenthesized", "(a) first option", "A"},
		{"LeadingWhitespace", "  D. fourth", "D"},
		{"Digit", "2) two", "2"},
		{"Empty", "", ""},
		{"WhitespaceOnly", "   ", ""},
		{"FreeTextFallback", "quadruples", "Q"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAnswer(tc.in); got != tc.want {
				t.Errorf("NormalizeAnswer(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
