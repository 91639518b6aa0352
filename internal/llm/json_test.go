package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"PlainJSON", `{"title": "Go"}`, `{"title": "Go"}`},
		{"FencedWithTag", "```json\n{\"title\": \"Go\"}\n```", `{"title": "Go"}`},
		{"FencedNoTag", "```\n[1, 2, 3]\n```", `[1, 2, 3]`},
		{"FenceOnSameLine", "```{\"a\": 1}```", `{"a": 1}`},
		{"SurroundingWhitespace", "  \n```json\n{}\n```  \n", `{}`},
		{"Empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.in); got != tc.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
