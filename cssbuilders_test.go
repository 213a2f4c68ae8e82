package xhtml2html

import (
	"strings"
	"testing"
)

func TestBuildStyleBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tableCSS string
		rules    []string
		extraCSS string
		want     string
	}{
		{
			name:     "table css only",
			tableCSS: "table { width: 100% }",
			want:     "<style>table { width: 100% }</style>",
		},
		{
			name:     "rules in order after table css",
			tableCSS: "table { width: 100% }",
			rules:    []string{"#a { color: red }", "#b { color: blue }"},
			want:     "<style>table { width: 100% }\n#a { color: red }\n#b { color: blue }</style>",
		},
		{
			name:     "extra css last",
			tableCSS: "table {}",
			rules:    []string{"p {}"},
			extraCSS: "body { margin: 0 }",
			want:     "<style>table {}\np {}\nbody { margin: 0 }</style>",
		},
		{
			name:     "empty extra css omitted",
			tableCSS: "table {}",
			extraCSS: "",
			want:     "<style>table {}</style>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildStyleBlock(tt.tableCSS, tt.rules, tt.extraCSS)
			if got != tt.want {
				t.Errorf("buildStyleBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildStyleBlockSanitizes(t *testing.T) {
	t.Parallel()

	got := buildStyleBlock("table {}", nil, "</style><script>alert(1)</script>")
	if strings.Contains(got[len("<style>"):len(got)-len("</style>")], "</") {
		t.Errorf("style block contains unescaped close sequence: %q", got)
	}
	if !strings.Contains(got, `<\/style>`) {
		t.Errorf("close sequence not rewritten: %q", got)
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"p { color: red }", "p { color: red }"},
		{"</style>", `<\/style>`},
		{"a</b</c", `a<\/b<\/c`},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := sanitizeCSS(tt.in); got != tt.want {
			t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
