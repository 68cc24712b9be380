package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "basic formatting",
			input:    `style "card"{cornerRadius=4}`,
			expected: `style "card" { cornerRadius = 4 }`,
		},
		{
			name: "already formatted stays same",
			input: `style "card" {
  cornerRadius = 4
  textColor    = palette.ink
}
`,
			expected: `style "card" {
  cornerRadius = 4
  textColor    = palette.ink
}
`,
		},
		{
			name:     "extra whitespace normalized",
			input:    `palette   {   ink   =   "#191724ff"   }`,
			expected: `palette { ink = "#191724ff" }`,
		},
		{
			name:     "empty content",
			input:    "",
			expected: "",
		},
		{
			name: "attributes aligned",
			input: `style "button" {
  inherited = ["base"]
  cornerRadius = 8
  borderColor = palette.ink
}`,
			expected: `style "button" {
  inherited    = ["base"]
  cornerRadius = 8
  borderColor  = palette.ink
}`,
		},
		{
			name:     "multiple blank lines collapsed to one",
			input:    "palette { ink = \"#191724ff\" }\n\n\n\nstyle \"a\" { cornerRadius = 1 }",
			expected: "palette { ink = \"#191724ff\" }\n\nstyle \"a\" { cornerRadius = 1 }",
		},
		{
			name:     "single blank line preserved",
			input:    "palette { ink = \"#191724ff\" }\n\nstyle \"a\" { cornerRadius = 1 }",
			expected: "palette { ink = \"#191724ff\" }\n\nstyle \"a\" { cornerRadius = 1 }",
		},
		{
			name:     "blank line after opening brace removed",
			input:    "palette {\n\n  ink = \"#191724ff\"\n}",
			expected: "palette {\n  ink = \"#191724ff\"\n}",
		},
		{
			name:     "blank line before closing brace removed",
			input:    "palette {\n  ink = \"#191724ff\"\n\n}",
			expected: "palette {\n  ink = \"#191724ff\"\n}",
		},
		{
			name:     "nested block blank lines removed",
			input:    "style \"a\" {\n\n  padding {\n\n    left = 4\n\n  }\n\n}",
			expected: "style \"a\" {\n  padding {\n    left = 4\n  }\n}",
		},
		{
			name:     "hex lowercased",
			input:    "palette {\n  ink = \"#A82116FF\"\n}\n",
			expected: "palette {\n  ink = \"#a82116ff\"\n}\n",
		},
		{
			name:     "six digit hex gets alpha",
			input:    "style \"a\" {\n  textColor = \"#A82116\"\n}\n",
			expected: "style \"a\" {\n  textColor = \"#a82116ff\"\n}\n",
		},
		{
			name:     "hex inside function call",
			input:    "palette {\n  dim = darken(\"#FFFFFF\", 0.2)\n}\n",
			expected: "palette {\n  dim = darken(\"#ffffffff\", 0.2)\n}\n",
		},
		{
			name:     "component strings untouched",
			input:    "style \"a\" {\n  textColor = \"r:255,g:0,b:0,a:0.5\"\n}\n",
			expected: "style \"a\" {\n  textColor = \"r:255,g:0,b:0,a:0.5\"\n}\n",
		},
		{
			name:     "style labels untouched",
			input:    "style \"ABCDEF\" {\n  cornerRadius = 1\n}\n",
			expected: "style \"ABCDEF\" {\n  cornerRadius = 1\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Format(tt.input)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			// Normalize line endings for comparison
			result = strings.TrimSuffix(result, "\n")
			expected := strings.TrimSuffix(tt.expected, "\n")

			if result != expected {
				t.Errorf("Format() = %q, want %q", result, expected)
			}
		})
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	input := "palette{ink=\"#A82116\"}\n\n\n\nstyle \"a\"{\n\ntextColor=palette.ink\n}\n"
	once, err := Format(input)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Format(once)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("Format is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestFormatInvalidHCL(t *testing.T) {
	// hclwrite.Format should handle partial/invalid HCL gracefully
	input := `style "a" { textColor = "#ABCDEF"`
	got, err := Format(input)
	// The function should not error even on incomplete HCL
	if err != nil {
		t.Errorf("Format() on incomplete HCL should not error, got: %v", err)
	}
	if !strings.Contains(got, "#ABCDEF") {
		t.Errorf("Format() rewrote hex in unparseable source: %q", got)
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"#A82116FF", "#a82116ff", true},
		{"#a82116", "#a82116ff", true},
		{"#ABC", "#ABC", false},
		{"A82116FF", "A82116FF", false},
		{"#A82116F", "#A82116F", false},
		{"#GG2116FF", "#GG2116FF", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeHex(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeHex(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
