package cookbook

import (
	"strings"
	"testing"
)

func TestEscapeLaTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Borscht", "Borscht"},
		{"ampersand", "Mac & Cheese", `Mac \& Cheese`},
		{"percent", "50% cream", `50\% cream`},
		{"underscore", "prep_time", `prep\_time`},
		{"hash", "recipe #1", `recipe \#1`},
		{"dollar", "$5 dinner", `\$5 dinner`},
		{"braces", "{salt}", `\{salt\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"caret and tilde", "2^3 ~approx", `2\^{}3 \~{}approx`},
		{"angle brackets and pipe", "a<b|c>d", `a\textless{}b\textbar{}c\textgreater{}d`},
		{"cyrillic untouched", "Борщ со сметаной", "Борщ со сметаной"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EscapeLaTeX(tt.input); got != tt.want {
				t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("collects known keys", func(t *testing.T) {
		t.Parallel()
		content := strings.Join([]string{
			"% DESCRIPTION: A hearty soup",
			"% TAGS: soup, winter",
			"% SERVINGS: 4",
			"% AUTHOR: Grandma",
			"\\section{Borscht}",
		}, "\n")

		got := extractMetadata(content)
		want := map[string]string{
			"description": "A hearty soup",
			"tags":        "soup, winter",
			"servings":    "4",
			"author":      "Grandma",
		}
		if len(got) != len(want) {
			t.Fatalf("metadata = %v, want %v", got, want)
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("metadata[%q] = %q, want %q", k, got[k], v)
			}
		}
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		t.Parallel()
		content := "% SERVINGS: 4\n% SERVINGS: 8\n"
		got := extractMetadata(content)
		if got["servings"] != "4" {
			t.Errorf("servings = %q, want first value 4", got["servings"])
		}
	})

	t.Run("empty values are skipped", func(t *testing.T) {
		t.Parallel()
		got := extractMetadata("% TAGS: \n")
		if _, ok := got["tags"]; ok {
			t.Errorf("empty tag value should not be recorded, got %v", got)
		}
	})

	t.Run("no metadata lines", func(t *testing.T) {
		t.Parallel()
		if got := extractMetadata("\\section{Plain}"); len(got) != 0 {
			t.Errorf("metadata = %v, want empty", got)
		}
	})
}

func TestExtractRecipeBody(t *testing.T) {
	t.Parallel()

	rendered := strings.Join([]string{
		"% preamble noise",
		"% BEGIN_RECIPE_CONTENT",
		"% BEGIN_TITLE",
		"\\section{Borscht}",
		"% END_TITLE",
		"Step one.",
		"Step two.",
		"% END_RECIPE_CONTENT",
		"% trailer",
	}, "\n")

	t.Run("extracts body and strips title block", func(t *testing.T) {
		t.Parallel()
		got := extractRecipeBody(rendered)
		if strings.Contains(got, "BEGIN_TITLE") || strings.Contains(got, "\\section{Borscht}") {
			t.Errorf("title block not stripped: %q", got)
		}
		if !strings.Contains(got, "Step one.") || !strings.Contains(got, "Step two.") {
			t.Errorf("body steps missing: %q", got)
		}
		if strings.Contains(got, "preamble noise") || strings.Contains(got, "trailer") {
			t.Errorf("content outside markers leaked: %q", got)
		}
	})

	t.Run("missing markers returns empty", func(t *testing.T) {
		t.Parallel()
		if got := extractRecipeBody("\\section{No markers}"); got != "" {
			t.Errorf("body = %q, want empty", got)
		}
	})

	t.Run("end before begin returns empty", func(t *testing.T) {
		t.Parallel()
		broken := "% END_RECIPE_CONTENT\n% BEGIN_RECIPE_CONTENT\n"
		if got := extractRecipeBody(broken); got != "" {
			t.Errorf("body = %q, want empty", got)
		}
	})

	t.Run("body without title block passes through", func(t *testing.T) {
		t.Parallel()
		content := "% BEGIN_RECIPE_CONTENT\nJust steps.\n% END_RECIPE_CONTENT\n"
		if got := extractRecipeBody(content); got != "Just steps." {
			t.Errorf("body = %q, want %q", got, "Just steps.")
		}
	})
}

func TestRenderPreamble(t *testing.T) {
	t.Parallel()

	t.Run("full book", func(t *testing.T) {
		t.Parallel()
		got, err := renderPreamble(DefaultBook())
		if err != nil {
			t.Fatalf("renderPreamble() error = %v", err)
		}

		for _, want := range []string{
			`\documentclass[11pt,a4paper,twoside]{book}`,
			`\setdefaultlanguage{russian}`,
			`\usepackage{imakeidx}`,
			`title=Указатель рецептов`,
			`{\Huge\bfseries My Cookbook}`,
			`\tableofcontents`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("preamble missing %q", want)
			}
		}
	})

	t.Run("index and toc disabled", func(t *testing.T) {
		t.Parallel()
		b := DefaultBook()
		b.IncludeIndex = false
		b.IncludeTOC = false

		got, err := renderPreamble(b)
		if err != nil {
			t.Fatalf("renderPreamble() error = %v", err)
		}
		if strings.Contains(got, "makeidx") || strings.Contains(got, `\makeindex`) {
			t.Error("preamble contains index setup despite IncludeIndex=false")
		}
		if strings.Contains(got, `\tableofcontents`) {
			t.Error("preamble contains TOC despite IncludeTOC=false")
		}
	})

	t.Run("title and author are escaped", func(t *testing.T) {
		t.Parallel()
		b := DefaultBook()
		b.Title = "Soups & Stews"
		b.Author = "O_Connor"

		got, err := renderPreamble(b)
		if err != nil {
			t.Fatalf("renderPreamble() error = %v", err)
		}
		if !strings.Contains(got, `Soups \& Stews`) {
			t.Error("title not escaped")
		}
		if !strings.Contains(got, `O\_Connor`) {
			t.Error("author not escaped")
		}
	})
}

func TestRenderFooter(t *testing.T) {
	t.Parallel()

	withIndex, err := renderFooter(DefaultBook())
	if err != nil {
		t.Fatalf("renderFooter() error = %v", err)
	}
	if !strings.Contains(withIndex, `\printindex`) {
		t.Error("footer missing \\printindex with index enabled")
	}
	if !strings.Contains(withIndex, `\end{document}`) {
		t.Error("footer missing \\end{document}")
	}

	b := DefaultBook()
	b.IncludeIndex = false
	withoutIndex, err := renderFooter(b)
	if err != nil {
		t.Fatalf("renderFooter() error = %v", err)
	}
	if strings.Contains(withoutIndex, `\printindex`) {
		t.Error("footer contains \\printindex despite IncludeIndex=false")
	}
}
