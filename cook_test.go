package cookbook

import (
	"context"
	"errors"
	"testing"
)

// mockRunner records invocations and returns canned output. Shared by
// tests across the package.
type mockRunner struct {
	Stdout string
	Stderr string
	Err    error
	Calls  []mockCall
}

type mockCall struct {
	Dir  string
	Name string
	Args []string
}

func (m *mockRunner) Run(_ context.Context, dir, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, mockCall{Dir: dir, Name: name, Args: args})
	return m.Stdout, m.Stderr, m.Err
}

func (m *mockRunner) lastCall(t *testing.T) mockCall {
	t.Helper()
	if len(m.Calls) == 0 {
		t.Fatal("runner was never called")
	}
	return m.Calls[len(m.Calls)-1]
}

func equalArgs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCook_RecipeLaTeX(t *testing.T) {
	t.Parallel()

	t.Run("passes recipe path and format verbatim", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{Stdout: "\\section{Borscht}"}
		c := &Cook{Bin: "cook", Runner: mock}

		out, err := c.RecipeLaTeX(context.Background(), "soups/borscht.cook")
		if err != nil {
			t.Fatalf("RecipeLaTeX() error = %v", err)
		}
		if out != "\\section{Borscht}" {
			t.Errorf("output = %q, want rendered LaTeX", out)
		}

		call := mock.lastCall(t)
		if call.Name != "cook" {
			t.Errorf("binary = %q, want cook", call.Name)
		}
		want := []string{"recipe", "-f", "latex", "soups/borscht.cook"}
		if !equalArgs(call.Args, want) {
			t.Errorf("args = %v, want %v", call.Args, want)
		}
	})

	t.Run("failure wraps ErrRecipeRender", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{Stderr: "parse error", Err: errors.New("exit status 1")}
		c := &Cook{Bin: "cook", Runner: mock}

		_, err := c.RecipeLaTeX(context.Background(), "bad.cook")
		if !errors.Is(err, ErrRecipeRender) {
			t.Errorf("error = %v, want ErrRecipeRender", err)
		}
	})

	t.Run("custom binary name is used", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{}
		c := &Cook{Bin: "/opt/cook/bin/cook", Runner: mock}

		_, _ = c.RecipeLaTeX(context.Background(), "a.cook")
		if got := mock.lastCall(t).Name; got != "/opt/cook/bin/cook" {
			t.Errorf("binary = %q, want configured path", got)
		}
	})
}

func TestCook_RecipeMarkdown(t *testing.T) {
	t.Parallel()

	mock := &mockRunner{Stdout: "# Borscht"}
	c := &Cook{Bin: "cook", Runner: mock}

	out, err := c.RecipeMarkdown(context.Background(), "borscht.cook")
	if err != nil {
		t.Fatalf("RecipeMarkdown() error = %v", err)
	}
	if out != "# Borscht" {
		t.Errorf("output = %q, want markdown", out)
	}

	want := []string{"recipe", "-f", "markdown", "borscht.cook"}
	if got := mock.lastCall(t).Args; !equalArgs(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestCook_Report(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     ReportOptions
		wantArgs []string
	}{
		{
			name:     "template and recipe only",
			opts:     ReportOptions{Template: "shopping", Recipe: "borscht.cook"},
			wantArgs: []string{"report", "-t", "shopping", "borscht.cook"},
		},
		{
			name:     "scale appended to recipe reference",
			opts:     ReportOptions{Template: "shopping", Recipe: "borscht.cook", Scale: 2.5},
			wantArgs: []string{"report", "-t", "shopping", "borscht.cook:2.5"},
		},
		{
			name:     "db flag",
			opts:     ReportOptions{Template: "cost", Recipe: "borscht.cook", DB: "aisle.conf"},
			wantArgs: []string{"report", "-t", "cost", "borscht.cook", "--db", "aisle.conf"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := &mockRunner{Stdout: "report output"}
			c := &Cook{Bin: "cook", Runner: mock}

			out, err := c.Report(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("Report() error = %v", err)
			}
			if out != "report output" {
				t.Errorf("output = %q", out)
			}
			if got := mock.lastCall(t).Args; !equalArgs(got, tt.wantArgs) {
				t.Errorf("args = %v, want %v", got, tt.wantArgs)
			}
		})
	}

	t.Run("failure wraps ErrReportRender", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{Err: errors.New("exit status 1")}
		c := &Cook{Bin: "cook", Runner: mock}

		_, err := c.Report(context.Background(), ReportOptions{Template: "shopping", Recipe: "x.cook"})
		if !errors.Is(err, ErrReportRender) {
			t.Errorf("error = %v, want ErrReportRender", err)
		}
	})
}
