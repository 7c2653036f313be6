package cookbook

import (
	"context"
	"fmt"
	"strconv"
)

// Cook invokes the external cook CLI. The tool's internals are opaque to
// this package; only its command-line contract is used.
type Cook struct {
	Bin    string // binary name or path, default "cook"
	Runner CommandRunner
}

// NewCook creates a Cook client with a real command runner.
func NewCook() *Cook {
	return &Cook{Bin: "cook", Runner: &ExecRunner{}}
}

// RecipeLaTeX renders a single recipe to LaTeX via "cook recipe -f latex".
// The output carries marker comments (BEGIN_RECIPE_CONTENT and friends)
// used by the generator to extract the body.
func (c *Cook) RecipeLaTeX(ctx context.Context, recipePath string) (string, error) {
	return c.recipe(ctx, "latex", recipePath)
}

// RecipeMarkdown renders a single recipe to Markdown via
// "cook recipe -f markdown". Used by the HTML edition.
func (c *Cook) RecipeMarkdown(ctx context.Context, recipePath string) (string, error) {
	return c.recipe(ctx, "markdown", recipePath)
}

func (c *Cook) recipe(ctx context.Context, format, recipePath string) (string, error) {
	stdout, stderr, err := c.Runner.Run(ctx, "", c.Bin, "recipe", "-f", format, recipePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s: %v", ErrRecipeRender, recipePath, stderr, err)
	}
	return stdout, nil
}

// ReportOptions configures a cook report invocation.
type ReportOptions struct {
	Template string  // report template name, required
	Recipe   string  // recipe file path, required
	Scale    float64 // servings multiplier, 0 = unscaled
	DB       string  // aisle/cost database path, optional
}

// Report renders a recipe report via
// "cook report -t <template> <recipe>[:scale] [--db <path>]" and returns
// the rendered text. Inputs are passed through verbatim.
func (c *Cook) Report(ctx context.Context, opts ReportOptions) (string, error) {
	ref := opts.Recipe
	if opts.Scale > 0 {
		ref += ":" + strconv.FormatFloat(opts.Scale, 'f', -1, 64)
	}

	args := []string{"report", "-t", opts.Template, ref}
	if opts.DB != "" {
		args = append(args, "--db", opts.DB)
	}

	stdout, stderr, err := c.Runner.Run(ctx, "", c.Bin, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s: %v", ErrReportRender, opts.Recipe, stderr, err)
	}
	return stdout, nil
}

// Version returns the cook CLI version string, mainly for diagnostics.
func (c *Cook) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.Runner.Run(ctx, "", c.Bin, "--version")
	if err != nil {
		return "", err
	}
	return stdout, nil
}
