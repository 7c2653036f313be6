package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cookbook "github.com/senz/cookbook"
)

// runHTMLCmd builds the HTML edition and optionally renders it to PDF with
// headless Chrome. Returns an exit code.
func runHTMLCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseHTMLFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return reportError(env, err)
	}

	sourceDir := cfg.Source.Dir
	if flags.source != "" {
		sourceDir = flags.source
	}
	if len(positional) > 0 {
		sourceDir = positional[0]
	}

	output := cfg.Output.HTMLFile
	if flags.output != "" {
		output = flags.output
	}

	gen := cookbook.NewHTMLGenerator(bookFromConfig(cfg))
	gen.Cook = &cookbook.Cook{Bin: cfg.Tools.Cook, Runner: env.Runner}
	gen.Workers = flags.workers
	if flags.common.verbose {
		gen.Progress = env.Stderr
	}

	if err := gen.Generate(ctx, sourceDir, output); err != nil {
		return reportError(env, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}

	if !flags.pdf {
		return ExitSuccess
	}

	renderer := cookbook.NewHTMLRenderer()
	defer renderer.Close()

	pdfBytes, err := renderer.RenderFile(ctx, output)
	if err != nil {
		return reportError(env, err)
	}

	pdfPath := strings.TrimSuffix(output, ".html") + ".pdf"
	if err := os.WriteFile(pdfPath, pdfBytes, cookbook.FilePermissions); err != nil {
		return reportError(env, fmt.Errorf("%w: %v", cookbook.ErrWriteDocument, err))
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", pdfPath)
	}
	return ExitSuccess
}
