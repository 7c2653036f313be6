package main

import (
	"context"
	"fmt"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
	"github.com/senz/cookbook/internal/fileutil"
)

// runPDFCmd typesets <base>.tex to PDF with the fixed pass sequence and
// returns an exit code. The base name defaults to the configured output
// file with its extension stripped.
func runPDFCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags("pdf", args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, base, errCode := resolveBuild(flags, positional, env)
	if errCode != ExitSuccess {
		return errCode
	}

	tctx, cancel, err := commandContext(ctx, flags.timeout)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	defer cancel()

	tex := newTexBuilder(cfg, env)
	if err := tex.BuildPDF(tctx, base); err != nil {
		return reportError(env, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s.pdf\n", base)
	}
	return ExitSuccess
}

// runIndexCmd rebuilds only the recipe index and returns an exit code.
func runIndexCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags("index", args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, base, errCode := resolveBuild(flags, positional, env)
	if errCode != ExitSuccess {
		return errCode
	}

	tctx, cancel, err := commandContext(ctx, flags.timeout)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	defer cancel()

	tex := newTexBuilder(cfg, env)
	if err := tex.BuildIndex(tctx, base); err != nil {
		return reportError(env, err)
	}
	return ExitSuccess
}

// runCleanCmd removes intermediate artifacts. Cleaning is best-effort by
// contract: a broken config falls back to the default base name instead of
// failing the command.
func runCleanCmd(args []string, env *Environment) int {
	flags, positional, err := parseBuildFlags("clean", args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	base := "cookbook"
	if cfg, err := loadConfig(flags.common.config, env); err == nil {
		base = fileutil.BaseName(cfg.Output.TexFile)
	}
	if len(positional) > 0 {
		base = positional[0]
	}

	removed := cookbook.Clean(".", base)
	if flags.common.verbose {
		for _, path := range removed {
			fmt.Fprintf(env.Stderr, "removed %s\n", path)
		}
	}
	return ExitSuccess
}

// resolveBuild loads config and derives the typesetting base name.
func resolveBuild(flags *buildFlags, positional []string, env *Environment) (*config.Config, string, int) {
	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return nil, "", reportError(env, err)
	}

	base := fileutil.BaseName(cfg.Output.TexFile)
	if len(positional) > 0 {
		base = positional[0]
	}
	return cfg, base, ExitSuccess
}

// newTexBuilder builds the typesetting driver from config and environment.
func newTexBuilder(cfg *config.Config, env *Environment) *cookbook.TexBuilder {
	tex := cookbook.NewTexBuilder(".")
	tex.Latex = cfg.Tools.Latex
	tex.Makeindex = cfg.Tools.Makeindex
	tex.Runner = env.Runner
	return tex
}
