package main

import (
	"context"
	"fmt"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
)

// runGenerateCmd builds the .tex cookbook, either natively or through an
// external generator script, and returns an exit code.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return reportError(env, err)
	}
	mergeBookFlags(&flags.book, cfg)
	if flags.script != "" {
		cfg.Tools.Script = flags.script
	}

	sourceDir, output := resolveGeneratePaths(flags, positional, cfg)

	if err := generate(ctx, sourceDir, output, cfg, flags, env); err != nil {
		return reportError(env, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return ExitSuccess
}

// resolveGeneratePaths resolves the source directory and output filename
// from positional args, flags, and config, in that order.
func resolveGeneratePaths(flags *generateFlags, positional []string, cfg *config.Config) (sourceDir, output string) {
	sourceDir = cfg.Source.Dir
	if flags.source != "" {
		sourceDir = flags.source
	}
	if len(positional) > 0 {
		sourceDir = positional[0]
	}

	output = cfg.Output.TexFile
	if flags.output != "" {
		output = flags.output
	}
	return sourceDir, output
}

// generate runs the native generator, or the external script when one is
// configured. Script failures propagate verbatim as the command's failure.
func generate(ctx context.Context, sourceDir, output string, cfg *config.Config, flags *generateFlags, env *Environment) error {
	book := bookFromConfig(cfg)

	if cfg.Tools.Script != "" {
		sg := cookbook.NewScriptGenerator(cfg.Tools.Script)
		sg.Python = cfg.Tools.Python
		sg.Runner = env.Runner
		return sg.Generate(ctx, sourceDir, output, book)
	}

	gen := cookbook.NewGenerator(book)
	gen.Cook = &cookbook.Cook{Bin: cfg.Tools.Cook, Runner: env.Runner}
	gen.Workers = flags.workers
	if flags.common.verbose {
		gen.Progress = env.Stderr
	}
	return gen.Generate(ctx, sourceDir, output)
}
