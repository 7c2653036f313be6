package main

import (
	"context"
	"fmt"

	cookbook "github.com/senz/cookbook"
)

// runReportCmd renders a recipe report to stdout via the cook CLI and
// returns an exit code.
func runReportCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseReportFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}
	if len(positional) == 0 {
		fmt.Fprintln(env.Stderr, "report: missing recipe file")
		printReportUsage(env.Stderr)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return reportError(env, err)
	}

	template := flags.template
	if template == "" {
		template = cfg.Report.Template
	}
	if template == "" {
		fmt.Fprintln(env.Stderr, "report: no template given (use -t or report.template in config)")
		return ExitUsage
	}

	db := flags.db
	if db == "" {
		db = cfg.Report.DB
	}

	cook := &cookbook.Cook{Bin: cfg.Tools.Cook, Runner: env.Runner}
	out, err := cook.Report(ctx, cookbook.ReportOptions{
		Template: template,
		Recipe:   positional[0],
		Scale:    flags.scale,
		DB:       db,
	})
	if err != nil {
		return reportError(env, err)
	}

	fmt.Fprint(env.Stdout, out)
	return ExitSuccess
}
