package main

import (
	"context"
	"path/filepath"

	cookbook "github.com/senz/cookbook"
)

// defaultScriptPath is where the generator script lands when neither
// --script nor tools.script names a location.
var defaultScriptPath = filepath.Join("tools", "create_cookbook.py")

// runSetupCmd bootstraps the build environment and returns an exit code.
// A missing cook CLI is a hard precondition failure: the diagnostic goes
// to stderr and nothing else runs.
func runSetupCmd(ctx context.Context, args []string, env *Environment) int {
	flags, err := parseSetupFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config, env)
	if err != nil {
		return reportError(env, err)
	}

	scriptPath := cfg.Tools.Script
	if flags.script != "" {
		scriptPath = flags.script
	}
	if scriptPath == "" {
		scriptPath = defaultScriptPath
	}

	scriptURL := cfg.Tools.ScriptURL
	if flags.url != "" {
		scriptURL = flags.url
	}

	b := &cookbook.Bootstrap{
		LookPath: env.LookPath,
		Client:   env.Client,
		Runner:   env.Runner,
	}
	if !flags.common.quiet {
		b.Output = env.Stdout
	}

	opts := cookbook.BootstrapOptions{
		Cook:         cfg.Tools.Cook,
		ScriptPath:   scriptPath,
		ScriptURL:    scriptURL,
		InstallHooks: !flags.noHooks,
	}
	if err := b.Run(ctx, opts); err != nil {
		return reportError(env, err)
	}
	return ExitSuccess
}
