package main

import (
	"context"
	"fmt"
	"time"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
)

// loadConfig resolves configuration with precedence
// flags > env > file > defaults. The flags themselves are merged by the
// individual commands; this returns env+file+defaults.
func loadConfig(flagConfig string, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	cfg.ApplyDefaults()
	return cfg, nil
}

// mergeBookFlags merges book metadata flags into config (CLI wins).
func mergeBookFlags(f *bookFlags, cfg *config.Config) {
	if f.title != "" {
		cfg.Book.Title = f.title
	}
	if f.author != "" {
		cfg.Book.Author = f.author
	}
	if f.language != "" {
		cfg.Book.Language = f.language
	}
	if f.indexTitle != "" {
		cfg.Book.IndexTitle = f.indexTitle
	}
	if f.noIndex {
		cfg.Book.NoIndex = true
	}
	if f.noTOC {
		cfg.Book.NoTOC = true
	}
}

// bookFromConfig builds the library Book value from config.
func bookFromConfig(cfg *config.Config) cookbook.Book {
	b := cookbook.Book{
		Title:        cfg.Book.Title,
		Author:       cfg.Book.Author,
		Language:     cfg.Book.Language,
		IndexTitle:   cfg.Book.IndexTitle,
		IncludeIndex: !cfg.Book.NoIndex,
		IncludeTOC:   !cfg.Book.NoTOC,
	}
	return b
}

// commandContext applies an optional timeout string to ctx.
// COOKBOOK_TIMEOUT applies when the flag is empty.
func commandContext(ctx context.Context, flagTimeout string) (context.Context, context.CancelFunc, error) {
	timeout := flagTimeout
	if timeout == "" {
		if d := loadEnvConfig().Timeout; d > 0 {
			ctx, cancel := context.WithTimeout(ctx, d)
			return ctx, cancel, nil
		}
		return ctx, func() {}, nil
	}

	d, err := time.ParseDuration(timeout)
	if err != nil || d <= 0 {
		return nil, nil, fmt.Errorf("invalid timeout %q", timeout)
	}
	tctx, cancel := context.WithTimeout(ctx, d)
	return tctx, cancel, nil
}

// reportError prints an error and maps it to an exit code.
func reportError(env *Environment, err error) int {
	fmt.Fprintln(env.Stderr, err)
	return exitCodeFor(err)
}
