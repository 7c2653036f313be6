package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/senz/cookbook/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // COOKBOOK_CONFIG: config file path
	Title      string        // COOKBOOK_TITLE: cookbook title
	Author     string        // COOKBOOK_AUTHOR: author name
	SourceDir  string        // COOKBOOK_SOURCE_DIR: recipe tree root
	TexFile    string        // COOKBOOK_TEX_FILE: typesetting source name
	Script     string        // COOKBOOK_SCRIPT: generator script path
	Latex      string        // COOKBOOK_LATEX: typesetting compiler binary
	Cook       string        // COOKBOOK_COOK: recipe CLI binary
	Timeout    time.Duration // COOKBOOK_TIMEOUT: per-pass timeout
}

// knownEnvVars lists valid COOKBOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"COOKBOOK_CONFIG":     true,
	"COOKBOOK_TITLE":      true,
	"COOKBOOK_AUTHOR":     true,
	"COOKBOOK_SOURCE_DIR": true,
	"COOKBOOK_TEX_FILE":   true,
	"COOKBOOK_SCRIPT":     true,
	"COOKBOOK_LATEX":      true,
	"COOKBOOK_COOK":       true,
	"COOKBOOK_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("COOKBOOK_CONFIG"),
		Title:      os.Getenv("COOKBOOK_TITLE"),
		Author:     os.Getenv("COOKBOOK_AUTHOR"),
		SourceDir:  os.Getenv("COOKBOOK_SOURCE_DIR"),
		TexFile:    os.Getenv("COOKBOOK_TEX_FILE"),
		Script:     os.Getenv("COOKBOOK_SCRIPT"),
		Latex:      os.Getenv("COOKBOOK_LATEX"),
		Cook:       os.Getenv("COOKBOOK_COOK"),
	}

	if timeout := os.Getenv("COOKBOOK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized COOKBOOK_* variables.
// Helps catch typos like COOKBOOK_AUTOR instead of COOKBOOK_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "COOKBOOK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment variable values onto config.
// A set variable replaces whatever the config file carried, giving
// CLI flags > env vars > config file > defaults
// (CLI flags are merged later by the individual commands).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Title != "" {
		cfg.Book.Title = env.Title
	}
	if env.Author != "" {
		cfg.Book.Author = env.Author
	}
	if env.SourceDir != "" {
		cfg.Source.Dir = env.SourceDir
	}
	if env.TexFile != "" {
		cfg.Output.TexFile = env.TexFile
	}
	if env.Script != "" {
		cfg.Tools.Script = env.Script
	}
	if env.Latex != "" {
		cfg.Tools.Latex = env.Latex
	}
	if env.Cook != "" {
		cfg.Tools.Cook = env.Cook
	}
}
