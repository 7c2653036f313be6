// Package config loads and validates cookbook build configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/senz/cookbook/internal/fileutil"
	"github.com/senz/cookbook/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits. Generous, they exist to catch pasted garbage rather
// than to police anyone.
const (
	MaxTitleLength    = 200
	MaxAuthorLength   = 100
	MaxLanguageLength = 30
	MaxPathLength     = 4096
	MaxURLLength      = 2048
	MaxTemplateLength = 100
)

// Config holds all configuration for cookbook builds.
type Config struct {
	Book   BookConfig   `yaml:"book"`
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Tools  ToolsConfig  `yaml:"tools"`
	Report ReportConfig `yaml:"report"`
}

// BookConfig defines document metadata.
type BookConfig struct {
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	Language   string `yaml:"language"`   // polyglossia language (default: "russian")
	IndexTitle string `yaml:"indexTitle"` // heading above the recipe index
	NoIndex    bool   `yaml:"noIndex"`    // skip index generation
	NoTOC      bool   `yaml:"noToc"`      // skip table of contents
}

// SourceConfig defines where recipes live.
type SourceConfig struct {
	Dir string `yaml:"dir"` // recipe tree root (default: "recipes")
}

// OutputConfig defines generated artifact names.
type OutputConfig struct {
	TexFile  string `yaml:"texFile"`  // typesetting source (default: "cookbook.tex")
	HTMLFile string `yaml:"htmlFile"` // HTML edition (default: "cookbook.html")
}

// ToolsConfig names the external collaborators. All plain strings, no
// schema validation beyond length; missing tools surface at invocation.
type ToolsConfig struct {
	Cook      string `yaml:"cook"`      // recipe CLI (default: "cook")
	Latex     string `yaml:"latex"`     // typesetting compiler (default: "xelatex")
	Makeindex string `yaml:"makeindex"` // index builder (default: "makeindex")
	Python    string `yaml:"python"`    // generator script interpreter (default: "python3")
	Script    string `yaml:"script"`    // generator script path; empty = native generator
	ScriptURL string `yaml:"scriptURL"` // download source for the script
}

// ReportConfig defines defaults for cook report invocations.
type ReportConfig struct {
	Template string `yaml:"template"` // report template name
	DB       string `yaml:"db"`       // aisle/cost database path
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Dir: "recipes"},
		Output: OutputConfig{TexFile: "cookbook.tex", HTMLFile: "cookbook.html"},
		Tools: ToolsConfig{
			Cook:      "cook",
			Latex:     "xelatex",
			Makeindex: "makeindex",
			Python:    "python3",
		},
	}
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.author", c.Book.Author, MaxAuthorLength},
		{"book.language", c.Book.Language, MaxLanguageLength},
		{"book.indexTitle", c.Book.IndexTitle, MaxTitleLength},
		{"source.dir", c.Source.Dir, MaxPathLength},
		{"output.texFile", c.Output.TexFile, MaxPathLength},
		{"output.htmlFile", c.Output.HTMLFile, MaxPathLength},
		{"tools.cook", c.Tools.Cook, MaxPathLength},
		{"tools.latex", c.Tools.Latex, MaxPathLength},
		{"tools.makeindex", c.Tools.Makeindex, MaxPathLength},
		{"tools.python", c.Tools.Python, MaxPathLength},
		{"tools.script", c.Tools.Script, MaxPathLength},
		{"tools.scriptURL", c.Tools.ScriptURL, MaxURLLength},
		{"report.template", c.Report.Template, MaxTemplateLength},
		{"report.db", c.Report.DB, MaxPathLength},
	}
	for _, chk := range checks {
		if len(chk.value) > chk.max {
			return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, chk.field, len(chk.value), chk.max)
		}
	}
	return nil
}

// ApplyDefaults fills zero-valued fields with DefaultConfig values so a
// sparse YAML file behaves like the defaults plus overrides.
func (c *Config) ApplyDefaults() {
	def := DefaultConfig()
	if c.Source.Dir == "" {
		c.Source.Dir = def.Source.Dir
	}
	if c.Output.TexFile == "" {
		c.Output.TexFile = def.Output.TexFile
	}
	if c.Output.HTMLFile == "" {
		c.Output.HTMLFile = def.Output.HTMLFile
	}
	if c.Tools.Cook == "" {
		c.Tools.Cook = def.Tools.Cook
	}
	if c.Tools.Latex == "" {
		c.Tools.Latex = def.Tools.Latex
	}
	if c.Tools.Makeindex == "" {
		c.Tools.Makeindex = def.Tools.Makeindex
	}
	if c.Tools.Python == "" {
		c.Tools.Python = def.Tools.Python
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Defaults are NOT applied here: callers merge environment overrides
	// first and then call ApplyDefaults, so precedence stays
	// flags > env > file > defaults.
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml. Tries locations in
// order: current directory, ~/.config/cookbook/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "cookbook", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
