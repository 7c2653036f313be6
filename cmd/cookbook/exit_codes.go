package main

import (
	"errors"
	"os"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
)

// Exit codes for the cookbook CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, empty source tree
	ExitTool    = 4 // External tool missing or failing
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, cookbook.ErrCookNotFound) ||
		errors.Is(err, cookbook.ErrLatexCompile) ||
		errors.Is(err, cookbook.ErrMakeindex) ||
		errors.Is(err, cookbook.ErrRecipeRender) ||
		errors.Is(err, cookbook.ErrReportRender) ||
		errors.Is(err, cookbook.ErrScriptInvoke) ||
		errors.Is(err, cookbook.ErrPreCommitInstall) ||
		errors.Is(err, cookbook.ErrBrowserConnect) ||
		errors.Is(err, cookbook.ErrPageCreate) ||
		errors.Is(err, cookbook.ErrPageLoad) ||
		errors.Is(err, cookbook.ErrPDFGeneration) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cookbook.ErrNoRecipes) ||
		errors.Is(err, cookbook.ErrWriteDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) {
		return ExitUsage
	}

	return ExitGeneral
}
