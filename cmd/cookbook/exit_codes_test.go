package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cookbook "github.com/senz/cookbook"
	"github.com/senz/cookbook/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"cook missing", cookbook.ErrCookNotFound, ExitTool},
		{"latex failure", cookbook.ErrLatexCompile, ExitTool},
		{"makeindex failure", cookbook.ErrMakeindex, ExitTool},
		{"recipe render failure", cookbook.ErrRecipeRender, ExitTool},
		{"report render failure", cookbook.ErrReportRender, ExitTool},
		{"script failure", cookbook.ErrScriptInvoke, ExitTool},
		{"hook install failure", cookbook.ErrPreCommitInstall, ExitTool},
		{"browser failure", cookbook.ErrBrowserConnect, ExitTool},
		{"no recipes", cookbook.ErrNoRecipes, ExitIO},
		{"write failure", cookbook.ErrWriteDocument, ExitIO},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse failure", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"unknown error", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}

	t.Run("wrapped errors are unwrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("context: %w", cookbook.ErrLatexCompile)
		if got := exitCodeFor(err); got != ExitTool {
			t.Errorf("exitCodeFor(wrapped) = %d, want %d", got, ExitTool)
		}
	})
}
