package cookbook

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses. dir is the working directory for the command; empty means
// the current directory.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. Execution is blocking:
// Run waits for the subprocess to exit before returning.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), stderr.String(), fmt.Errorf("running %s: %w", name, err)
	}
	return stdout.String(), stderr.String(), nil
}
