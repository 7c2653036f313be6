package cookbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/exec"
)

// BootstrapOptions configures an environment bootstrap run.
type BootstrapOptions struct {
	Cook         string // cook binary name, default "cook"
	ScriptPath   string // where the generator script must end up
	ScriptURL    string // download source, default DefaultScriptURL
	InstallHooks bool   // run "pre-commit install" when pre-commit exists
}

// Bootstrap prepares the build environment: the cook CLI must be on PATH
// (hard precondition), the generator script is fetched when absent, and
// repository hooks are installed when pre-commit is available.
type Bootstrap struct {
	// LookPath resolves a binary on PATH; defaults to exec.LookPath.
	// Injectable for tests.
	LookPath func(name string) (string, error)
	Client   *http.Client
	Runner   CommandRunner

	// Output receives progress lines. Nil means silent.
	Output io.Writer
}

// NewBootstrap creates a Bootstrap with real process and network backends.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{
		LookPath: exec.LookPath,
		Client:   http.DefaultClient,
		Runner:   &ExecRunner{},
	}
}

// Run performs the bootstrap sequence. A missing cook CLI fails before any
// side effect; fetch failures propagate without retry.
func (b *Bootstrap) Run(ctx context.Context, opts BootstrapOptions) error {
	cook := opts.Cook
	if cook == "" {
		cook = "cook"
	}

	path, err := b.LookPath(cook)
	if err != nil {
		return fmt.Errorf("%w: install it from https://cooklang.org and retry", ErrCookNotFound)
	}
	b.printf("cook CLI found at %s\n", path)

	if opts.ScriptPath != "" {
		url := opts.ScriptURL
		if url == "" {
			url = DefaultScriptURL
		}
		fetched, err := FetchScript(ctx, b.Client, url, opts.ScriptPath)
		if err != nil {
			return err
		}
		if fetched {
			b.printf("fetched generator script to %s\n", opts.ScriptPath)
		} else {
			b.printf("generator script already present at %s\n", opts.ScriptPath)
		}
	}

	if opts.InstallHooks {
		if err := b.installHooks(ctx); err != nil {
			return err
		}
	}
	return nil
}

// installHooks runs "pre-commit install". A missing pre-commit binary is a
// warning, not a failure; an install failure is.
func (b *Bootstrap) installHooks(ctx context.Context) error {
	if _, err := b.LookPath("pre-commit"); err != nil {
		b.printf("pre-commit not found, skipping hook installation\n")
		return nil
	}

	_, stderr, err := b.Runner.Run(ctx, "", "pre-commit", "install")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPreCommitInstall, stderr, err)
	}
	b.printf("pre-commit hooks installed\n")
	return nil
}

func (b *Bootstrap) printf(format string, args ...any) {
	if b.Output != nil {
		fmt.Fprintf(b.Output, format, args...)
	}
}
