package cookbook

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

// lookPathFor resolves only the named binaries.
func lookPathFor(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestBootstrap_Run(t *testing.T) {
	t.Parallel()

	t.Run("missing cook fails before any side effect", func(t *testing.T) {
		t.Parallel()
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte("script"))
		}))
		defer srv.Close()

		scriptPath := filepath.Join(t.TempDir(), "gen.py")
		b := &Bootstrap{
			LookPath: lookPathFor(),
			Client:   srv.Client(),
			Runner:   &mockRunner{},
		}

		err := b.Run(context.Background(), BootstrapOptions{
			ScriptPath: scriptPath,
			ScriptURL:  srv.URL,
		})
		if !errors.Is(err, ErrCookNotFound) {
			t.Fatalf("error = %v, want ErrCookNotFound", err)
		}
		if requests.Load() != 0 {
			t.Errorf("script was fetched despite missing cook (%d requests)", requests.Load())
		}
		if _, statErr := os.Stat(scriptPath); !os.IsNotExist(statErr) {
			t.Error("script file exists despite failed bootstrap")
		}
	})

	t.Run("fetches script when absent", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("script"))
		}))
		defer srv.Close()

		scriptPath := filepath.Join(t.TempDir(), "gen.py")
		var out bytes.Buffer
		b := &Bootstrap{
			LookPath: lookPathFor("cook"),
			Client:   srv.Client(),
			Runner:   &mockRunner{},
			Output:   &out,
		}

		err := b.Run(context.Background(), BootstrapOptions{
			ScriptPath: scriptPath,
			ScriptURL:  srv.URL,
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if _, statErr := os.Stat(scriptPath); statErr != nil {
			t.Errorf("script not fetched: %v", statErr)
		}
		if !strings.Contains(out.String(), "fetched generator script") {
			t.Errorf("output missing fetch confirmation: %q", out.String())
		}
	})

	t.Run("missing pre-commit is a warning, not a failure", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{}
		var out bytes.Buffer
		b := &Bootstrap{LookPath: lookPathFor("cook"), Runner: mock, Output: &out}

		err := b.Run(context.Background(), BootstrapOptions{InstallHooks: true})
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
		if len(mock.Calls) != 0 {
			t.Errorf("pre-commit was invoked despite being absent: %v", mock.Calls)
		}
		if !strings.Contains(out.String(), "skipping hook installation") {
			t.Errorf("output missing skip notice: %q", out.String())
		}
	})

	t.Run("hook install failure wraps ErrPreCommitInstall", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{Stderr: "hook error", Err: errors.New("exit status 1")}
		b := &Bootstrap{LookPath: lookPathFor("cook", "pre-commit"), Runner: mock}

		err := b.Run(context.Background(), BootstrapOptions{InstallHooks: true})
		if !errors.Is(err, ErrPreCommitInstall) {
			t.Errorf("error = %v, want ErrPreCommitInstall", err)
		}
	})

	t.Run("hooks installed when pre-commit available", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{}
		b := &Bootstrap{LookPath: lookPathFor("cook", "pre-commit"), Runner: mock}

		if err := b.Run(context.Background(), BootstrapOptions{InstallHooks: true}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		call := mock.lastCall(t)
		if call.Name != "pre-commit" || !equalArgs(call.Args, []string{"install"}) {
			t.Errorf("call = %v, want pre-commit install", call)
		}
	})

	t.Run("custom cook binary name resolved", func(t *testing.T) {
		t.Parallel()
		var resolved string
		b := &Bootstrap{
			LookPath: func(name string) (string, error) {
				resolved = name
				return "/opt/" + name, nil
			},
			Runner: &mockRunner{},
		}

		if err := b.Run(context.Background(), BootstrapOptions{Cook: "cookcli"}); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if resolved != "cookcli" {
			t.Errorf("resolved binary = %q, want cookcli", resolved)
		}
	})
}
