package cookbook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestScriptGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("passes paths and metadata verbatim", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{}
		sg := &ScriptGenerator{Python: "python3", Script: "tools/create_cookbook.py", Runner: mock}

		book := Book{Title: "Family Recipes & More", Author: "Jane Doe", IncludeIndex: true, IncludeTOC: true}
		if err := sg.Generate(context.Background(), "recipes", "cookbook.tex", book); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		call := mock.lastCall(t)
		if call.Name != "python3" {
			t.Errorf("interpreter = %q, want python3", call.Name)
		}
		// Title and author stay single argv entries, spaces and
		// specials included, with no shell quoting.
		want := []string{
			"tools/create_cookbook.py", "recipes", "cookbook.tex",
			"--title", "Family Recipes & More",
			"--author", "Jane Doe",
		}
		if !equalArgs(call.Args, want) {
			t.Errorf("args = %v, want %v", call.Args, want)
		}
	})

	t.Run("disabled index and toc add flags", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{}
		sg := &ScriptGenerator{Python: "python3", Script: "gen.py", Runner: mock}

		book := Book{Title: "T", IncludeIndex: false, IncludeTOC: false}
		if err := sg.Generate(context.Background(), "src", "out.tex", book); err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		want := []string{"gen.py", "src", "out.tex", "--title", "T", "--no-index", "--no-toc"}
		if got := mock.lastCall(t).Args; !equalArgs(got, want) {
			t.Errorf("args = %v, want %v", got, want)
		}
	})

	t.Run("script failure wraps ErrScriptInvoke", func(t *testing.T) {
		t.Parallel()
		mock := &mockRunner{Stderr: "Traceback", Err: errors.New("exit status 1")}
		sg := &ScriptGenerator{Python: "python3", Script: "gen.py", Runner: mock}

		err := sg.Generate(context.Background(), "src", "out.tex", DefaultBook())
		if !errors.Is(err, ErrScriptInvoke) {
			t.Errorf("error = %v, want ErrScriptInvoke", err)
		}
	})
}

func TestFetchScript(t *testing.T) {
	t.Parallel()

	t.Run("downloads when missing", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("#!/usr/bin/env python3\n"))
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "tools", "create_cookbook.py")
		fetched, err := FetchScript(context.Background(), srv.Client(), srv.URL, path)
		if err != nil {
			t.Fatalf("FetchScript() error = %v", err)
		}
		if !fetched {
			t.Error("fetched = false, want true")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("script not written: %v", err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Errorf("script mode = %o, want 0755", info.Mode().Perm())
		}
	})

	t.Run("existing script is not re-fetched", func(t *testing.T) {
		t.Parallel()
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			_, _ = w.Write([]byte("new content"))
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "gen.py")
		if err := os.WriteFile(path, []byte("original"), 0o755); err != nil {
			t.Fatal(err)
		}

		fetched, err := FetchScript(context.Background(), srv.Client(), srv.URL, path)
		if err != nil {
			t.Fatalf("FetchScript() error = %v", err)
		}
		if fetched {
			t.Error("fetched = true, want false for existing script")
		}
		if requests.Load() != 0 {
			t.Errorf("server received %d requests, want 0", requests.Load())
		}

		data, _ := os.ReadFile(path)
		if string(data) != "original" {
			t.Errorf("existing script was overwritten: %q", data)
		}
	})

	t.Run("non-200 response returns ErrScriptFetch", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		path := filepath.Join(t.TempDir(), "gen.py")
		_, err := FetchScript(context.Background(), srv.Client(), srv.URL, path)
		if !errors.Is(err, ErrScriptFetch) {
			t.Errorf("error = %v, want ErrScriptFetch", err)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Error("script file exists after failed fetch")
		}
	})

	t.Run("unreachable server returns ErrScriptFetch", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "gen.py")
		_, err := FetchScript(context.Background(), http.DefaultClient, "http://127.0.0.1:1/gen.py", path)
		if !errors.Is(err, ErrScriptFetch) {
			t.Errorf("error = %v, want ErrScriptFetch", err)
		}
	})
}
