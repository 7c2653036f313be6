package cookbook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DefaultScriptURL is where the upstream Python generator is fetched from
// when it is missing locally.
const DefaultScriptURL = "https://raw.githubusercontent.com/cooklang/cookcli/main/scripts/create_cookbook.py"

// scriptPermissions makes the fetched generator directly executable.
const scriptPermissions = 0o755

// ScriptGenerator produces the .tex book by invoking the external Python
// generator instead of the native one. Arguments are passed through
// verbatim with no validation; a script failure propagates unchanged.
type ScriptGenerator struct {
	Python string // interpreter, default "python3"
	Script string // generator script path
	Runner CommandRunner
}

// NewScriptGenerator creates a ScriptGenerator for the given script path
// with a real command runner.
func NewScriptGenerator(scriptPath string) *ScriptGenerator {
	return &ScriptGenerator{Python: "python3", Script: scriptPath, Runner: &ExecRunner{}}
}

// Generate invokes
//
//	<python> <script> <sourceDir> <outputPath> --title <T> [--author <A>]
//
// Title and author travel as single argv entries, embedded spaces included.
func (s *ScriptGenerator) Generate(ctx context.Context, sourceDir, outputPath string, book Book) error {
	book = book.withDefaults()

	args := []string{s.Script, sourceDir, outputPath, "--title", book.Title}
	if book.Author != "" {
		args = append(args, "--author", book.Author)
	}
	if !book.IncludeIndex {
		args = append(args, "--no-index")
	}
	if !book.IncludeTOC {
		args = append(args, "--no-toc")
	}

	_, stderr, err := s.Runner.Run(ctx, "", s.Python, args...)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrScriptInvoke, stderr, err)
	}
	return nil
}

// FetchScript downloads the generator script to path unless it already
// exists. Returns whether a download happened. Fetch failures propagate
// with no retry; a partially written file is removed.
func FetchScript(ctx context.Context, client *http.Client, url, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrScriptFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrScriptFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: %s returned %s", ErrScriptFetch, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrScriptFetch, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return false, fmt.Errorf("%w: %v", ErrScriptFetch, err)
		}
	}
	if err := os.WriteFile(path, body, scriptPermissions); err != nil {
		_ = os.Remove(path)
		return false, fmt.Errorf("%w: %v", ErrScriptFetch, err)
	}
	return true, nil
}
