package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/senz/cookbook/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Tools    []toolInfo `json:"tools"`
	Script   scriptInfo `json:"script"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds the detection result for one external tool.
type toolInfo struct {
	Name     string `json:"name"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Required bool   `json:"required"`
}

// scriptInfo reports on the generator script.
type scriptInfo struct {
	Path    string `json:"path"`
	Present bool   `json:"present"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorCheck describes one tool check. cook and the typesetting toolchain
// are required; the Python interpreter and pre-commit only matter for
// optional paths.
type doctorCheck struct {
	name     string
	required bool
	hint     string
}

var doctorChecks = []doctorCheck{
	{name: "cook", required: true, hint: "install from https://cooklang.org"},
	{name: "xelatex", required: true, hint: "install a TeX distribution (TeX Live, MacTeX)"},
	{name: "makeindex", required: true, hint: "ships with TeX distributions"},
	{name: "python3", required: false, hint: "needed only for the external generator script"},
	{name: "pre-commit", required: false, hint: "needed only for repository hooks"},
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), non-zero = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	flags, err := parseDoctorFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	cfg, err := loadConfig(flags.config, env)
	if err != nil {
		return reportError(env, err)
	}

	result := runDoctor(env, cfg.Tools.Script)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitTool
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks. scriptPath is the resolved
// tools.script config value; empty means the default location.
func runDoctor(env *Environment, scriptPath string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env:    envInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	for _, chk := range doctorChecks {
		info := toolInfo{Name: chk.name, Required: chk.required}
		if path, err := env.LookPath(chk.name); err == nil {
			info.Found = true
			info.Path = path
		} else if chk.required {
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s not found on PATH (%s)", chk.name, chk.hint))
		} else {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s not found on PATH (%s)", chk.name, chk.hint))
		}
		result.Tools = append(result.Tools, info)
	}

	checkScript(result, scriptPath)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}
	return result
}

// checkScript reports on the generator script without fetching it. The
// path comes from the same config resolution setup uses, so the two
// commands agree on where the script lives.
func checkScript(result *doctorResult, path string) {
	if path == "" {
		path = defaultScriptPath
	}
	result.Script = scriptInfo{Path: path, Present: fileutil.FileExists(path)}
	if !result.Script.Present {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("generator script missing at %s (run 'cookbook setup' to fetch it)", path))
	}
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "cookbook-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cookbook doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Tools")
	for _, tool := range r.Tools {
		switch {
		case tool.Found:
			fmt.Fprintf(w, "  [OK] %s: %s\n", tool.Name, tool.Path)
		case tool.Required:
			fmt.Fprintf(w, "  [ERROR] %s: not found\n", tool.Name)
		default:
			fmt.Fprintf(w, "  [WARN] %s: not found\n", tool.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Generator script")
	if r.Script.Present {
		fmt.Fprintf(w, "  [OK] Present at %s\n", r.Script.Path)
	} else {
		fmt.Fprintf(w, "  [WARN] Missing at %s\n", r.Script.Path)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to build")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
