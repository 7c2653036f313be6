package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(runMain(ctx, os.Args, DefaultEnv()))
}

// runMain dispatches to the command handlers and returns an exit code.
// Factored out of main for testability.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "generate":
		return runGenerateCmd(ctx, rest, env)
	case "pdf":
		return runPDFCmd(ctx, rest, env)
	case "index":
		return runIndexCmd(ctx, rest, env)
	case "clean":
		return runCleanCmd(rest, env)
	case "setup":
		return runSetupCmd(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "report":
		return runReportCmd(ctx, rest, env)
	case "html":
		return runHTMLCmd(ctx, rest, env)
	case "watch":
		return runWatchCmd(ctx, rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "cookbook %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// hasVerboseFlag scans raw args before any FlagSet runs so maxprocs
// logging can be decided up front.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
