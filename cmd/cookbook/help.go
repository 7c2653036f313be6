package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Build the LaTeX cookbook from a recipe tree")
	fmt.Fprintln(w, "  pdf        Typeset the cookbook to PDF (xelatex + makeindex)")
	fmt.Fprintln(w, "  index      Rebuild only the recipe index")
	fmt.Fprintln(w, "  clean      Remove intermediate build artifacts")
	fmt.Fprintln(w, "  html       Build the HTML edition (optionally render to PDF)")
	fmt.Fprintln(w, "  report     Render a recipe report via cook")
	fmt.Fprintln(w, "  watch      Rebuild on recipe changes")
	fmt.Fprintln(w, "  setup      Verify tools and fetch the generator script")
	fmt.Fprintln(w, "  doctor     Diagnose the build environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cookbook help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook generate [source-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the LaTeX cookbook from a tree of .cook recipes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --source <dir>      Recipe source directory (default: recipes)")
	fmt.Fprintln(w, "  -o, --output <file>     Output .tex filename (default: cookbook.tex)")
	fmt.Fprintln(w, "      --title <s>         Cookbook title")
	fmt.Fprintln(w, "      --author <s>        Author name")
	fmt.Fprintln(w, "      --language <s>      Polyglossia main language (default: russian)")
	fmt.Fprintln(w, "      --index-title <s>   Heading above the recipe index")
	fmt.Fprintln(w, "      --no-index          Skip index generation")
	fmt.Fprintln(w, "      --no-toc            Skip table of contents")
	fmt.Fprintln(w, "      --script <path>     Invoke an external generator script instead")
	fmt.Fprintln(w, "  -w, --workers <n>       Concurrent recipe renders (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printPDFUsage prints usage for the pdf command.
func printPDFUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook pdf [base] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Typeset <base>.tex to <base>.pdf. Runs the compiler three times with")
	fmt.Fprintln(w, "one index pass in between so cross-references converge.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --timeout <d>       Per-pass timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show detailed progress")
}

// printIndexUsage prints usage for the index command.
func printIndexUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook index [base] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rebuild only the recipe index from <base>.idx.")
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook clean [base] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remove intermediate build artifacts (.aux .idx .ilg .ind .log .out .toc")
	fmt.Fprintln(w, "and __pycache__). Always succeeds; absent files are not errors.")
}

// printReportUsage prints usage for the report command.
func printReportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook report <recipe-file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a recipe report to stdout via the cook CLI.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -t, --template <s>      Report template name")
	fmt.Fprintln(w, "      --scale <f>         Servings multiplier (0 = unscaled)")
	fmt.Fprintln(w, "      --db <path>         Aisle/cost database path")
}

// printHTMLUsage prints usage for the html command.
func printHTMLUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook html [source-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build a single-file HTML edition of the cookbook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --source <dir>      Recipe source directory (default: recipes)")
	fmt.Fprintln(w, "  -o, --output <file>     Output .html filename (default: cookbook.html)")
	fmt.Fprintln(w, "      --pdf               Also render to PDF with headless Chrome")
	fmt.Fprintln(w, "  -w, --workers <n>       Concurrent recipe renders (0 = auto)")
}

// printSetupUsage prints usage for the setup command.
func printSetupUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook setup [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verify the cook CLI is installed, fetch the generator script when it")
	fmt.Fprintln(w, "is missing, and install pre-commit hooks when pre-commit is available.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --script <path>     Generator script destination")
	fmt.Fprintln(w, "      --url <url>         Generator script download URL")
	fmt.Fprintln(w, "      --no-hooks          Skip pre-commit hook installation")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnose the build environment: cook, xelatex, makeindex, python3,")
	fmt.Fprintln(w, "pre-commit, generator script, temp directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --json              Emit machine-readable JSON")
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookbook watch [source-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch the recipe tree and regenerate the cookbook on change.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html              Also rebuild the HTML edition")
}

// runHelp shows help for a specific command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "pdf":
		printPDFUsage(env.Stdout)
	case "index":
		printIndexUsage(env.Stdout)
	case "clean":
		printCleanUsage(env.Stdout)
	case "report":
		printReportUsage(env.Stdout)
	case "html":
		printHTMLUsage(env.Stdout)
	case "setup":
		printSetupUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cookbook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cookbook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
