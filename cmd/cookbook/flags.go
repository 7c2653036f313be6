package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bookFlags holds document metadata flags.
type bookFlags struct {
	title      string
	author     string
	language   string
	indexTitle string
	noIndex    bool
	noTOC      bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	book    bookFlags
	source  string
	output  string
	script  string
	workers int
}

// buildFlags holds flags for the pdf and index commands.
type buildFlags struct {
	common  commonFlags
	timeout string
}

// reportFlags holds flags for the report command.
type reportFlags struct {
	common   commonFlags
	template string
	scale    float64
	db       string
}

// htmlFlags holds flags for the html command.
type htmlFlags struct {
	common  commonFlags
	source  string
	output  string
	pdf     bool
	workers int
}

// setupFlags holds flags for the setup command.
type setupFlags struct {
	common  commonFlags
	script  string
	url     string
	noHooks bool
}

// watchFlags holds flags for the watch command.
type watchFlags struct {
	generate generateFlags
	html     bool
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addBookFlags adds document metadata flags to a FlagSet.
func addBookFlags(fs *flag.FlagSet, f *bookFlags) {
	fs.StringVar(&f.title, "title", "", "cookbook title")
	fs.StringVar(&f.author, "author", "", "author name")
	fs.StringVar(&f.language, "language", "", "polyglossia main language")
	fs.StringVar(&f.indexTitle, "index-title", "", "heading above the recipe index")
	fs.BoolVar(&f.noIndex, "no-index", false, "skip index generation")
	fs.BoolVar(&f.noTOC, "no-toc", false, "skip table of contents")
}

// newFlagSet creates a FlagSet that prints the given usage on error.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	fs := newFlagSet("generate", printGenerateUsage, stderr)
	f := &generateFlags{}

	fs.StringVarP(&f.source, "source", "s", "", "recipe source directory")
	fs.StringVarP(&f.output, "output", "o", "", "output .tex filename")
	fs.StringVar(&f.script, "script", "", "invoke an external generator script instead of the native generator")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent recipe renders (0 = auto)")
	addCommonFlags(fs, &f.common)
	addBookFlags(fs, &f.book)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseBuildFlags parses pdf/index command flags and returns positional args.
func parseBuildFlags(name string, args []string, stderr io.Writer) (*buildFlags, []string, error) {
	usage := printPDFUsage
	switch name {
	case "index":
		usage = printIndexUsage
	case "clean":
		usage = printCleanUsage
	}
	fs := newFlagSet(name, usage, stderr)
	f := &buildFlags{}

	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-pass timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseReportFlags parses report command flags and returns positional args.
func parseReportFlags(args []string, stderr io.Writer) (*reportFlags, []string, error) {
	fs := newFlagSet("report", printReportUsage, stderr)
	f := &reportFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "report template name")
	fs.Float64Var(&f.scale, "scale", 0, "servings multiplier (0 = unscaled)")
	fs.StringVar(&f.db, "db", "", "aisle/cost database path")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseHTMLFlags parses html command flags and returns positional args.
func parseHTMLFlags(args []string, stderr io.Writer) (*htmlFlags, []string, error) {
	fs := newFlagSet("html", printHTMLUsage, stderr)
	f := &htmlFlags{}

	fs.StringVarP(&f.source, "source", "s", "", "recipe source directory")
	fs.StringVarP(&f.output, "output", "o", "", "output .html filename")
	fs.BoolVar(&f.pdf, "pdf", false, "also render the HTML edition to PDF with headless Chrome")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent recipe renders (0 = auto)")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseSetupFlags parses setup command flags.
func parseSetupFlags(args []string, stderr io.Writer) (*setupFlags, error) {
	fs := newFlagSet("setup", printSetupUsage, stderr)
	f := &setupFlags{}

	fs.StringVar(&f.script, "script", "", "generator script destination path")
	fs.StringVar(&f.url, "url", "", "generator script download URL")
	fs.BoolVar(&f.noHooks, "no-hooks", false, "skip pre-commit hook installation")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string, stderr io.Writer) (*doctorFlags, error) {
	fs := newFlagSet("doctor", printDoctorUsage, stderr)
	f := &doctorFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "emit machine-readable JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, stderr io.Writer) (*watchFlags, []string, error) {
	fs := newFlagSet("watch", printWatchUsage, stderr)
	f := &watchFlags{}

	fs.StringVarP(&f.generate.source, "source", "s", "", "recipe source directory")
	fs.StringVarP(&f.generate.output, "output", "o", "", "output .tex filename")
	fs.BoolVar(&f.html, "html", false, "also rebuild the HTML edition")
	addCommonFlags(fs, &f.generate.common)
	addBookFlags(fs, &f.generate.book)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
