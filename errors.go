package cookbook

import "errors"

// Sentinel errors for library operations.
var (
	// Bootstrap errors.
	ErrCookNotFound     = errors.New("cook CLI not found on PATH")
	ErrScriptFetch      = errors.New("failed to fetch generator script")
	ErrPreCommitInstall = errors.New("failed to install pre-commit hooks")

	// Generation errors.
	ErrNoRecipes     = errors.New("no recipes found")
	ErrRecipeRender  = errors.New("failed to render recipe")
	ErrReportRender  = errors.New("failed to render report")
	ErrScriptInvoke  = errors.New("generator script failed")
	ErrWriteDocument = errors.New("failed to write document")

	// Typesetting errors.
	ErrLatexCompile = errors.New("latex compilation failed")
	ErrMakeindex    = errors.New("index build failed")

	// HTML edition errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
