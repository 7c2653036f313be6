package cookbook

import (
	"bufio"
	"strings"
	"text/template"
)

// Marker comments emitted by "cook recipe -f latex". Everything between the
// content markers is the recipe body; the title block inside it is dropped
// because the generator typesets its own heading.
const (
	markerContentBegin = "% BEGIN_RECIPE_CONTENT"
	markerContentEnd   = "% END_RECIPE_CONTENT"
	markerTitleBegin   = "% BEGIN_TITLE"
	markerTitleEnd     = "% END_TITLE"
)

// latexEscaper replaces LaTeX special characters in a single pass.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`^`, `\^{}`,
	`_`, `\_`,
	`~`, `\~{}`,
	`%`, `\%`,
	`<`, `\textless{}`,
	`>`, `\textgreater{}`,
	`|`, `\textbar{}`,
)

// EscapeLaTeX escapes text for safe interpolation into a LaTeX document.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

// metadataKeys maps "% KEY: value" comment prefixes in rendered recipe
// LaTeX to metadata map keys.
var metadataKeys = map[string]string{
	"% DESCRIPTION: ": "description",
	"% TAGS: ":        "tags",
	"% SERVINGS: ":    "servings",
	"% PREP_TIME: ":   "prep_time",
	"% COOK_TIME: ":   "cook_time",
	"% AUTHOR: ":      "author",
	"% SOURCE: ":      "source",
}

// extractMetadata collects metadata from comment lines in rendered LaTeX.
// The first occurrence of each key wins.
func extractMetadata(latexContent string) map[string]string {
	metadata := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(latexContent))
	for scanner.Scan() {
		line := scanner.Text()
		for prefix, key := range metadataKeys {
			if _, ok := metadata[key]; ok {
				continue
			}
			if v, found := strings.CutPrefix(line, prefix); found && v != "" {
				metadata[key] = v
			}
		}
	}
	return metadata
}

// extractRecipeBody cuts the recipe body out of rendered LaTeX using the
// content markers and strips the embedded title block. Returns "" when the
// markers are absent, which callers treat as an unprocessable recipe.
func extractRecipeBody(latexContent string) string {
	begin := strings.Index(latexContent, markerContentBegin)
	end := strings.Index(latexContent, markerContentEnd)
	if begin < 0 || end < 0 || end < begin {
		return ""
	}

	// Body starts after the newline following the begin marker and stops at
	// the line break before the end marker.
	start := strings.Index(latexContent[begin:], "\n")
	if start < 0 {
		return ""
	}
	start += begin + 1
	stop := strings.LastIndex(latexContent[:end], "\n")
	if stop < start {
		stop = start
	}
	body := strings.TrimSpace(latexContent[start:stop])

	return stripTitleBlock(body)
}

// stripTitleBlock removes the BEGIN_TITLE..END_TITLE block, including the
// trailing newline after the end marker.
func stripTitleBlock(body string) string {
	begin := strings.Index(body, markerTitleBegin)
	end := strings.Index(body, markerTitleEnd)
	if begin < 0 || end < 0 || end < begin {
		return body
	}

	stop := strings.Index(body[end:], "\n")
	if stop < 0 {
		stop = len(body) - end
	}
	return body[:begin] + strings.TrimLeft(body[end+stop:], " \t\n")
}

// preambleData feeds the document preamble template. All string fields must
// already be LaTeX-escaped.
type preambleData struct {
	Title        string
	Author       string
	Language     string
	IndexTitle   string
	IncludeIndex bool
	IncludeTOC   bool
}

// documentPreamble is the XeLaTeX book preamble, ported from the upstream
// cookbook generator. fontspec/polyglossia require xelatex or lualatex.
const documentPreamble = `\documentclass[11pt,a4paper,twoside]{book}
\usepackage{fontspec}
\usepackage{polyglossia}
\setdefaultlanguage{[[.Language]]}
\setotherlanguage{english}
\setmainfont{DejaVu Serif}
\usepackage{textcomp}
\usepackage{microtype}
\usepackage{enumitem}
\usepackage{multicol}
\usepackage[space]{grffile}
\usepackage{graphicx}
\usepackage{xcolor}
\usepackage{titlesec}
\usepackage{geometry}
\usepackage{hyperref}
[[- if .IncludeIndex]]
\usepackage{makeidx}
\usepackage{imakeidx}
[[- end]]
\usepackage{fancyhdr}
\usepackage{tocloft}

% Page geometry
\geometry{left=2.5cm,right=2.5cm,top=2.5cm,bottom=3cm,bindingoffset=0.5cm}

% Color definitions
\definecolor{ingredientcolor}{RGB}{204, 85, 0}
\definecolor{cookwarecolor}{RGB}{34, 139, 34}
\definecolor{timercolor}{RGB}{220, 20, 60}

% Custom commands
\newcommand{\ingredient}[1]{\textcolor{ingredientcolor}{\textbf{#1}}}
\newcommand{\cookware}[1]{\textcolor{cookwarecolor}{\textbf{#1}}}
\newcommand{\timer}[1]{\textcolor{timercolor}{\textbf{#1}}}
[[- if .IncludeIndex]]

% Index setup
\makeindex[columns=2, title=[[.IndexTitle]], intoc]
[[- end]]

% Page style
\pagestyle{fancy}
\fancyhf{}
\fancyhead[LE,RO]{\thepage}
\fancyhead[RE]{\textit{[[.Title]]}}
\fancyhead[LO]{\leftmark}
\renewcommand{\headrulewidth}{0.4pt}

% Section formatting - smaller for TOC entries
\titleformat{\section}[block]
  {\normalfont\large\bfseries}
  {}
  {0pt}
  {}

% Suppress section numbers
\setcounter{secnumdepth}{0}

\begin{document}

% Title page
\begin{titlepage}
\centering
\vspace*{5cm}
{\Huge\bfseries [[.Title]]}\par
[[- if .Author]]
\vspace{2cm}
{\Large [[.Author]]}\par
[[- end]]
\vfill
\textit{Created with CookCLI}\par
\vspace{1cm}
{\large \today}
\end{titlepage}
[[- if .IncludeTOC]]

% Table of contents
\tableofcontents
\clearpage
[[- end]]
`

// documentFooter closes the book, printing the index first when enabled.
const documentFooter = `
[[- if .IncludeIndex]]
% Index
\printindex
[[- end]]

\end{document}
`

// [[ ]] delimiters keep the templates free of collisions with LaTeX braces.
var (
	preambleTmpl = template.Must(template.New("preamble").Delims("[[", "]]").Parse(documentPreamble))
	footerTmpl   = template.Must(template.New("footer").Delims("[[", "]]").Parse(documentFooter))
)

// renderPreamble renders the document preamble for a book.
func renderPreamble(b Book) (string, error) {
	var sb strings.Builder
	err := preambleTmpl.Execute(&sb, preambleDataFor(b))
	return sb.String(), err
}

// renderFooter renders the document footer for a book.
func renderFooter(b Book) (string, error) {
	var sb strings.Builder
	err := footerTmpl.Execute(&sb, preambleDataFor(b))
	return sb.String(), err
}

func preambleDataFor(b Book) preambleData {
	return preambleData{
		Title:        EscapeLaTeX(b.Title),
		Author:       EscapeLaTeX(b.Author),
		Language:     b.Language,
		IndexTitle:   b.IndexTitle,
		IncludeIndex: b.IncludeIndex,
		IncludeTOC:   b.IncludeTOC,
	}
}
