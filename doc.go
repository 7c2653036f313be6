// Package cookbook builds a typeset PDF cookbook from a tree of Cooklang
// recipes by orchestrating external tools.
//
// # Pipeline
//
// The build is a fixed, linear sequence of stages:
//
//  1. Bootstrap: verify the cook CLI is installed, fetch the upstream
//     generator script when it is missing, install repository hooks.
//  2. Generate: walk the recipe tree, render each recipe to LaTeX via
//     "cook recipe -f latex", and assemble a XeLaTeX book document.
//  3. Typeset: run xelatex, makeindex, then xelatex twice more so that
//     cross-references and the recipe index converge.
//  4. Clean: remove intermediate build artifacts.
//
// Stages are independent and sequential; each waits for its subprocess to
// exit and surfaces the first failure unchanged. There is no retry and no
// partial-success state.
//
// # Quick start
//
//	gen := cookbook.NewGenerator(cookbook.Book{Title: "Family Recipes"})
//	if err := gen.Generate(ctx, "recipes", "cookbook.tex"); err != nil {
//	    log.Fatal(err)
//	}
//
//	tex := cookbook.NewTexBuilder(".")
//	if err := tex.BuildPDF(ctx, "cookbook"); err != nil {
//	    log.Fatal(err)
//	}
//
// An HTML edition is available through NewHTMLGenerator for hosts without a
// TeX installation; see HTMLRenderer for the headless-Chrome fallback that
// turns it into a PDF.
package cookbook
