package cookbook

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// HTMLGenerator assembles a single-file HTML edition of the book from
// "cook recipe -f markdown" output. It is the TeX-less sibling of
// Generator, useful for previewing and for hosts without XeLaTeX.
type HTMLGenerator struct {
	Book Book
	Cook *Cook

	// Workers bounds concurrent cook invocations. Zero means
	// ResolveWorkers picks a size from GOMAXPROCS.
	Workers int

	// Progress receives human-readable progress lines. Nil means silent.
	Progress io.Writer

	md goldmark.Markdown
}

// NewHTMLGenerator creates an HTMLGenerator with GFM extensions and syntax
// highlighting using CSS classes.
func NewHTMLGenerator(book Book) *HTMLGenerator {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &HTMLGenerator{Book: book.withDefaults(), Cook: NewCook(), md: md}
}

// htmlChapter and htmlRecipe feed the page template. Bodies are rendered
// goldmark output and therefore injected unescaped.
type htmlChapter struct {
	Name    string
	Recipes []htmlRecipe
}

type htmlRecipe struct {
	Name string
	Body template.HTML
}

type htmlPage struct {
	Title    string
	Author   string
	Chapters []htmlChapter
}

const htmlShell = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Page.Title}}</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 0 auto; padding: 2rem; }
h1.book-title { text-align: center; font-size: 2.5rem; }
p.book-author { text-align: center; font-style: italic; }
h2.chapter { border-bottom: 2px solid #cc5500; padding-top: 2rem; }
section.recipe { page-break-after: always; }
</style>
</head>
<body>
<h1 class="book-title">{{.Page.Title}}</h1>
{{if .Page.Author}}<p class="book-author">{{.Page.Author}}</p>{{end}}
{{range .Page.Chapters}}<h2 class="chapter">{{.Name}}</h2>
{{range .Recipes}}<section class="recipe">
<h3>{{.Name}}</h3>
{{.Body}}
</section>
{{end}}{{end}}</body>
</html>
`

var htmlShellTmpl = template.Must(template.New("shell").Parse(htmlShell))

// Generate scans sourceDir for recipes and writes the assembled HTML book
// to outputPath, overwriting it. Recipes that fail to render get a
// placeholder section, mirroring the LaTeX generator.
func (g *HTMLGenerator) Generate(ctx context.Context, sourceDir, outputPath string) error {
	chapters, err := scanRecipes(sourceDir)
	if err != nil {
		return err
	}
	if len(chapters) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRecipes, sourceDir)
	}

	var paths []string
	for _, ch := range chapters {
		paths = append(paths, ch.recipes...)
	}
	rendered := renderAll(ctx, g.Workers, paths, g.Cook.RecipeMarkdown)

	page := htmlPage{Title: g.Book.Title, Author: g.Book.Author, Chapters: make([]htmlChapter, 0, len(chapters))}
	i := 0
	for _, ch := range chapters {
		hc := htmlChapter{Name: ch.name}
		for _, recipePath := range ch.recipes {
			if err := ctx.Err(); err != nil {
				return err
			}
			hc.Recipes = append(hc.Recipes, g.renderRecipe(recipePath, rendered[i]))
			i++
		}
		page.Chapters = append(page.Chapters, hc)
	}

	var buf bytes.Buffer
	data := struct {
		Lang string
		Page htmlPage
	}{Lang: languageTag(g.Book.Language), Page: page}
	if err := htmlShellTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}

// renderRecipe converts one rendered recipe to an HTML section body.
func (g *HTMLGenerator) renderRecipe(recipePath string, rendered renderResult) htmlRecipe {
	name := recipeDisplayName(recipePath)
	if g.Progress != nil {
		fmt.Fprintf(g.Progress, "  Adding recipe: %s\n", name)
	}

	if rendered.err != nil {
		return htmlRecipe{Name: name, Body: "<p><em>Recipe content could not be processed.</em></p>"}
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(rendered.out), &buf); err != nil {
		return htmlRecipe{Name: name, Body: "<p><em>Recipe content could not be processed.</em></p>"}
	}
	return htmlRecipe{Name: name, Body: template.HTML(buf.String())} // #nosec G203 -- goldmark output, not raw user input
}

// languageTag maps polyglossia language names to HTML lang attributes for
// the languages the generator defaults cover.
func languageTag(language string) string {
	switch language {
	case "russian":
		return "ru"
	case "english", "":
		return "en"
	default:
		return language
	}
}
