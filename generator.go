package cookbook

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// FilePermissions is the file mode for generated documents.
const FilePermissions = 0o644

// imageExtensions are tried, in order, when looking for a photo next to a
// recipe file.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".PNG", ".JPG", ".JPEG"}

// Generator assembles a XeLaTeX cookbook from a tree of .cook recipes.
// Chapter structure follows the directory layout: each top-level directory
// under the source root becomes a chapter; loose files fall into
// DefaultChapter.
type Generator struct {
	Book Book
	Cook *Cook

	// Workers bounds concurrent cook invocations. Zero means
	// ResolveWorkers picks a size from GOMAXPROCS.
	Workers int

	// Progress receives human-readable progress lines. Nil means silent.
	Progress io.Writer
}

// NewGenerator creates a Generator for the given book metadata with a real
// cook client.
func NewGenerator(book Book) *Generator {
	return &Generator{Book: book.withDefaults(), Cook: NewCook()}
}

// chapter groups the recipes of one directory.
type chapter struct {
	name    string
	recipes []string // .cook file paths, sorted
}

// Generate scans sourceDir for recipes and writes the assembled LaTeX book
// to outputPath. The output file is overwritten on each run.
func (g *Generator) Generate(ctx context.Context, sourceDir, outputPath string) error {
	g.progressf("Scanning recipes in %s...\n", sourceDir)

	chapters, err := scanRecipes(sourceDir)
	if err != nil {
		return err
	}
	if len(chapters) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRecipes, sourceDir)
	}

	total := 0
	for _, ch := range chapters {
		total += len(ch.recipes)
	}
	g.progressf("Found %d recipes in %d chapters\n", total, len(chapters))

	doc, err := g.assemble(ctx, chapters)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(doc), FilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	g.progressf("Cookbook created: %s\n", outputPath)
	return nil
}

// assemble renders every chapter and recipe into a complete document.
// Recipes render concurrently through the worker pool; assembly order
// stays deterministic because results come back in input order.
func (g *Generator) assemble(ctx context.Context, chapters []chapter) (string, error) {
	var sb strings.Builder

	preamble, err := renderPreamble(g.Book)
	if err != nil {
		return "", err
	}
	sb.WriteString(preamble)

	var paths []string
	for _, ch := range chapters {
		paths = append(paths, ch.recipes...)
	}
	rendered := renderAll(ctx, g.Workers, paths, g.Cook.RecipeLaTeX)

	i := 0
	for _, ch := range chapters {
		g.progressf("Processing chapter: %s\n", ch.name)
		fmt.Fprintf(&sb, "\n\\chapter{%s}\n\n", EscapeLaTeX(ch.name))

		for _, recipePath := range ch.recipes {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			g.writeRecipe(&sb, recipePath, rendered[i])
			i++
		}
	}

	footer, err := renderFooter(g.Book)
	if err != nil {
		return "", err
	}
	sb.WriteString(footer)

	return sb.String(), nil
}

// writeRecipe renders one recipe section. A recipe that cannot be rendered
// gets a placeholder paragraph instead of failing the whole book, matching
// the upstream generator.
func (g *Generator) writeRecipe(sb *strings.Builder, recipePath string, rendered renderResult) {
	name := recipeDisplayName(recipePath)
	g.progressf("  Adding recipe: %s\n", name)

	var body string
	metadata := map[string]string{}

	if rendered.err == nil {
		metadata = extractMetadata(rendered.out)
		body = extractRecipeBody(rendered.out)
	}

	if g.Book.IncludeIndex {
		fmt.Fprintf(sb, "\\index{%s}\n", EscapeLaTeX(name))
		if tags, ok := metadata["tags"]; ok {
			for _, tag := range strings.Split(tags, ", ") {
				fmt.Fprintf(sb, "\\index{%s!%s}\n", EscapeLaTeX(tag), EscapeLaTeX(name))
			}
		}
		if author, ok := metadata["author"]; ok {
			fmt.Fprintf(sb, "\\index{Authors!%s!%s}\n", EscapeLaTeX(author), EscapeLaTeX(name))
		}
	}

	// Carry metadata along as comments for anyone reading the .tex file.
	if len(metadata) > 0 {
		fmt.Fprintf(sb, "%% Recipe: %s\n", name)
		for _, key := range sortedKeys(metadata) {
			fmt.Fprintf(sb, "%% %s: %s\n", key, metadata[key])
		}
		sb.WriteString("\n")
	}

	// Phantom section: the recipe appears in the TOC without a visible
	// \section heading, the big centered title below stands in for it.
	sb.WriteString("\\phantomsection\n")
	fmt.Fprintf(sb, "\\addcontentsline{toc}{section}{%s}\n", EscapeLaTeX(name))
	sb.WriteString("\\begin{center}\n")
	fmt.Fprintf(sb, "{\\Huge\\bfseries %s}\n", EscapeLaTeX(name))
	sb.WriteString("\\end{center}\n\\vspace{1cm}\n\n")

	if imagePath := findRecipeImage(recipePath); imagePath != "" {
		g.progressf("    Including image: %s\n", filepath.Base(imagePath))
		sb.WriteString("\\begin{center}\n")
		fmt.Fprintf(sb, "\\includegraphics[width=0.8\\textwidth]{%s}\n", imagePath)
		sb.WriteString("\\end{center}\n\\vspace{0.5cm}\n\n")
	}

	if body != "" {
		sb.WriteString(body)
		sb.WriteString("\n\n\\clearpage\n\n")
	} else {
		g.progressf("    Warning: could not process %s\n", recipePath)
		sb.WriteString("\\textit{Recipe content could not be processed.}\n\n\\clearpage\n\n")
	}
}

func (g *Generator) progressf(format string, args ...any) {
	if g.Progress != nil {
		fmt.Fprintf(g.Progress, format, args...)
	}
}

// scanRecipes walks sourceDir collecting .cook files grouped by chapter,
// both sorted for deterministic output.
func scanRecipes(sourceDir string) ([]chapter, error) {
	byName := make(map[string][]string)

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".cook") {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		name := DefaultChapter
		if dir, _ := filepath.Split(rel); dir != "" {
			parts := strings.Split(filepath.ToSlash(rel), "/")
			name = formatChapterName(parts[0])
		}
		byName[name] = append(byName[name], path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning recipes: %w", err)
	}

	chapters := make([]chapter, 0, len(byName))
	for name, recipes := range byName {
		sort.Strings(recipes)
		chapters = append(chapters, chapter{name: name, recipes: recipes})
	}
	sort.Slice(chapters, func(i, j int) bool { return chapters[i].name < chapters[j].name })
	return chapters, nil
}

// formatChapterName turns a directory name into a chapter title:
// underscores and hyphens become spaces, words are capitalized.
func formatChapterName(dir string) string {
	dir = strings.NewReplacer("_", " ", "-", " ").Replace(dir)
	words := strings.Fields(dir)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// recipeDisplayName derives the human-readable recipe name from its path.
func recipeDisplayName(recipePath string) string {
	stem := strings.TrimSuffix(filepath.Base(recipePath), filepath.Ext(recipePath))
	return strings.NewReplacer("_", " ", "-", " ").Replace(stem)
}

// findRecipeImage returns the absolute path of a sibling image sharing the
// recipe's base name, or "" when none exists.
func findRecipeImage(recipePath string) string {
	dir := filepath.Dir(recipePath)
	stem := strings.TrimSuffix(filepath.Base(recipePath), filepath.Ext(recipePath))

	for _, ext := range imageExtensions {
		candidate := filepath.Join(dir, stem+ext)
		if _, err := os.Stat(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate
			}
			return abs
		}
	}
	return ""
}

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
