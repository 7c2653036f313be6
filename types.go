package cookbook

// Default book metadata, matching the upstream generator.
const (
	DefaultTitle      = "My Cookbook"
	DefaultLanguage   = "russian"
	DefaultIndexTitle = "Указатель рецептов"
)

// DefaultChapter receives recipes that live directly in the source root
// rather than in a chapter subdirectory.
const DefaultChapter = "Main Dishes"

// Book holds document-level metadata for a generated cookbook.
type Book struct {
	Title        string // title page and running header
	Author       string // optional, shown on the title page
	Language     string // polyglossia main language
	IndexTitle   string // heading above the recipe index
	IncludeIndex bool
	IncludeTOC   bool
}

// DefaultBook returns book metadata with upstream defaults: Russian
// polyglossia, index and table of contents enabled.
func DefaultBook() Book {
	return Book{
		Title:        DefaultTitle,
		Language:     DefaultLanguage,
		IndexTitle:   DefaultIndexTitle,
		IncludeIndex: true,
		IncludeTOC:   true,
	}
}

// withDefaults fills zero-valued fields so a partially populated Book
// behaves sensibly.
func (b Book) withDefaults() Book {
	if b.Title == "" {
		b.Title = DefaultTitle
	}
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	if b.IndexTitle == "" {
		b.IndexTitle = DefaultIndexTitle
	}
	return b
}
