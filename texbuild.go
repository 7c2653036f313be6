package cookbook

import (
	"context"
	"fmt"
)

// TexBuilder drives the typesetting toolchain against a base filename
// (".tex" extension stripped). The toolchain resolves cross-references and
// the index incrementally, so a full build needs three compiler passes with
// one index pass in between; this count is a property of LaTeX, not of
// this package, and is therefore not configurable.
type TexBuilder struct {
	Latex     string // compiler binary, default "xelatex"
	Makeindex string // index builder binary, default "makeindex"
	Dir       string // working directory for all invocations
	Runner    CommandRunner
}

// NewTexBuilder creates a TexBuilder running in dir with real tools.
func NewTexBuilder(dir string) *TexBuilder {
	return &TexBuilder{
		Latex:     "xelatex",
		Makeindex: "makeindex",
		Dir:       dir,
		Runner:    &ExecRunner{},
	}
}

// BuildPDF runs the full pass sequence: compile, index, compile, compile.
// The first failing pass aborts the rest; there is no partial-success
// state and no retry.
func (t *TexBuilder) BuildPDF(ctx context.Context, base string) error {
	if err := t.Compile(ctx, base); err != nil {
		return err
	}
	if err := t.BuildIndex(ctx, base); err != nil {
		return err
	}
	if err := t.Compile(ctx, base); err != nil {
		return err
	}
	return t.Compile(ctx, base)
}

// Compile runs a single compiler pass over <base>.tex.
// -interaction=nonstopmode keeps the compiler from blocking on its
// interactive error prompt.
func (t *TexBuilder) Compile(ctx context.Context, base string) error {
	_, _, err := t.Runner.Run(ctx, t.Dir, t.Latex, "-interaction=nonstopmode", base+".tex")
	if err != nil {
		return fmt.Errorf("%w: %s.tex: %v", ErrLatexCompile, base, err)
	}
	return nil
}

// BuildIndex runs the index builder over <base>.idx. Separately invocable
// for incremental re-indexing without a recompile.
func (t *TexBuilder) BuildIndex(ctx context.Context, base string) error {
	_, stderr, err := t.Runner.Run(ctx, t.Dir, t.Makeindex, base+".idx")
	if err != nil {
		return fmt.Errorf("%w: %s.idx: %s: %v", ErrMakeindex, base, stderr, err)
	}
	return nil
}
