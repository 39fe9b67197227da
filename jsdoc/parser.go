package jsdoc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dead-horse/dox/jsdoc/gfm"
)

// Sentinel errors returned by the parser and its entry points.
var (
	ErrReadInput     = errors.New("read input")
	ErrInvalidOption = errors.New("invalid option")
	ErrWriteOutput   = errors.New("write output")
)

// Renderer converts description text to its rendered form (HTML for the
// default renderer).
type Renderer interface {
	Render(text string) string
}

// RendererFunc adapts an ordinary function to a [Renderer].
type RendererFunc func(text string) string

// Render calls f(text).
func (f RendererFunc) Render(text string) string {
	return f(text)
}

// Parser extracts documentation comments from source text.
//
// A Parser holds only configuration and is never mutated after
// [NewParser] returns, so a single instance may be shared between
// goroutines. Create instances with [NewParser].
type Parser struct {
	renderer  Renderer
	loader    Loader
	logger    *slog.Logger
	depth     int
	raw       bool
	multiLine bool
}

// Option configures a [Parser].
type Option func(*Parser)

// NewParser creates a [Parser] with the given options.
//
// By default descriptions are rendered with [gfm.New], files are read with
// [OSLoader], tags are single-line and @detail includes are not followed.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		renderer: gfm.New(),
		loader:   OSLoader{},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithRaw disables Markdown rendering of descriptions.
func WithRaw(raw bool) Option {
	return func(p *Parser) {
		p.raw = raw
	}
}

// WithMultiLine lets a tag's description continue on the following lines,
// up to the next line starting with "@".
func WithMultiLine(multiLine bool) Option {
	return func(p *Parser) {
		p.multiLine = multiLine
	}
}

// WithDepth sets how many levels of @detail includes are parsed
// recursively. Zero (the default) stores the resolved path instead.
func WithDepth(depth int) Option {
	return func(p *Parser) {
		p.depth = depth
	}
}

// WithRenderer replaces the Markdown renderer.
func WithRenderer(r Renderer) Option {
	return func(p *Parser) {
		p.renderer = r
	}
}

// WithLoader replaces the [Loader] used by the extract functions and by
// @detail includes.
func WithLoader(l Loader) Option {
	return func(p *Parser) {
		p.loader = l
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// ExtractDocSync reads the file at path and parses its comments. Relative
// @detail references are resolved against the directory of path.
func (p *Parser) ExtractDocSync(path string) ([]*Comment, error) {
	p.logger.Debug("loading source",
		slog.String("path", path),
		slog.Int("depth", p.depth),
	)

	src, err := p.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return p.ParseComments(src, path)
}

// ExtractDoc is the asynchronous form of [Parser.ExtractDocSync]. It returns
// immediately and calls done exactly once, from another goroutine, with
// either the comments or the load error.
//
// Files pulled in by @detail tags are still loaded synchronously within
// that goroutine.
func (p *Parser) ExtractDoc(path string, done func([]*Comment, error)) {
	go func() {
		done(p.ExtractDocSync(path))
	}()
}

// render passes text through the renderer unless raw mode is on.
func (p *Parser) render(text string) string {
	if p.raw || p.renderer == nil {
		return text
	}

	return p.renderer.Render(text)
}

// nested returns a copy of p for parsing an included file.
func (p *Parser) nested() *Parser {
	child := *p
	child.depth--

	return &child
}
