// Package document loads files and renders them into styled terminal lines.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/curtains/internal/ui/render"
)

// Kind selects how a document is rendered.
type Kind int

const (
	KindPlain Kind = iota
	KindMarkdown
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindCode:
		return "code"
	default:
		return "text"
	}
}

// ErrDirectory is returned when asked to open a directory.
var ErrDirectory = errors.New("is a directory")

// Options controls rendering.
type Options struct {
	TabWidth int
	Wrap     bool
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{TabWidth: 4, Wrap: true}
}

// Document is a file loaded into memory.
type Document struct {
	Path   string // absolute path
	Name   string
	Kind   Kind
	Lexer  string // chroma lexer name for KindCode
	Source []byte
}

// Load reads the file at path.
func Load(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrDirectory)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return FromBytes(abs, data), nil
}

// FromBytes builds a document from in-memory content. The kind is inferred
// from the file name.
func FromBytes(path string, data []byte) *Document {
	d := &Document{
		Path:   path,
		Name:   filepath.Base(path),
		Source: data,
	}
	d.Kind, d.Lexer = detect(d.Name)
	return d
}

func detect(name string) (Kind, string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdown", ".mkd":
		return KindMarkdown, ""
	case ".txt", ".text", "":
		return KindPlain, ""
	}
	if lexer := lexers.Match(name); lexer != nil {
		return KindCode, lexer.Config().Name
	}
	return KindPlain, ""
}

// Size returns the human readable size of the source.
func (d *Document) Size() string {
	return humanize.IBytes(uint64(len(d.Source)))
}

// Render returns the document as styled lines fitted to width.
func (d *Document) Render(width int, opts Options) []string {
	if width < 1 {
		width = 1
	}
	if opts.TabWidth < 1 {
		opts.TabWidth = DefaultOptions().TabWidth
	}

	var text string
	switch d.Kind {
	case KindMarkdown:
		text = renderMarkdown(d.Source, width)
	case KindCode:
		text = highlight(render.ExpandTabs(string(d.Source), opts.TabWidth), d.Lexer)
	default:
		text = render.SanitizeText(render.ExpandTabs(string(d.Source), opts.TabWidth))
	}

	return fit(text, width, opts.Wrap)
}
