package document

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/llehouerou/curtains/internal/ui/styles"
)

const wrapBreakpoints = " ,.;-+|"

var (
	markdownOnce   sync.Once
	markdownParser goldmark.Markdown
)

func parser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// renderMarkdown renders Markdown source as styled terminal text wrapped to
// width. Soft line breaks become spaces so paragraphs reflow.
func renderMarkdown(source []byte, width int) string {
	doc := parser().Parser().Parse(text.NewReader(source))
	r := &mdRenderer{source: source, width: width, theme: styles.T()}
	_ = ast.Walk(doc, r.walk)
	return strings.TrimRight(r.out.String(), "\n")
}

type mdRenderer struct {
	source []byte
	width  int
	theme  *styles.Theme

	out      strings.Builder
	inline   strings.Builder
	trailing int

	prefix      []string
	prefixWidth int
	bullet      string

	bold, italic, strike int
	lists                []mdList
}

type mdList struct {
	ordered bool
	next    int
	tight   bool
}

func (r *mdRenderer) write(s string) {
	if s == "" {
		return
	}
	r.out.WriteString(s)
	n := len(s) - len(strings.TrimRight(s, "\n"))
	if n == len(s) {
		r.trailing += n
	} else {
		r.trailing = n
	}
}

func (r *mdRenderer) newline() {
	if r.trailing < 1 {
		r.write("\n")
	}
}

func (r *mdRenderer) blank() {
	if r.out.Len() == 0 {
		return
	}
	for r.trailing < 2 {
		r.write("\n")
	}
}

func (r *mdRenderer) linePrefix() string {
	return strings.Join(r.prefix, "")
}

func (r *mdRenderer) push(p string) {
	r.prefix = append(r.prefix, p)
	r.prefixWidth += ansi.StringWidth(p)
}

func (r *mdRenderer) pop() {
	if len(r.prefix) == 0 {
		return
	}
	last := r.prefix[len(r.prefix)-1]
	r.prefix = r.prefix[:len(r.prefix)-1]
	r.prefixWidth -= ansi.StringWidth(last)
}

func (r *mdRenderer) contentWidth() int {
	return max(r.width-r.prefixWidth, 10)
}

func (r *mdRenderer) tight() bool {
	return len(r.lists) > 0 && r.lists[len(r.lists)-1].tight
}

// emit writes content line by line with the current prefixes. The first
// line takes a pending list bullet instead of the plain prefix.
func (r *mdRenderer) emit(content string) {
	for i, line := range strings.Split(content, "\n") {
		p := r.linePrefix()
		if i == 0 && r.bullet != "" {
			p = r.bullet
			r.bullet = ""
		}
		r.write(p + line)
		r.write("\n")
	}
}

func (r *mdRenderer) flush() string {
	content := r.inline.String()
	r.inline.Reset()
	if content == "" {
		return ""
	}
	return ansi.Wrap(content, r.contentWidth(), wrapBreakpoints)
}

func (r *mdRenderer) styled(s string) string {
	style := r.theme.S().Base
	if r.bold > 0 {
		style = style.Bold(true)
	}
	if r.italic > 0 {
		style = style.Italic(true)
	}
	if r.strike > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(s)
}

func (r *mdRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			r.inline.Reset()
			break
		}
		if content := r.flush(); content != "" {
			r.emit(content)
			if !r.tight() {
				r.blank()
			}
		}

	case *ast.Heading:
		if entering {
			r.inline.Reset()
			break
		}
		r.heading(n)

	case *ast.FencedCodeBlock:
		if entering {
			r.code(lines(n, r.source), string(n.Language(r.source)))
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			r.code(lines(n, r.source), "")
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock:
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			r.push(r.theme.S().Quote.Render("│ "))
		} else {
			r.pop()
			r.blank()
		}

	case *ast.List:
		if entering {
			r.lists = append(r.lists, mdList{ordered: n.IsOrdered(), next: n.Start, tight: n.IsTight})
			break
		}
		r.lists = r.lists[:len(r.lists)-1]
		if !r.tight() {
			r.blank()
		}

	case *ast.ListItem:
		if entering {
			r.listItem()
		} else {
			r.pop()
			if r.tight() {
				r.newline()
			} else {
				r.blank()
			}
		}

	case *ast.ThematicBreak:
		if entering {
			r.blank()
			r.emit(r.theme.S().Subtle.Render(strings.Repeat("─", r.contentWidth())))
			r.blank()
		}

	case *ast.Text:
		if entering {
			r.inline.WriteString(r.styled(string(n.Segment.Value(r.source))))
			if n.HardLineBreak() {
				r.inline.WriteString("\n")
			} else if n.SoftLineBreak() {
				r.inline.WriteString(" ")
			}
		}

	case *ast.String:
		if entering {
			r.inline.WriteString(r.styled(string(n.Value)))
		}

	case *ast.Emphasis:
		d := 1
		if !entering {
			d = -1
		}
		if n.Level >= 2 {
			r.bold += d
		} else {
			r.italic += d
		}

	case *ast.CodeSpan:
		if entering {
			var b strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					b.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(r.theme.S().Code.Render(b.String()))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		if entering {
			label := ansi.Strip(r.collect(n))
			dest := string(n.Destination)
			r.inline.WriteString(r.theme.S().Link.Render(label))
			if dest != "" && dest != label {
				r.inline.WriteString(r.theme.S().Subtle.Render(" (" + dest + ")"))
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.AutoLink:
		if entering {
			r.inline.WriteString(r.theme.S().Link.Render(string(n.URL(r.source))))
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			r.inline.WriteString(r.theme.S().Subtle.Render("[image: " + ansi.Strip(r.collect(n)) + "]"))
		}
		return ast.WalkSkipChildren, nil

	case *extast.Strikethrough:
		if entering {
			r.strike++
		} else {
			r.strike--
		}

	case *extast.TaskCheckBox:
		if entering {
			box := "[ ] "
			if n.IsChecked {
				box = "[x] "
			}
			r.inline.WriteString(r.styled(box))
		}
	}

	return ast.WalkContinue, nil
}

// collect renders the inline children of node without disturbing the
// paragraph being built.
func (r *mdRenderer) collect(node ast.Node) string {
	saved := r.inline.String()
	r.inline.Reset()
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		_ = ast.Walk(c, r.walk)
	}
	out := r.inline.String()
	r.inline.Reset()
	r.inline.WriteString(saved)
	return out
}

func (r *mdRenderer) heading(h *ast.Heading) {
	content := ansi.Strip(r.inline.String())
	r.inline.Reset()
	if content == "" {
		return
	}

	style := r.theme.S().Heading
	if h.Level > 2 {
		style = r.theme.S().Title
	}
	if h.Level == 1 {
		content = strings.ToUpper(content)
	}

	r.blank()
	r.emit(ansi.Wrap(style.Render(content), r.contentWidth(), wrapBreakpoints))
	if h.Level <= 2 {
		rule := strings.Repeat("─", min(lipgloss.Width(content), r.contentWidth()))
		r.emit(r.theme.S().Subtle.Render(rule))
	}
	r.blank()
}

func (r *mdRenderer) code(src, language string) {
	src = strings.TrimRight(src, "\n")
	var body string
	if language != "" {
		body = highlight(src, language)
	} else {
		body = r.theme.S().Muted.Render(src)
	}
	r.blank()
	r.push("  ")
	r.emit(strings.TrimRight(body, "\n"))
	r.pop()
	r.blank()
}

func (r *mdRenderer) listItem() {
	if len(r.lists) == 0 {
		return
	}
	top := &r.lists[len(r.lists)-1]
	bullet := "• "
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.next)
		top.next++
	}
	r.bullet = r.linePrefix() + r.theme.S().Muted.Render(bullet)
	r.push(strings.Repeat(" ", ansi.StringWidth(bullet)))
}

func lines(node ast.Node, source []byte) string {
	var b strings.Builder
	segs := node.Lines()
	for i := range segs.Len() {
		seg := segs.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}
