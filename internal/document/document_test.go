package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/curtains/internal/ui/testutil"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"README.md", KindMarkdown},
		{"notes.MARKDOWN", KindMarkdown},
		{"notes.txt", KindPlain},
		{"LICENSE", KindPlain},
		{"main.go", KindCode},
		{"script.py", KindCode},
		{"data.unknownext", KindPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, lexer := detect(tt.name)
			assert.Equal(t, tt.kind, kind)
			if kind == KindCode {
				assert.NotEmpty(t, lexer)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello\nworld\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", doc.Name)
	assert.True(t, filepath.IsAbs(doc.Path))
	assert.Equal(t, KindPlain, doc.Kind)
	assert.Equal(t, "12 B", doc.Size())

	_, err = Load(dir)
	assert.True(t, errors.Is(err, ErrDirectory))

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRender_PlainWraps(t *testing.T) {
	doc := FromBytes("/tmp/a.txt", []byte("abcdefghij\nshort\n"))

	lines := doc.Render(4, Options{TabWidth: 4, Wrap: true})
	assert.Equal(t, []string{"abcd", "efgh", "ij", "shor", "t"}, lines)
}

func TestRender_PlainTruncatesWithoutWrap(t *testing.T) {
	doc := FromBytes("/tmp/a.txt", []byte("abcdefghij\nxy"))

	lines := doc.Render(4, Options{TabWidth: 4, Wrap: false})
	assert.Equal(t, []string{"abcd", "xy"}, lines)
}

func TestRender_PlainStripsControlCharacters(t *testing.T) {
	doc := FromBytes("/tmp/a.txt", []byte("bell\x07 here\r\nnext"))

	lines := doc.Render(80, DefaultOptions())
	assert.Equal(t, []string{"bell here", "next"}, lines)
}

func TestRender_EmptyDocumentHasOneLine(t *testing.T) {
	doc := FromBytes("/tmp/empty.txt", nil)
	assert.Equal(t, []string{""}, doc.Render(80, DefaultOptions()))
}

func TestRender_ExpandsTabs(t *testing.T) {
	doc := FromBytes("/tmp/tabs.txt", []byte("a\tb\n\tc"))
	assert.Equal(t, []string{"a   b", "    c"}, doc.Render(80, Options{TabWidth: 4}))
}

func TestRender_Markdown(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Some *emphasis* and `code` with a [link](https://example.com).",
		"",
		"- one",
		"- two",
		"",
		"> quoted",
		"",
		"```",
		"plain block",
		"```",
	}, "\n")
	doc := FromBytes("/tmp/r.md", []byte(src))

	lines := doc.Render(80, DefaultOptions())
	plain := make([]string, len(lines))
	for i, l := range lines {
		plain[i] = strings.TrimRight(testutil.StripANSI(l), " ")
	}
	out := strings.Join(plain, "\n")

	assert.True(t, strings.HasPrefix(out, "TITLE"), "heading first:\n%s", out)
	assert.Contains(t, out, "Some emphasis and code with a link (https://example.com).")
	assert.Contains(t, out, "• one\n• two")
	assert.Contains(t, out, "│ quoted")
	assert.Contains(t, out, "  plain block")

	for i, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 80, "line %d too wide", i)
	}
}

func TestRender_MarkdownReflowsToWidth(t *testing.T) {
	src := strings.Repeat("word ", 40)
	doc := FromBytes("/tmp/r.md", []byte(src))

	lines := doc.Render(20, DefaultOptions())
	require.Greater(t, len(lines), 5)
	for i, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 20, "line %d too wide", i)
	}
}

func TestRender_Code(t *testing.T) {
	doc := FromBytes("/tmp/main.go", []byte("package main\n\nfunc main() {}\n"))
	require.Equal(t, KindCode, doc.Kind)

	lines := doc.Render(80, DefaultOptions())
	require.Len(t, lines, 3)
	assert.Equal(t, "package main", testutil.StripANSI(lines[0]))
	assert.Equal(t, "func main() {}", testutil.StripANSI(lines[2]))
}

func TestHighlight_UnknownLexerFallsBack(t *testing.T) {
	assert.Equal(t, "x = 1", highlight("x = 1", ""))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "markdown", KindMarkdown.String())
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "text", KindPlain.String())
}
