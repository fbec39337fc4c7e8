package document

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/llehouerou/curtains/internal/ui/render"
)

const (
	chromaFormatter = "terminal256"
	chromaStyle     = "monokai"
)

// highlight colors source with the named chroma lexer. Unknown lexers and
// highlighter errors fall back to the plain text.
func highlight(source, lexer string) string {
	if lexer == "" {
		return render.SanitizeText(source)
	}
	var b strings.Builder
	if err := quick.Highlight(&b, source, lexer, chromaFormatter, chromaStyle); err != nil {
		return render.SanitizeText(source)
	}
	return b.String()
}
