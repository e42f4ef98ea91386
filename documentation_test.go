package hunter

import (
	"os"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestDocumentation keeps the README well formed: it must parse, carry the
// top level title, and every fenced code block must declare its language so
// terminal rendering and highlighting keep working.
func TestDocumentation(t *testing.T) {
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var title string
	fences := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && title == "" {
				title = string(node.Text(content))
			}
		case *ast.FencedCodeBlock:
			fences++
			if node.Info == nil || strings.TrimSpace(string(node.Info.Segment.Value(content))) == "" {
				t.Errorf("README.md has a fenced code block without a language")
			}
		}
		return ast.WalkContinue, nil
	})

	if title != "hunter" {
		t.Errorf("README.md title = %q, want \"hunter\"", title)
	}
	if fences == 0 {
		t.Error("README.md has no usage examples")
	}
}
