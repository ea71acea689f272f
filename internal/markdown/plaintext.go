package markdown

import (
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// PlainText flattens markdown to plain text by walking the AST and collecting
// leaf literals. Inline formatting is dropped and whitespace is collapsed, so
// the result is suitable for one-line previews.
func PlainText(src string) string {
	if src == "" {
		return ""
	}

	doc := gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))

	var parts []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if leaf := node.AsLeaf(); leaf != nil && len(leaf.Literal) > 0 {
			parts = append(parts, string(leaf.Literal))
		}
		return ast.GoToNext
	})

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
