package ingest

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings are
// emitted on their own line so they survive as section markers.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
			buf.Write(node.Text(src))
			buf.WriteByte('\n')
		case *ast.List:
			// Items become bullet lines; the marker is reinstated since the
			// AST strips it.
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
			for li := node.FirstChild(); li != nil; li = li.NextSibling() {
				if t := blockText(li, src); t != "" {
					buf.WriteString("• ")
					buf.WriteString(t)
					buf.WriteByte('\n')
				}
			}
		default:
			t := blockText(n, src)
			if t == "" {
				continue
			}
			if buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
			buf.WriteString(t)
		}
	}
	return buf.String(), nil
}

// blockText gets the text content of a goldmark AST node from the raw source
// lines of its leaf blocks.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			sub := blockText(c, src)
			if sub != "" {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(sub)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
