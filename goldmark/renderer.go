package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type textRenderer struct{}

func (r *textRenderer) render(source []byte) string {
	p := goldmark.DefaultParser()
	reader := text.NewReader(source)
	doc := p.Parse(reader)

	var buf bytes.Buffer
	r.walkBlock(doc, source, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func (r *textRenderer) walkBlock(node ast.Node, source []byte, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, buf)
	}
}

func (r *textRenderer) renderBlock(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		buf.WriteString(r.collectInline(n, source))
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.Heading:
		buf.WriteString(r.collectInline(n, source))
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.FencedCodeBlock:
		r.writeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.CodeBlock:
		r.writeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.List:
		r.renderList(n, source, buf, 0)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.ThematicBreak:
		// Pure decoration; block separation already reads as a break.

	case *ast.HTMLBlock:
		// Markup, not text.

	default:
		// Blockquotes and other containers: recurse into children.
		r.walkBlock(node, source, buf)
	}
}

func (r *textRenderer) writeLines(node ast.Node, source []byte, buf *bytes.Buffer) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.WriteString(strings.TrimRight(string(line.Value(source)), "\n"))
		buf.WriteString("\n")
	}
}

func (r *textRenderer) renderList(node *ast.List, source []byte, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	start := node.Start
	itemNum := 0

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		var marker string
		if ordered {
			itemNum++
			marker = fmt.Sprintf("%d. ", start+itemNum-1)
		} else {
			marker = "- "
		}

		// Collect item content.
		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				itemBuf.WriteString(r.collectInline(in, source))
			case *ast.List:
				if itemBuf.Len() > 0 {
					buf.WriteString(indent + marker + itemBuf.String() + "\n")
					itemBuf.Reset()
				}
				r.renderList(in, source, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			buf.WriteString(indent + marker + itemBuf.String() + "\n")
		}
	}
}

// collectInline recursively collects the text content of a node's children.
func (r *textRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *textRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.CodeSpan:
		buf.WriteString(r.collectInline(n, source))

	case *ast.Link:
		buf.WriteString(r.collectInline(n, source))
		buf.WriteString(" (")
		buf.Write(n.Destination)
		buf.WriteString(")")

	case *ast.AutoLink:
		buf.Write(n.URL(source))

	case *ast.Image:
		buf.WriteString(r.collectInline(n, source))
		buf.WriteString(" (")
		buf.Write(n.Destination)
		buf.WriteString(")")

	case *ast.RawHTML:
		// Markup, not text.

	default:
		// Emphasis and any unrecognized inline: recurse.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}
