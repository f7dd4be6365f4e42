package rfcxml

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/unicharts/xmlchar"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeText escapes s for use as character data.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes s for use as a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// printer writes indented markup and remembers the first write error.
type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// Write serializes fragment to w, starting at indentation level indent.
func Write(w io.Writer, fragment Fragment, indent int) error {
	p := &printer{w: w, indent: indent}
	for _, n := range fragment {
		p.node(n)
	}
	return p.err
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Section:
		if n.Anchor != "" {
			p.line(`<section anchor="%s">`, EscapeAttr(n.Anchor))
		} else {
			p.line("<section>")
		}
		p.indent++
		p.line("<name>%s</name>", EscapeText(n.Name))
		for _, c := range n.Children {
			p.node(c)
		}
		p.indent--
		p.line("</section>")
	case Paragraph:
		p.line("<t>%s</t>", inlines(n))
	case *Table:
		p.table(n)
	case List:
		p.line("<ul>")
		p.indent++
		for _, item := range n {
			p.line("<li>%s</li>", inlines(item))
		}
		p.indent--
		p.line("</ul>")
	default:
		panic(fmt.Sprintf("rfcxml: unknown node type %T", n))
	}
}

func (p *printer) table(t *Table) {
	p.line("<table>")
	p.indent++
	p.line("<name>%s</name>", EscapeText(t.Name))
	if len(t.Head) > 0 {
		p.line("<thead>")
		p.indent++
		p.line("<tr>")
		p.indent++
		for _, h := range t.Head {
			p.line("<th>%s</th>", EscapeText(h))
		}
		p.indent--
		p.line("</tr>")
		p.indent--
		p.line("</thead>")
	}
	p.line("<tbody>")
	p.indent++
	for _, row := range t.Rows {
		p.line("<tr>")
		p.indent++
		for _, cell := range row {
			p.line("<td>%s</td>", inlines(cell))
		}
		p.indent--
		p.line("</tr>")
	}
	p.indent--
	p.line("</tbody>")
	p.indent--
	p.line("</table>")
}

func inlines(content []Inline) string {
	var b strings.Builder
	for _, in := range content {
		switch in := in.(type) {
		case Text:
			b.WriteString(EscapeText(string(in)))
		case Char:
			b.WriteString(xmlchar.Fragment(rune(in)))
		case Xref:
			fmt.Fprintf(&b, `<xref target="%s" />`, EscapeAttr(in.Target))
		case Eref:
			fmt.Fprintf(&b, `<eref target="%s">%s</eref>`, EscapeAttr(in.Target), EscapeText(in.Text))
		default:
			panic(fmt.Sprintf("rfcxml: unknown inline type %T", in))
		}
	}
	return b.String()
}
