package svgdom

import (
	"sort"
	"strings"
)

// Render serializes the element tree rooted at e as SVG markup.
// Attributes are written in sorted order, followed by the style attribute
// (properties sorted), so the output is deterministic.
func (e *Element) Render() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Element) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)

	b.WriteString(` id="`)
	b.WriteString(escape(e.id))
	b.WriteByte('"')

	for _, name := range sortedKeys(e.attrs) {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escape(e.attrs[name]))
		b.WriteByte('"')
	}

	if len(e.style) > 0 {
		b.WriteString(` style="`)
		for i, name := range sortedKeys(e.style) {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(name)
			b.WriteByte(':')
			b.WriteString(escape(e.style[name]))
		}
		b.WriteByte('"')
	}

	if e.text == "" && len(e.children) == 0 {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	b.WriteString(escape(e.text))
	for _, c := range e.children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return escaper.Replace(s) }
