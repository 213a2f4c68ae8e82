package xhtml2html

import (
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// voidElements never take an end tag in the HTML output method.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements have their character data written without escaping.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// SerializeHTML renders a document tree using the HTML output method:
// void elements carry no end tag, script and style contents are raw, and
// all other text and attribute values are escaped. The DOCTYPE is not
// emitted here; the assembler prepends it.
func SerializeHTML(doc *etree.Document) string {
	var b strings.Builder
	for _, child := range doc.Child {
		if el, ok := child.(*etree.Element); ok {
			writeElement(&b, el)
		}
	}
	return b.String()
}

func writeElement(b *strings.Builder, el *etree.Element) {
	tag := el.FullTag()

	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range el.Attr {
		b.WriteByte(' ')
		b.WriteString(attrName(a))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if el.Space == "" && voidElements[el.Tag] {
		return
	}

	raw := el.Space == "" && rawTextElements[el.Tag]
	for _, child := range el.Child {
		switch t := child.(type) {
		case *etree.Element:
			writeElement(b, t)
		case *etree.CharData:
			if raw {
				b.WriteString(t.Data)
			} else {
				b.WriteString(html.EscapeString(t.Data))
			}
		case *etree.Comment:
			b.WriteString("<!--")
			b.WriteString(t.Data)
			b.WriteString("-->")
		}
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
