package xhtml2html

import (
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// newReadSettings returns the parser configuration used for every read:
// recover from malformed markup, keep comments, decode declared charsets,
// and expand HTML entities. encoding/xml never fetches external entities,
// so XXE is excluded by construction.
func newReadSettings() etree.ReadSettings {
	return etree.ReadSettings{
		CharsetReader: charset.NewReaderLabel,
		Permissive:    true,
		Entity:        xml.HTMLEntity,
		AutoClose:     xml.HTMLAutoClose,
	}
}

// Parse builds a document tree from XHTML source. Malformed markup is
// recovered rather than rejected: when the permissive XML read fails, the
// input is re-parsed with the HTML5 parser, which accepts any byte
// sequence. Parse fails only for empty or markup-free input.
func Parse(content string) (*etree.Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDocument
	}
	if !strings.Contains(content, "<") {
		return nil, fmt.Errorf("%w: input contains no markup", ErrInvalidDocument)
	}

	// Undecodable sequences are replaced, not rejected.
	sanitized := strings.ToValidUTF8(content, string(utf8.RuneError))

	doc := etree.NewDocument()
	doc.ReadSettings = newReadSettings()
	if err := doc.ReadFromString(sanitized); err == nil && doc.Root() != nil {
		return doc, nil
	}

	return parseRecovered(sanitized)
}

// parseRecovered rebuilds a document tree via the HTML5 parser. It yields
// a best-effort tree for truncated or invalid input, wrapped in the
// html/head/body skeleton the HTML5 algorithm mandates.
func parseRecovered(content string) (*etree.Document, error) {
	node, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// html.Parse only fails on reader errors, which strings.Reader
		// never produces; kept for completeness.
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := etree.NewDocument()
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			doc.CreateDirective(doctypeDirective(c))
		}
	}
	convertNodes(node, &doc.Element)
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no elements recovered", ErrInvalidDocument)
	}
	return doc, nil
}

// convertNodes copies element, text and comment nodes from an html.Node
// tree into an etree element.
func convertNodes(n *html.Node, parent *etree.Element) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := parent.CreateElement(c.Data)
			for _, a := range c.Attr {
				key := a.Key
				if a.Namespace != "" {
					key = a.Namespace + ":" + a.Key
				}
				el.CreateAttr(key, a.Val)
			}
			convertNodes(c, el)
		case html.TextNode:
			parent.CreateText(c.Data)
		case html.CommentNode:
			parent.CreateComment(c.Data)
		}
	}
}

// doctypeDirective renders an html.DoctypeNode as directive text,
// e.g. `DOCTYPE html PUBLIC "..." "..."`.
func doctypeDirective(n *html.Node) string {
	var b strings.Builder
	b.WriteString("DOCTYPE ")
	b.WriteString(n.Data)
	var public, system string
	for _, a := range n.Attr {
		switch a.Key {
		case "public":
			public = a.Val
		case "system":
			system = a.Val
		}
	}
	if public != "" {
		fmt.Fprintf(&b, " PUBLIC %q", public)
		if system != "" {
			fmt.Fprintf(&b, " %q", system)
		}
	} else if system != "" {
		fmt.Fprintf(&b, " SYSTEM %q", system)
	}
	return b.String()
}

// Doctype returns the DOCTYPE declaration of a parsed document, or "" when
// the source declared none.
func Doctype(doc *etree.Document) string {
	for _, child := range doc.Child {
		d, ok := child.(*etree.Directive)
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(d.Data)), "DOCTYPE") {
			return "<!" + d.Data + ">"
		}
	}
	return ""
}
