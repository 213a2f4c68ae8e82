package xhtml2html

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// financialMarkers identify financial-reporting vocabularies by namespace
// URI fragment. Matching is a case-sensitive substring test: filings
// declare URIs such as http://www.xbrl.org/2013/inlineXBRL and
// https://xbrl.ifrs.org/taxonomy/2022-03-24/ifrs-full.
var financialMarkers = []string{"xbrl", "ifrs"}

// isFinancialNamespace reports whether a namespace URI belongs to a
// financial-reporting vocabulary.
func isFinancialNamespace(uri string) bool {
	for _, marker := range financialMarkers {
		if strings.Contains(uri, marker) {
			return true
		}
	}
	return false
}

// Transform applies the fixed namespace rewrite to a document tree and
// returns a new tree; the input is not modified. The rule set is selected
// by policy and fails only when the tree has no root element.
func Transform(doc *etree.Document, policy NamespacePolicy) (*etree.Document, error) {
	src := doc.Root()
	if src == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrTransform)
	}

	out := etree.NewDocument()
	switch policy {
	case PolicyStripAll:
		out.AddChild(stripElement(src))
	case PolicyPreserveFinancial:
		out.AddChild(preserveRoot(src))
	default:
		return nil, fmt.Errorf("%w: %v", ErrTransform, ErrInvalidPolicy)
	}
	return out, nil
}

// stripElement re-emits an element under its local name with every
// attribute copied by local name. Namespace declarations do not survive.
func stripElement(src *etree.Element) *etree.Element {
	dst := etree.NewElement(src.Tag)
	for _, a := range src.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		dst.CreateAttr(a.Key, a.Value)
	}
	copyChildren(src, dst, stripElement)
	return dst
}

// preserveRoot re-emits the source root as <html>, carrying over the
// root's namespace declarations and remapping xml:lang to lang.
func preserveRoot(src *etree.Element) *etree.Element {
	dst := etree.NewElement("html")
	for _, a := range src.Attr {
		if isNamespaceDecl(a) {
			dst.CreateAttr(attrName(a), a.Value)
			continue
		}
		copyAttr(dst, a)
	}
	copyChildren(src, dst, preserveElement)
	return dst
}

// preserveElement applies the selective rule: elements in financial
// vocabularies keep their prefixed name and namespace binding, everything
// else is stripped to its local name.
func preserveElement(src *etree.Element) *etree.Element {
	uri := src.NamespaceURI()
	if !isFinancialNamespace(uri) {
		dst := etree.NewElement(src.Tag)
		for _, a := range src.Attr {
			if isNamespaceDecl(a) {
				continue
			}
			copyAttr(dst, a)
		}
		copyChildren(src, dst, preserveElement)
		return dst
	}

	dst := etree.NewElement(src.FullTag())
	// Keep the prefix bound even when the declaration lived on an
	// ancestor that was stripped.
	if src.Space != "" {
		dst.CreateAttr("xmlns:"+src.Space, uri)
	} else {
		dst.CreateAttr("xmlns", uri)
	}
	for _, a := range src.Attr {
		if isNamespaceDecl(a) {
			dst.CreateAttr(attrName(a), a.Value)
			continue
		}
		copyAttr(dst, a)
	}
	copyChildren(src, dst, preserveElement)
	return dst
}

// copyAttr applies the attribute rule: xml:lang becomes lang, attributes
// in financial vocabularies keep their prefix, everything else keeps its
// local name with the value copied verbatim.
func copyAttr(dst *etree.Element, a etree.Attr) {
	if a.Space == "xml" && a.Key == "lang" {
		dst.CreateAttr("lang", a.Value)
		return
	}
	if a.Space != "" && isFinancialNamespace(a.NamespaceURI()) {
		dst.CreateAttr(a.Space+":"+a.Key, a.Value)
		return
	}
	dst.CreateAttr(a.Key, a.Value)
}

// copyChildren copies element, text and comment children from src to dst,
// transforming elements through fn. Processing instructions and nested
// directives are dropped.
func copyChildren(src, dst *etree.Element, fn func(*etree.Element) *etree.Element) {
	for _, child := range src.Child {
		switch t := child.(type) {
		case *etree.Element:
			dst.AddChild(fn(t))
		case *etree.CharData:
			dst.CreateText(t.Data)
		case *etree.Comment:
			dst.CreateComment(t.Data)
		}
	}
}

// isNamespaceDecl reports whether an attribute is an xmlns declaration.
func isNamespaceDecl(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// attrName returns the attribute name with its prefix, if any.
func attrName(a etree.Attr) string {
	if a.Space != "" {
		return a.Space + ":" + a.Key
	}
	return a.Key
}
