package xhtml2html

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ExtractStyles collects CSS from a document tree: first the trimmed text
// of every <style> element, then one synthesized rule per element carrying
// a non-empty style attribute, both in document order. The tree is not
// modified.
func ExtractStyles(doc *etree.Document) []string {
	root := doc.Root()
	if root == nil {
		return nil
	}

	var rules []string

	forEachElement(root, func(el *etree.Element) {
		if el.Tag != "style" {
			return
		}
		if text := strings.TrimSpace(elementText(el)); text != "" {
			rules = append(rules, text)
		}
	})

	forEachElement(root, func(el *etree.Element) {
		style := el.SelectAttrValue("style", "")
		if style == "" {
			return
		}
		rules = append(rules, fmt.Sprintf("%s { %s }", selectorFor(el), style))
	})

	return rules
}

// selectorFor synthesizes a CSS selector for an element: #id when an id is
// present, tag.class1.class2 when classes are present, otherwise a
// structural path joined with " > ", using :nth-child(i) only where
// several same-tag siblings share a parent. The result is a best-effort
// heuristic; distinct elements can collide.
func selectorFor(el *etree.Element) string {
	if id := el.SelectAttrValue("id", ""); id != "" {
		return "#" + id
	}

	if class := el.SelectAttrValue("class", ""); class != "" {
		return el.Tag + "." + strings.Join(strings.Fields(class), ".")
	}

	var path []string
	for cur := el; ; {
		parent := cur.Parent()
		if parent == nil || parent.Tag == "" {
			break
		}
		path = append(path, pathSegment(cur, parent))
		cur = parent
	}
	if len(path) == 0 {
		// Styled root element: no ancestors to build a path from.
		return el.Tag
	}

	// The path was collected bottom-up; selectors read top-down.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return strings.Join(path, " > ")
}

// pathSegment returns the selector segment for el within parent,
// disambiguating with :nth-child only among same-tag siblings.
func pathSegment(el, parent *etree.Element) string {
	index, count := 0, 0
	for _, sib := range parent.ChildElements() {
		if sib.Tag != el.Tag {
			continue
		}
		count++
		if sib == el {
			index = count
		}
	}
	if count > 1 {
		return fmt.Sprintf("%s:nth-child(%d)", el.Tag, index)
	}
	return el.Tag
}

// forEachElement visits el and its descendants in document order.
func forEachElement(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		forEachElement(child, fn)
	}
}

// elementText concatenates the character data children of an element,
// including CDATA sections.
func elementText(el *etree.Element) string {
	var b strings.Builder
	for _, child := range el.Child {
		if cd, ok := child.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
