package xhtml2html

import "strings"

// defaultDoctype is emitted when the source document declared no DOCTYPE.
const defaultDoctype = "<!DOCTYPE html>"

// Assemble combines a DOCTYPE, a <style> block and transformed markup into
// the final HTML text. An empty doctype falls back to <!DOCTYPE html>; the
// style block is injected into the markup's head.
func Assemble(doctype, styleBlock, markup string) string {
	if doctype == "" {
		doctype = defaultDoctype
	}
	return doctype + "\n" + injectStyle(markup, styleBlock)
}

// injectStyle inserts a <style> block into HTML markup.
// Tries </head> first, then after <body>, then prepends.
func injectStyle(htmlContent, styleBlock string) string {
	if styleBlock == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}
