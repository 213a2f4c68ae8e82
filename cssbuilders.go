package xhtml2html

import "strings"

// defaultTableCSS preserves table layout in the converted document.
const defaultTableCSS = `table {
    border-collapse: collapse;
    width: 100%;
    margin-bottom: 1em;
    page-break-inside: avoid;
}
td, th {
    border: 1px solid #ddd;
    padding: 8px;
    text-align: left;
}
th {
    background-color: #f8f9fa;
}`

// buildStyleBlock combines the table CSS, the extracted rules (in document
// order) and optional extra CSS into a single sanitized <style> block.
func buildStyleBlock(tableCSS string, rules []string, extraCSS string) string {
	parts := make([]string, 0, len(rules)+2)
	parts = append(parts, tableCSS)
	parts = append(parts, rules...)
	if extraCSS != "" {
		parts = append(parts, extraCSS)
	}
	return "<style>" + sanitizeCSS(strings.Join(parts, "\n")) + "</style>"
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
