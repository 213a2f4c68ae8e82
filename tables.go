package xhtml2html

import "github.com/beevik/etree"

// Marker classes added to table markup so the aggregated CSS can target
// converted tables and merged cells.
const (
	classPreservedTable = "preserved-table"
	classMergedCell     = "merged-cell"
)

// EnhanceTables mutates the tree in place: every <table> gains a
// preserved-table marker on its class list, and every <td>/<th> beneath a
// table with a non-empty colspan or rowspan gains a merged-cell marker.
// Markers are appended without de-duplication, so repeated runs append
// duplicates.
func EnhanceTables(doc *etree.Document) {
	root := doc.Root()
	if root == nil {
		return
	}

	forEachElement(root, func(el *etree.Element) {
		if el.Tag != "table" {
			return
		}
		appendClass(el, classPreservedTable)

		forEachElement(el, func(cell *etree.Element) {
			if cell.Tag != "td" && cell.Tag != "th" {
				return
			}
			if cell.SelectAttrValue("colspan", "") != "" || cell.SelectAttrValue("rowspan", "") != "" {
				appendClass(cell, classMergedCell)
			}
		})
	})
}

// appendClass appends a class name to an element's space-joined class list.
func appendClass(el *etree.Element, name string) {
	existing := el.SelectAttrValue("class", "")
	if existing == "" {
		el.CreateAttr("class", name)
		return
	}
	el.CreateAttr("class", existing+" "+name)
}
