// Package xhtml2html converts XHTML documents to standalone HTML with
// layout preservation.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := xhtml2html.New()
//	html, err := svc.Convert(ctx, xhtml2html.Input{
//	    Document: xhtmlSource,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.html", []byte(html), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Tolerant parse into a document tree (recovers from malformed markup,
//     keeps comments, never resolves external entities)
//  2. Style extraction (embedded <style> blocks and inline style attributes,
//     with a synthesized selector per styled element)
//  3. Table enhancement (preserved-table and merged-cell marker classes)
//  4. Namespace transform (strip namespaces, or keep XBRL/IFRS vocabularies)
//  5. Assembly (DOCTYPE + aggregated <style> block + serialized markup)
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := xhtml2html.New(
//	    xhtml2html.WithNamespacePolicy(xhtml2html.PolicyStripAll),
//	    xhtml2html.WithTableCSS("table { width: auto; }"),
//	)
//
// # Namespace Policies
//
// The default policy, PolicyPreserveFinancial, rewrites every element and
// attribute to its local name but keeps elements and attributes belonging
// to financial-reporting vocabularies (XBRL, IFRS) in their namespace, so
// inline-tagged filings stay machine-readable after conversion.
// PolicyStripAll removes all namespaces unconditionally.
//
// # Known Limitations
//
// Selectors synthesized for inline styles are a best-effort heuristic
// (id, then classes, then a structural path); distinct elements can
// receive the same selector. Re-running the converter on its own output
// appends marker classes again; the conversion is not idempotent.
package xhtml2html
