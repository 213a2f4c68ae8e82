package xhtml2html

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
)

const inlineXBRLSource = `<html xmlns="http://www.w3.org/1999/xhtml"` +
	` xmlns:ix="http://www.xbrl.org/2013/inlineXBRL" xml:lang="en">` +
	`<body class="report">` +
	`<ix:nonFraction name="ifrs-full:Revenue" contextRef="c1">100</ix:nonFraction>` +
	`</body></html>`

func TestTransformPreserveFinancial(t *testing.T) {
	t.Parallel()

	doc, err := Parse(inlineXBRLSource)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	out, err := Transform(doc, PolicyPreserveFinancial)
	if err != nil {
		t.Fatalf("Transform() error = %v, want nil", err)
	}

	root := out.Root()
	if root.Tag != "html" || root.Space != "" {
		t.Fatalf("root = %q, want plain html", root.FullTag())
	}
	if got, want := root.SelectAttrValue("xmlns", ""), "http://www.w3.org/1999/xhtml"; got != want {
		t.Errorf("root xmlns = %q, want %q", got, want)
	}
	if got, want := root.SelectAttrValue("xmlns:ix", ""), "http://www.xbrl.org/2013/inlineXBRL"; got != want {
		t.Errorf("root xmlns:ix = %q, want %q", got, want)
	}
	if got := root.SelectAttrValue("lang", ""); got != "en" {
		t.Errorf("root lang = %q, want %q (remapped from xml:lang)", got, "en")
	}
	if a := root.SelectAttr("xml:lang"); a != nil {
		t.Errorf("root kept xml:lang = %q, want it remapped", a.Value)
	}

	body := root.FindElement("body")
	if body == nil {
		t.Fatal("body missing from transformed tree")
	}
	if got := body.SelectAttrValue("class", ""); got != "report" {
		t.Errorf("body class = %q, want %q", got, "report")
	}

	fact := root.FindElement("//ix:nonFraction")
	if fact == nil {
		t.Fatal("ix:nonFraction missing, want prefixed element preserved")
	}
	if got, want := fact.SelectAttrValue("xmlns:ix", ""), "http://www.xbrl.org/2013/inlineXBRL"; got != want {
		t.Errorf("fact xmlns:ix = %q, want self-binding %q", got, want)
	}
	if got := fact.SelectAttrValue("contextRef", ""); got != "c1" {
		t.Errorf("fact contextRef = %q, want %q", got, "c1")
	}
	if got := fact.Text(); got != "100" {
		t.Errorf("fact text = %q, want %q", got, "100")
	}
}

func TestTransformStripAll(t *testing.T) {
	t.Parallel()

	doc, err := Parse(inlineXBRLSource)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	out, err := Transform(doc, PolicyStripAll)
	if err != nil {
		t.Fatalf("Transform() error = %v, want nil", err)
	}

	root := out.Root()
	if root.Tag != "html" {
		t.Fatalf("root tag = %q, want %q", root.Tag, "html")
	}
	if a := root.SelectAttr("xmlns"); a != nil {
		t.Errorf("root kept xmlns = %q, want declarations stripped", a.Value)
	}
	if a := root.SelectAttr("xmlns:ix"); a != nil {
		t.Errorf("root kept xmlns:ix = %q, want declarations stripped", a.Value)
	}

	fact := root.FindElement("//nonFraction")
	if fact == nil {
		t.Fatal("nonFraction missing, want element kept under local name")
	}
	if fact.Space != "" {
		t.Errorf("fact prefix = %q, want none", fact.Space)
	}
	if got := fact.SelectAttrValue("name", ""); got != "ifrs-full:Revenue" {
		t.Errorf("fact name = %q, want value copied verbatim", got)
	}
}

func TestTransformDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	doc, err := Parse(inlineXBRLSource)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	before := doc.Root().FullTag()
	if _, err := Transform(doc, PolicyStripAll); err != nil {
		t.Fatalf("Transform() error = %v, want nil", err)
	}
	if got := doc.Root().FullTag(); got != before {
		t.Errorf("input root mutated to %q, want %q", got, before)
	}
	if a := doc.Root().SelectAttr("xml:lang"); a == nil {
		t.Error("input lost xml:lang, want input untouched")
	}
}

func TestTransformCopiesComments(t *testing.T) {
	t.Parallel()

	doc, err := Parse(`<html><body><!-- keep me --><p>x</p></body></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}

	out, err := Transform(doc, PolicyPreserveFinancial)
	if err != nil {
		t.Fatalf("Transform() error = %v, want nil", err)
	}

	body := out.Root().FindElement("body")
	var found bool
	for _, child := range body.Child {
		if c, ok := child.(*etree.Comment); ok && c.Data == " keep me " {
			found = true
		}
	}
	if !found {
		t.Error("comment dropped, want it copied through")
	}
}

func TestTransformErrors(t *testing.T) {
	t.Parallel()

	if _, err := Transform(etree.NewDocument(), PolicyPreserveFinancial); !errors.Is(err, ErrTransform) {
		t.Errorf("Transform(empty tree) error = %v, want ErrTransform", err)
	}

	doc, err := Parse(`<html><body/></html>`)
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if _, err := Transform(doc, NamespacePolicy(99)); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("Transform(unknown policy) error = %v, want ErrInvalidPolicy", err)
	}
}

func TestIsFinancialNamespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		uri  string
		want bool
	}{
		{"http://www.xbrl.org/2013/inlineXBRL", true},
		{"https://xbrl.ifrs.org/taxonomy/2022-03-24/ifrs-full", true},
		{"http://www.w3.org/1999/xhtml", false},
		{"", false},
		{"http://example.com/XBRL", false}, // matching is case-sensitive
	}

	for _, tt := range tests {
		tt := tt
		if got := isFinancialNamespace(tt.uri); got != tt.want {
			t.Errorf("isFinancialNamespace(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}
