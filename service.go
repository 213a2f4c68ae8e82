package xhtml2html

import (
	"context"
	"fmt"

	"github.com/beevik/etree"
)

// documentParser abstracts tree construction from raw document text.
type documentParser interface {
	Parse(ctx context.Context, content string) (*etree.Document, error)
}

// styleExtractor abstracts CSS collection from a document tree.
type styleExtractor interface {
	Extract(ctx context.Context, doc *etree.Document) []string
}

// tableEnhancer abstracts the in-place table markup pass.
type tableEnhancer interface {
	Enhance(ctx context.Context, doc *etree.Document)
}

// namespaceTransformer abstracts the namespace rewrite.
type namespaceTransformer interface {
	Transform(ctx context.Context, doc *etree.Document) (*etree.Document, error)
}

// Service orchestrates the XHTML-to-HTML pipeline.
type Service struct {
	cfg         serviceConfig
	parser      documentParser
	styles      styleExtractor
	tables      tableEnhancer
	transformer namespaceTransformer
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithNamespacePolicy).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			policy:   PolicyPreserveFinancial,
			tableCSS: defaultTableCSS,
		},
		parser: &recoveringParser{},
		styles: &inlineStyleExtractor{},
		tables: &markerTableEnhancer{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the transformer if not injected (e.g., by tests), after
	// options so it picks up the configured policy.
	if s.transformer == nil {
		s.transformer = &policyTransformer{policy: s.cfg.policy}
	}

	return s
}

// Convert runs the full pipeline and returns the HTML document as text.
// The tree built from input.Document is exclusively owned by this call:
// the table enhancer mutates it in place before the transform reads it.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if input.Document == "" {
		return "", ErrEmptyDocument
	}

	doc, err := s.parser.Parse(ctx, input.Document)
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}

	// Styles are extracted before enhancement so synthesized selectors
	// reflect the source markup, not the marker classes.
	rules := s.styles.Extract(ctx, doc)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	s.tables.Enhance(ctx, doc)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	transformed, err := s.transformer.Transform(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("transforming namespaces: %w", err)
	}

	styleBlock := buildStyleBlock(s.cfg.tableCSS, rules, input.CSS)
	return Assemble(Doctype(doc), styleBlock, SerializeHTML(transformed)), nil
}

// recoveringParser implements documentParser with the tolerant parser.
type recoveringParser struct{}

func (p *recoveringParser) Parse(ctx context.Context, content string) (*etree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(content)
}

// inlineStyleExtractor implements styleExtractor.
type inlineStyleExtractor struct{}

func (e *inlineStyleExtractor) Extract(ctx context.Context, doc *etree.Document) []string {
	if ctx.Err() != nil {
		return nil
	}
	return ExtractStyles(doc)
}

// markerTableEnhancer implements tableEnhancer.
type markerTableEnhancer struct{}

func (m *markerTableEnhancer) Enhance(ctx context.Context, doc *etree.Document) {
	if ctx.Err() != nil {
		return
	}
	EnhanceTables(doc)
}

// policyTransformer implements namespaceTransformer for a fixed policy.
type policyTransformer struct {
	policy NamespacePolicy
}

func (t *policyTransformer) Transform(ctx context.Context, doc *etree.Document) (*etree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Transform(doc, t.policy)
}
