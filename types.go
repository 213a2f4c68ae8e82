package xhtml2html

import "fmt"

// NamespacePolicy selects the namespace rewrite rule set.
type NamespacePolicy int

const (
	// PolicyPreserveFinancial rewrites elements and attributes to their
	// local names, except those in XBRL/IFRS namespaces, which keep their
	// prefix and declaration. The root element is re-emitted as <html>
	// with the source root's namespace declarations and xml:lang remapped
	// to lang. This is the default.
	PolicyPreserveFinancial NamespacePolicy = iota

	// PolicyStripAll rewrites every element and attribute to its local
	// name, values copied verbatim.
	PolicyStripAll
)

// Policy names accepted by ParsePolicy.
const (
	policyNamePreserveFinancial = "preserve-financial"
	policyNameStripAll          = "strip-all"
)

// Valid reports whether p is a known policy.
func (p NamespacePolicy) Valid() bool {
	switch p {
	case PolicyPreserveFinancial, PolicyStripAll:
		return true
	}
	return false
}

// String returns the canonical policy name.
func (p NamespacePolicy) String() string {
	switch p {
	case PolicyPreserveFinancial:
		return policyNamePreserveFinancial
	case PolicyStripAll:
		return policyNameStripAll
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy converts a policy name to a NamespacePolicy.
func ParsePolicy(name string) (NamespacePolicy, error) {
	switch name {
	case policyNamePreserveFinancial:
		return PolicyPreserveFinancial, nil
	case policyNameStripAll:
		return PolicyStripAll, nil
	}
	return 0, fmt.Errorf("%w: %q (must be %s or %s)",
		ErrInvalidPolicy, name, policyNamePreserveFinancial, policyNameStripAll)
}

// Input contains conversion parameters.
type Input struct {
	Document string // XHTML source (required)
	CSS      string // Extra CSS appended to the aggregated style block (optional)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	policy   NamespacePolicy
	tableCSS string
}

// WithNamespacePolicy sets the namespace rewrite policy.
// Panics if p is not a known policy (programmer error).
func WithNamespacePolicy(p NamespacePolicy) Option {
	if !p.Valid() {
		panic("xhtml2html: WithNamespacePolicy requires a known policy")
	}
	return func(s *Service) {
		s.cfg.policy = p
	}
}

// WithTableCSS replaces the built-in table layout CSS.
func WithTableCSS(css string) Option {
	return func(s *Service) {
		s.cfg.tableCSS = css
	}
}
