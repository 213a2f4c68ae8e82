package xhtml2html

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    NamespacePolicy
		wantErr bool
	}{
		{name: "preserve-financial", want: PolicyPreserveFinancial},
		{name: "strip-all", want: PolicyStripAll},
		{name: "keep-everything", wantErr: true},
		{name: "", wantErr: true},
		{name: "Preserve-Financial", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePolicy(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPolicy) {
					t.Errorf("ParsePolicy(%q) error = %v, want ErrInvalidPolicy", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy(%q) error = %v, want nil", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPolicyStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []NamespacePolicy{PolicyPreserveFinancial, PolicyStripAll} {
		got, err := ParsePolicy(p.String())
		if err != nil {
			t.Fatalf("ParsePolicy(%q) error = %v, want nil", p.String(), err)
		}
		if got != p {
			t.Errorf("round trip of %v = %v", p, got)
		}
	}
}

func TestPolicyValid(t *testing.T) {
	t.Parallel()

	if !PolicyPreserveFinancial.Valid() || !PolicyStripAll.Valid() {
		t.Error("known policies reported invalid")
	}
	if NamespacePolicy(99).Valid() {
		t.Error("unknown policy reported valid")
	}
}

func TestWithNamespacePolicyPanicsOnUnknown(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithNamespacePolicy(unknown) did not panic")
		}
	}()
	WithNamespacePolicy(NamespacePolicy(99))
}
