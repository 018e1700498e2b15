// Package plan implements the subscription state machine: creating provider
// checkout links, deriving a chef's plan state from payment webhooks, and
// sweeping expired plans. A chef's plan is either inactive (default) or
// active with an expiration; all transitions go through this package except
// the lazy deactivation readers perform via the chef store.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind identifies a subscription plan duration.
type Kind string

const (
	KindMonthly Kind = "monthly"
	KindAnnual  Kind = "annual"
)

// Plan describes a purchasable subscription plan as registered with the
// payment provider.
type Plan struct {
	Kind            Kind    `yaml:"kind"`
	Reason          string  `yaml:"reason"`          // human-readable checkout title
	Amount          float64 `yaml:"amount"`          // recurring charge
	Currency        string  `yaml:"currency"`        // ISO currency code
	Months          int     `yaml:"months"`          // billing frequency and entitlement length
	ReferencePrefix string  `yaml:"referencePrefix"` // external_reference prefix, wire-compatible with the provider setup
	BackURL         string  `yaml:"backUrl"`         // post-checkout redirect
}

// Reference builds the provider external_reference correlating a checkout
// back to a chef: "<prefix>_<email>".
func (p Plan) Reference(email string) string {
	return p.ReferencePrefix + "_" + email
}

// Catalog is the set of purchasable plans keyed by kind.
type Catalog map[Kind]Plan

// DefaultCatalog returns the built-in plan catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		KindMonthly: {
			Kind:            KindMonthly,
			Reason:          "Assinatura Mensal de Serviço",
			Amount:          59.90,
			Currency:        "BRL",
			Months:          1,
			ReferencePrefix: "plano_mensal_premium",
			BackURL:         "https://menuzap.com.br/sucesso-assinatura",
		},
		KindAnnual: {
			Kind:            KindAnnual,
			Reason:          "Assinatura Anual de Serviço",
			Amount:          599.00,
			Currency:        "BRL",
			Months:          12,
			ReferencePrefix: "plano_anual_premium",
			BackURL:         "https://menuzap.com.br/sucesso-assinatura-anual",
		},
	}
}

// LoadCatalog reads a plan catalog from a YAML file. The file holds a list
// of plans; fields missing from an entry fall back to the default catalog's
// values for that kind.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plan: read catalog: %w", err)
	}

	var plans []Plan
	if err := yaml.Unmarshal(raw, &plans); err != nil {
		return nil, fmt.Errorf("plan: parse catalog: %w", err)
	}

	catalog := DefaultCatalog()
	for _, p := range plans {
		base, ok := catalog[p.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlanKind, p.Kind)
		}
		if p.Reason != "" {
			base.Reason = p.Reason
		}
		if p.Amount > 0 {
			base.Amount = p.Amount
		}
		if p.Currency != "" {
			base.Currency = p.Currency
		}
		if p.Months > 0 {
			base.Months = p.Months
		}
		if p.ReferencePrefix != "" {
			base.ReferencePrefix = p.ReferencePrefix
		}
		if p.BackURL != "" {
			base.BackURL = p.BackURL
		}
		catalog[p.Kind] = base
	}
	return catalog, nil
}

// ByReference resolves the plan and chef email embedded in a provider
// external_reference string.
func (c Catalog) ByReference(ref string) (Plan, string, error) {
	for _, p := range c {
		prefix := p.ReferencePrefix + "_"
		if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
			return p, ref[len(prefix):], nil
		}
	}
	return Plan{}, "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
}
