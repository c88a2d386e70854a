package faqmine

import "strings"

// DefaultCategory is assigned when no taxonomy keyword matches.
const DefaultCategory = "General"

// Category is a named topic and the keywords that select it.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an ordered category table. Order matters: the first category
// with a matching keyword wins.
type Taxonomy []Category

// DefaultTaxonomy returns the built-in English and German taxonomy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Name: "Shipping", Keywords: []string{"ship", "deliver", "shipping", "delivery", "tracking", "package", "versand", "lieferung"}},
		{Name: "Returns & Refunds", Keywords: []string{"return", "refund", "exchange", "money back", "cancel", "rückgabe", "erstattung"}},
		{Name: "Payment", Keywords: []string{"pay", "payment", "credit card", "billing", "charge", "cost", "price", "bezahlung", "preis"}},
		{Name: "Account", Keywords: []string{"account", "login", "password", "profile", "register", "sign up", "konto", "anmeldung"}},
		{Name: "Support", Keywords: []string{"help", "support", "contact", "customer service", "assistance", "hilfe", "kontakt"}},
		{Name: "Technical", Keywords: []string{"technical", "bug", "error", "not working", "browser", "mobile", "technisch", "fehler"}},
		{Name: DefaultCategory, Keywords: []string{"what", "how", "when", "where", "why", "was", "wie", "wann", "wo", "warum"}},
	}
}

// Validate returns an error if the taxonomy cannot be used for categorizing.
func (t Taxonomy) Validate() error {
	if len(t) == 0 {
		return Errorf(EINVALID, "taxonomy has no categories")
	}
	seen := make(map[string]bool, len(t))
	for i, c := range t {
		if strings.TrimSpace(c.Name) == "" {
			return Errorf(EINVALID, "taxonomy category %d has no name", i+1)
		}
		if seen[c.Name] {
			return Errorf(EINVALID, "taxonomy category %q is listed twice", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Categorizer assigns a topical category to a question.
// Implementations never return an empty category.
type Categorizer interface {
	Categorize(question string) string
}

// Ensure SubstringCategorizer implements Categorizer at compile time.
var _ Categorizer = (*SubstringCategorizer)(nil)

// SubstringCategorizer scans the taxonomy in order and returns the first
// category with a keyword occurring anywhere in the lower-cased question.
type SubstringCategorizer struct {
	taxonomy Taxonomy
}

// NewSubstringCategorizer creates a categorizer over t.
func NewSubstringCategorizer(t Taxonomy) *SubstringCategorizer {
	lowered := make(Taxonomy, len(t))
	for i, c := range t {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw = strings.ToLower(kw); kw != "" {
				kws = append(kws, kw)
			}
		}
		lowered[i] = Category{Name: c.Name, Keywords: kws}
	}
	return &SubstringCategorizer{taxonomy: lowered}
}

// Categorize implements Categorizer.
func (c *SubstringCategorizer) Categorize(question string) string {
	q := strings.ToLower(question)
	for _, cat := range c.taxonomy {
		for _, kw := range cat.Keywords {
			if strings.Contains(q, kw) {
				return cat.Name
			}
		}
	}
	return DefaultCategory
}
