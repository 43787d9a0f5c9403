// Package categorize assigns spending categories to merchants using an
// ordered keyword table. Matching is deterministic rule-based substring
// containment: the first rule whose keyword list matches wins, so table
// order is a semantic invariant, not an implementation detail.
package categorize

import (
	"strings"

	"github.com/insightdelivered/cc-expense-ledger/internal/models"
)

// Rule maps a category label to the merchant keywords that select it.
type Rule struct {
	Label    string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the built-in categorization table. Order matters:
// Dining precedes Groceries so that "swiggy" outranks "instamart" for
// merchants like "Swiggy Instamart". Do not reorder without checking
// the pinned fixtures in categorize_test.go.
var DefaultRules = []Rule{
	{Label: "Dining", Keywords: []string{"swiggy", "zomato", "restaurant", "cafe", "dominos", "pizza", "kfc", "mcdonald", "bistro"}},
	{Label: "Groceries", Keywords: []string{"bigbasket", "blinkit", "zepto", "dmart", "reliance fresh", "more", "grocery", "blink commerce", "instamart"}},
	{Label: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra", "ajio", "nykaa", "meesho", "westside", "max", "pantaloons", "fashnear", "savana"}},
	{Label: "Transport", Keywords: []string{"uber", "ola", "rapido", "metro", "petrol", "fuel", "hp", "indian oil"}},
	{Label: "Bills & Utilities", Keywords: []string{"electricity", "airtel", "jio", "vodafone", "broadband", "gas", "water"}},
	{Label: "Entertainment", Keywords: []string{"netflix", "prime", "spotify", "bookmyshow", "pvr", "hotstar", "cinema", "district"}},
	{Label: "Travel", Keywords: []string{"irctc", "makemytrip", "goibibo", "cleartrip", "hotel", "flight", "booking"}},
	{Label: "Health", Keywords: []string{"pharmacy", "apollo", "medplus", "hospital", "clinic", "doctor"}},
}

// Categorizer scans an ordered rule table.
type Categorizer struct {
	rules []Rule
}

// New returns a Categorizer over the built-in table.
func New() *Categorizer {
	return &Categorizer{rules: DefaultRules}
}

// NewWithRules returns a Categorizer over a custom table, preserving
// the given order.
func NewWithRules(rules []Rule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize returns the category for a merchant. A non-empty existing
// category (a bank-supplied hint) always wins over the keyword table.
// When nothing matches the sentinel "Other" is returned, never "".
func (c *Categorizer) Categorize(merchant, existing string) string {
	if existing != "" {
		return existing
	}
	lower := strings.ToLower(merchant)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label
			}
		}
	}
	return models.CategoryOther
}
