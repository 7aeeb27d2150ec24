package services

import "strings"

// PizzaClass is the closed set of variant-rule classes. An item's class is
// resolved once from its normalized name; everything that is not a known
// stuffed-pizza alias uses the standard rules.
type PizzaClass int

const (
	PizzaStandard PizzaClass = iota
	PizzaStuffed
)

// Crust options offered by the configuration UI.
const (
	CrustThin        = "thin"
	CrustDoubleDough = "double_dough"
	CrustGlutenFree  = "gluten_free"
	CrustStuffed     = "stuffed"
)

// stuffedAliases are the menu names that sell as stuffed pizza.
var stuffedAliases = map[string]struct{}{
	"stuffed pizza": {},
	"the chub":      {},
}

// stuffedSizes are the only sizes a stuffed pizza can be made in.
var stuffedSizes = map[string]struct{}{
	"small":  {},
	"medium": {},
	"large":  {},
}

// ClassifyPizza resolves the variant-rule class for a menu item name.
// Matching is case-insensitive; unknown names fall through to standard.
func ClassifyPizza(name string) PizzaClass {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if _, ok := stuffedAliases[normalized]; ok {
		return PizzaStuffed
	}
	return PizzaStandard
}

// IsStuffedVariant reports whether the item uses stuffed-pizza rules.
func IsStuffedVariant(name string) bool {
	return ClassifyPizza(name) == PizzaStuffed
}

// LegalSizes filters the catalog's size list down to what the item may be
// ordered in, preserving the catalog's ordering. Standard items take the
// list unchanged.
func LegalSizes(name string, all []string) []string {
	if ClassifyPizza(name) != PizzaStuffed {
		return all
	}
	sizes := make([]string, 0, len(all))
	for _, s := range all {
		if _, ok := stuffedSizes[strings.ToLower(s)]; ok {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// LegalCrusts returns the crusts the item may be ordered with.
func LegalCrusts(name string) []string {
	if ClassifyPizza(name) == PizzaStuffed {
		return []string{CrustStuffed}
	}
	return []string{CrustThin, CrustDoubleDough, CrustGlutenFree}
}
