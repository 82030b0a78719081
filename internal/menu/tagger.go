// Package menu classifies raw item names into coarse types and descriptive
// tags using substring keyword rules derived from the historical catalog.
package menu

import "strings"

// Coarse menu categories.
const (
	TypeMain  = "main"
	TypeDip   = "dip"
	TypeSide  = "side"
	TypeDrink = "drink"
	TypeOther = "other"
)

// Descriptive tags, independent of the coarse type.
const (
	TagVeg       = "veg"
	TagNonVeg    = "non-veg"
	TagSpicy     = "spicy"
	TagCombo     = "combo"
	TagDessert   = "dessert"
	TagColdDrink = "cold_drink"
	TagNonFood   = "non-food"
)

// TagSet is a set of descriptive tags keyed by tag name.
type TagSet map[string]bool

func (t TagSet) Has(tag string) bool { return t[tag] }

// typeRules are checked in order, first match wins.
var typeRules = []struct {
	keywords []string
	itemType string
}{
	{[]string{"combo", "feast", "meal", "wings", "strips", "flavor platter", "sub", "box", "lunch", "crispy"}, TypeMain},
	{[]string{"dip", "sauce"}, TypeDip},
	{[]string{"fries", "corn", "sticks", "cake"}, TypeSide},
	{[]string{"soda", "tea", "lemonade", "drink", "lager", "punch", "root beer", "water"}, TypeDrink},
}

var (
	nonFoodKeywords = []string{"plastic", "fork", "knife", "spoon", "napkin", "packaging", "fee", "delivery"}
	vegKeywords     = []string{"veggie", "veg", "corn", "celery", "sticks", "salad", "carrot"}
	comboKeywords   = []string{"combo", "feast", "bundle", "lunch", "box", "platter"}
	dessertKeywords = []string{"cake", "dessert"}
	coldKeywords    = []string{"soda", "fruit punch", "root beer", "drink", "lemonade", "tea"}
)

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ItemType returns the coarse category for an item name.
func ItemType(name string) string {
	n := strings.ToLower(name)
	for _, rule := range typeRules {
		if containsAny(n, rule.keywords) {
			return rule.itemType
		}
	}
	return TypeOther
}

// Tags returns the descriptive tag set for an item name. Non-food items
// (packaging, fees) short-circuit: they carry only the non-food tag.
// Every food item is exactly one of veg / non-veg; the rest accumulate.
func Tags(name string) TagSet {
	n := strings.ToLower(name)
	tags := TagSet{}
	if containsAny(n, nonFoodKeywords) {
		tags[TagNonFood] = true
		return tags
	}
	if containsAny(n, vegKeywords) {
		tags[TagVeg] = true
	} else {
		tags[TagNonVeg] = true
	}
	if strings.Contains(n, "spicy") {
		tags[TagSpicy] = true
	}
	if containsAny(n, comboKeywords) {
		tags[TagCombo] = true
	}
	if containsAny(n, dessertKeywords) {
		tags[TagDessert] = true
	}
	if containsAny(n, coldKeywords) {
		tags[TagColdDrink] = true
	}
	return tags
}
