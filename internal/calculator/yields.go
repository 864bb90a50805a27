package calculator

import "strings"

// categoryOrder is the match priority used when a unit names more than one
// category. The first match wins.
var categoryOrder = []Category{
	CategoryEggs,
	CategoryMilk,
	CategoryMeat,
	CategoryWool,
	CategoryFiber,
}

// Categorize maps a free-text yield unit such as "lbs meat/year" to its category.
func Categorize(unit string) (Category, bool) {
	for _, c := range categoryOrder {
		if strings.Contains(unit, string(c)) {
			return c, true
		}
	}
	return "", false
}

func newYieldTotals() map[Category]float64 {
	totals := make(map[Category]float64, len(categoryOrder))
	for _, c := range categoryOrder {
		totals[c] = 0
	}
	return totals
}
