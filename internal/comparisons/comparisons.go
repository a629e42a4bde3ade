// Package comparisons turns a cost into human-relatable spend equivalents.
package comparisons

import (
	"fmt"
	"math/rand/v2"
)

// entry pairs a relatable item with its unit cost in dollars.
type entry struct {
	item     string
	unitCost float64
}

// The table is fixed; keep unit costs roughly current.
var table = []entry{
	{"Chipotle burritos", 12},
	{"Starbucks lattes", 5.5},
	{"movie tickets", 15},
	{"months of Netflix", 15.49},
	{"tanks of gas", 50},
	{"gym memberships", 40},
	{"phone bills", 80},
	{"weeks of groceries", 150},
}

// Comparison draws a single random equivalent for the cost, e.g.
// "19 Chipotle burritos". Zero or negative costs yield "0 items".
func Comparison(cost float64) string {
	if cost <= 0 {
		return "0 items"
	}
	e := table[rand.IntN(len(table))]
	return fmt.Sprintf("%d %s", int(cost/e.unitCost), e.item)
}

// List samples up to count distinct table entries at random (linear probe
// on collision) and formats the whole-unit quantity for each, skipping
// entries the cost cannot buy at least one of. Zero or negative costs
// yield an empty list. Results are non-deterministic by design.
func List(cost float64, count int) []string {
	if cost <= 0 {
		return nil
	}

	results := make([]string, 0, count)
	used := make(map[int]bool, len(table))
	for len(results) < count && len(used) < len(table) {
		idx := rand.IntN(len(table))
		for used[idx] {
			idx = (idx + 1) % len(table)
		}
		used[idx] = true

		quantity := int(cost / table[idx].unitCost)
		if quantity > 0 {
			results = append(results, fmt.Sprintf("%d %s", quantity, table[idx].item))
		}
	}
	return results
}
