package comparisons

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

// Sampling is random, so tests assert structural properties rather than
// exact labels.

func TestListStructure(t *testing.T) {
	t.Run("returns at most count entries", func(t *testing.T) {
		for range 50 {
			got := List(1000, 3)
			if len(got) > 3 {
				t.Fatalf("List returned %d entries, want <= 3", len(got))
			}
		}
	})

	t.Run("no duplicate entries", func(t *testing.T) {
		for range 50 {
			got := List(5000, len(table))
			seen := make(map[string]bool)
			for _, s := range got {
				if seen[s] {
					t.Fatalf("duplicate entry %q in %v", s, got)
				}
				seen[s] = true
			}
		}
	})

	t.Run("large cost fills the table", func(t *testing.T) {
		// $100k buys at least one of everything.
		got := List(100000, len(table))
		if len(got) != len(table) {
			t.Errorf("List covered %d entries, want %d", len(got), len(table))
		}
	})

	t.Run("quantities are floor(cost/unitCost)", func(t *testing.T) {
		cost := 1000.0
		valid := make(map[string]bool, len(table))
		for _, e := range table {
			valid[fmt.Sprintf("%d %s", int(cost/e.unitCost), e.item)] = true
		}
		for _, s := range List(cost, 3) {
			if !valid[s] {
				t.Errorf("unexpected comparison %q", s)
			}
		}
	})

	t.Run("skips entries the cost cannot afford", func(t *testing.T) {
		// $10 only buys a latte; everything else floors to zero.
		for range 50 {
			for _, s := range List(10, len(table)) {
				qty, _, found := strings.Cut(s, " ")
				if !found {
					t.Fatalf("malformed comparison %q", s)
				}
				if n, err := strconv.Atoi(qty); err != nil || n <= 0 {
					t.Errorf("comparison %q has non-positive quantity", s)
				}
			}
		}
	})

	t.Run("zero and negative costs yield nothing", func(t *testing.T) {
		if got := List(0, 3); len(got) != 0 {
			t.Errorf("List(0) = %v, want empty", got)
		}
		if got := List(-50, 3); len(got) != 0 {
			t.Errorf("List(-50) = %v, want empty", got)
		}
	})
}

func TestComparison(t *testing.T) {
	if got := Comparison(0); got != "0 items" {
		t.Errorf("Comparison(0) = %q, want placeholder", got)
	}
	got := Comparison(500)
	qty, rest, found := strings.Cut(got, " ")
	if !found || rest == "" {
		t.Fatalf("malformed comparison %q", got)
	}
	if _, err := strconv.Atoi(qty); err != nil {
		t.Errorf("comparison %q does not start with a quantity", got)
	}
}
