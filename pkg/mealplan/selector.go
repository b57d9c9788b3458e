package mealplan

import (
	"sort"

	"NutriPlan-Backend/domain"
	"NutriPlan-Backend/entities"
)

// exactSearchLimit bounds the brute-force subset search. Pools at or below
// this size are solved exactly (2^n subsets); larger pools fall back to the
// greedy band heuristic.
const exactSearchLimit = 16

// FilterPool returns the candidates eligible for a slot: the item must carry
// the slot tag, share at least one dietary tag with the caller's preferences,
// and share no allergy tag with the exclusion set.
func FilterPool(pool []*entities.Product, slot domain.MealSlot, dietaryPrefs, excludedAllergies []string) []*entities.Product {
	var out []*entities.Product
	for _, p := range pool {
		if !containsTag(p.MealTypeTags(), string(slot)) {
			continue
		}
		if !intersects(p.DietaryTags(), dietaryPrefs) {
			continue
		}
		if intersects(p.AllergyTags(), excludedAllergies) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SelectForSlot picks a subset of the candidate pool whose calorie sum
// approximates target. Small pools are searched exactly for the minimum
// |target - total|; larger pools use a greedy descending-calorie pass that
// accepts items while staying at or below 110% of target and stops once 90%
// is reached. The tolerance band is intentional; exactness is not required.
func SelectForSlot(pool []*entities.Product, target int) []*entities.Product {
	if len(pool) == 0 || target <= 0 {
		return nil
	}
	if len(pool) <= exactSearchLimit {
		return selectExact(pool, target)
	}
	return selectGreedy(pool, target)
}

func selectExact(pool []*entities.Product, target int) []*entities.Product {
	bestDiff := target // the empty subset
	bestMask := 0
	for mask := 1; mask < 1<<len(pool); mask++ {
		total := 0
		for i := 0; i < len(pool); i++ {
			if mask&(1<<i) != 0 {
				total += pool[i].Calories
			}
		}
		diff := total - target
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			bestMask = mask
		}
	}
	if bestMask == 0 {
		return nil
	}
	var out []*entities.Product
	for i := 0; i < len(pool); i++ {
		if bestMask&(1<<i) != 0 {
			out = append(out, pool[i])
		}
	}
	return out
}

func selectGreedy(pool []*entities.Product, target int) []*entities.Product {
	sorted := make([]*entities.Product, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Calories > sorted[j].Calories
	})

	upper := float64(target) * 1.1
	lower := float64(target) * 0.9

	var out []*entities.Product
	running := 0
	for _, p := range sorted {
		if float64(running) >= lower {
			break
		}
		if float64(running+p.Calories) <= upper {
			out = append(out, p)
			running += p.Calories
		}
	}
	return out
}

// SumCalories totals a selection.
func SumCalories(products []*entities.Product) int {
	total := 0
	for _, p := range products {
		total += p.Calories
	}
	return total
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
