package recommend

import (
	"cmp"
	"slices"
	"strings"
)

// Sort orders results in place. Equal keys fall back to ascending recipe id.
// Unknown orders sort by popularity, highest first.
func Sort(results []Recommendation, order Order) {
	keyCmp := comparator(order)
	slices.SortStableFunc(results, func(a, b Recommendation) int {
		if c := keyCmp(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.Recipe.ID, b.Recipe.ID)
	})
}

func comparator(order Order) func(a, b Recommendation) int {
	switch order {
	case OrderNameAsc:
		return byName
	case OrderNameDesc:
		return reverse(byName)
	case OrderRatingAsc:
		return byRating
	case OrderRatingDesc:
		return reverse(byRating)
	case OrderCountAsc:
		return byCount
	case OrderCountDesc:
		return reverse(byCount)
	case OrderPrepTimeAsc:
		return byPrepTime
	case OrderPrepTimeDesc:
		return reverse(byPrepTime)
	default:
		return reverse(byPopularity)
	}
}

func reverse(f func(a, b Recommendation) int) func(a, b Recommendation) int {
	return func(a, b Recommendation) int { return f(b, a) }
}

func byName(a, b Recommendation) int {
	if c := strings.Compare(strings.ToLower(a.Recipe.Name), strings.ToLower(b.Recipe.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Recipe.Name, b.Recipe.Name)
}

func byRating(a, b Recommendation) int {
	return cmp.Compare(a.Rating, b.Rating)
}

func byCount(a, b Recommendation) int {
	return cmp.Compare(a.RatingsNum, b.RatingsNum)
}

func byPrepTime(a, b Recommendation) int {
	return strings.Compare(a.Recipe.PrepTime, b.Recipe.PrepTime)
}

func byPopularity(a, b Recommendation) int {
	return cmp.Compare(a.Popularity, b.Popularity)
}
