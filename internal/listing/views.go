package listing

import (
	"slices"
	"strings"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

// Sort returns a stably sorted copy of records. Unknown or empty criteria yield an unchanged copy.
func Sort(records []deals.Deal, criterion Criterion) []deals.Deal {
	out := clone(records)

	var cmp func(a, b deals.Deal) int
	switch criterion {
	case CriterionDiscountDesc:
		cmp = func(a, b deals.Deal) int { return compareFloat(b.Savings(), a.Savings()) }
	case CriterionDiscountAsc:
		cmp = func(a, b deals.Deal) int { return compareFloat(a.Savings(), b.Savings()) }
	case CriterionPriceDesc:
		cmp = func(a, b deals.Deal) int { return b.EffectivePrice().Cmp(a.EffectivePrice()) }
	case CriterionPriceAsc:
		cmp = func(a, b deals.Deal) int { return a.EffectivePrice().Cmp(b.EffectivePrice()) }
	default:
		return out
	}

	slices.SortStableFunc(out, cmp)
	return out
}

// FilterByStore returns the records listed by the given store. An empty store ID is the identity view.
func FilterByStore(records []deals.Deal, storeID string) []deals.Deal {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return clone(records)
	}
	out := make([]deals.Deal, 0, len(records))
	for _, d := range records {
		if d.StoreID == storeID {
			out = append(out, d)
		}
	}
	return out
}

// SearchByTitle returns the records whose title contains query, ignoring case.
// A blank query is the identity view.
func SearchByTitle(records []deals.Deal, query string) []deals.Deal {
	if strings.TrimSpace(query) == "" {
		return clone(records)
	}
	needle := strings.ToLower(query)
	out := make([]deals.Deal, 0, len(records))
	for _, d := range records {
		if strings.Contains(strings.ToLower(d.Title), needle) {
			out = append(out, d)
		}
	}
	return out
}

// Apply composes the store filter, the title search and the sort, in that order.
func Apply(records []deals.Deal, c Criteria) []deals.Deal {
	return Sort(SearchByTitle(FilterByStore(records, c.StoreID), c.Query), c.Sort)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func clone(records []deals.Deal) []deals.Deal {
	out := make([]deals.Deal, len(records))
	copy(out, records)
	return out
}
