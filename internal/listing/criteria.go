package listing

import (
	"fmt"
	"strings"
)

// Criterion names a sort order for the derived view.
type Criterion string

const (
	CriterionNone         Criterion = ""
	CriterionDiscountDesc Criterion = "discount-desc"
	CriterionDiscountAsc  Criterion = "discount-asc"
	CriterionPriceDesc    Criterion = "price-desc"
	CriterionPriceAsc     Criterion = "price-asc"
)

// Criteria is the set of active derived-view selections. The zero value is the identity view.
type Criteria struct {
	Sort    Criterion
	StoreID string
	Query   string
}

// IsIdentity reports whether the criteria leave the current page untouched.
func (c Criteria) IsIdentity() bool {
	return c.Sort == CriterionNone && strings.TrimSpace(c.StoreID) == "" && strings.TrimSpace(c.Query) == ""
}

// SortOptions returns every supported sort criterion in display order.
func SortOptions() []Criterion {
	return []Criterion{CriterionDiscountDesc, CriterionDiscountAsc, CriterionPriceDesc, CriterionPriceAsc}
}

// ParseCriterion validates a raw sort value. Empty input is the identity criterion.
func ParseCriterion(raw string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CriterionNone, CriterionDiscountDesc, CriterionDiscountAsc, CriterionPriceDesc, CriterionPriceAsc:
		return c, nil
	default:
		return CriterionNone, fmt.Errorf("unknown sort criterion %q", raw)
	}
}
