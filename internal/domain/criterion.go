package domain

import (
	"fmt"
	"strconv"
)

// CriterionRef addresses one acceptance criterion either by position or by
// its exact text.
type CriterionRef struct {
	index   int
	text    string
	byIndex bool
}

func CriterionByIndex(i int) CriterionRef { return CriterionRef{index: i, byIndex: true} }

func CriterionByText(text string) CriterionRef { return CriterionRef{text: text} }

// ParseCriterionRef treats raw as an index when it is a non-negative decimal
// integer and as criterion text otherwise.
func ParseCriterionRef(raw string) CriterionRef {
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		return CriterionByIndex(n)
	}

	return CriterionByText(raw)
}

// Index returns the position and true for index references.
func (r CriterionRef) Index() (int, bool) { return r.index, r.byIndex }

// Text returns the criterion text for text references.
func (r CriterionRef) Text() string { return r.text }

func (r CriterionRef) String() string {
	if r.byIndex {
		return fmt.Sprintf("#%d", r.index)
	}

	return fmt.Sprintf("%q", r.text)
}

// Resolve returns the position r points at within criteria.
func (r CriterionRef) Resolve(criteria []AcceptanceCriterion) (int, bool) {
	if r.byIndex {
		return r.index, r.index < len(criteria)
	}

	for i, c := range criteria {
		if c.CriteriaText == r.text {
			return i, true
		}
	}

	return -1, false
}
