package ranking

import (
	"errors"
	"fmt"
	"strings"

	"dvrshelf/internal/catalog"
)

// ErrUnknownCriterion rejects sort criteria outside the allow-list before
// they reach the store's query layer.
var ErrUnknownCriterion = errors.New("unknown sort criterion")

// Mode distinguishes per-entry from per-group ordering.
type Mode int

const (
	// Attribute orders rows directly by a per-entry field.
	Attribute Mode = iota
	// Aggregate orders rows by a statistic over their grouping-key group.
	Aggregate
)

// Direction selects ascending or descending primary comparison. The fixed
// secondary tie-break is not reversed.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// ParseDirection accepts "asc" or "desc".
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "asc", "":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("unknown sort direction %q", value)
	}
}

// Criterion is a recognized sort criterion.
type Criterion string

const (
	ByTitle      Criterion = "title"
	ByChannel    Criterion = "channel"
	ByDate       Criterion = "date"
	ByTime       Criterion = "time"
	BySize       Criterion = "size"
	ByDuration   Criterion = "duration"
	ByResolution Criterion = "resolution"
	ByGood       Criterion = "good"
	ByDropped    Criterion = "dropped"
	ByMastered   Criterion = "mastered"

	ByCount       Criterion = "count"
	BySumSize     Criterion = "sum_size"
	ByMaxSize     Criterion = "max_size"
	ByAvgSize     Criterion = "avg_size"
	ByAnyGood     Criterion = "any_good"
	ByAnyDropped  Criterion = "any_dropped"
	ByAnyMastered Criterion = "any_mastered"
)

// attributeFields maps attribute criteria to the entry field they compare.
var attributeFields = map[Criterion]catalog.Field{
	ByTitle:      catalog.FieldTitle,
	ByChannel:    catalog.FieldChannel,
	ByDate:       catalog.FieldDate,
	ByTime:       catalog.FieldTime,
	BySize:       catalog.FieldSize,
	ByDuration:   catalog.FieldDuration,
	ByResolution: catalog.FieldResolution,
	ByGood:       catalog.FieldGood,
	ByDropped:    catalog.FieldDropped,
	ByMastered:   catalog.FieldMastered,
}

var aggregateCriteria = map[Criterion]struct{}{
	ByCount:       {},
	BySumSize:     {},
	ByMaxSize:     {},
	ByAvgSize:     {},
	ByAnyGood:     {},
	ByAnyDropped:  {},
	ByAnyMastered: {},
}

// Criteria returns every recognized criterion, attribute criteria first.
func Criteria() []Criterion {
	return []Criterion{
		ByTitle, ByChannel, ByDate, ByTime, BySize, ByDuration, ByResolution,
		ByGood, ByDropped, ByMastered,
		ByCount, BySumSize, ByMaxSize, ByAvgSize, ByAnyGood, ByAnyDropped, ByAnyMastered,
	}
}

// ParseCriterion validates value against the allow-list.
func ParseCriterion(value string) (Criterion, error) {
	c := Criterion(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := attributeFields[c]; ok {
		return c, nil
	}
	if _, ok := aggregateCriteria[c]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, value)
}

// Mode reports whether the criterion compares entries or groups.
func (c Criterion) Mode() Mode {
	if _, ok := aggregateCriteria[c]; ok {
		return Aggregate
	}
	return Attribute
}

// Spec is a complete sort specification.
type Spec struct {
	Criterion Criterion
	Direction Direction
}

// DefaultSpec is the order applied when a session opens.
var DefaultSpec = Spec{Criterion: ByTitle, Direction: Ascending}
