package ranking

import (
	"fmt"
	"sort"
	"strings"

	"dvrshelf/internal/catalog"
)

// sortKey is the primary comparison value for one entry under a Spec.
type sortKey struct {
	text   string
	num    float64
	isText bool
}

func (k sortKey) compare(other sortKey) int {
	if k.isText {
		return strings.Compare(k.text, other.text)
	}
	switch {
	case k.num < other.num:
		return -1
	case k.num > other.num:
		return 1
	default:
		return 0
	}
}

func fromValue(v catalog.Value) sortKey {
	return sortKey{text: v.Text, num: float64(v.Num), isText: v.IsText}
}

// groupStats accumulates the per-group aggregates in a single pass.
type groupStats struct {
	count   int64
	sumSize int64
	maxSize int64

	anyGood     bool
	anyDropped  bool
	anyMastered bool
}

// collectGroups computes aggregates over every grouping-key group. Boolean
// flags aggregate over recordings only; a group holding nothing but downloads
// reports all three as unset.
func collectGroups(entries []catalog.Entry) map[string]*groupStats {
	groups := make(map[string]*groupStats)
	for _, e := range entries {
		stats := groups[e.GroupKey()]
		if stats == nil {
			stats = &groupStats{}
			groups[e.GroupKey()] = stats
		}
		size := e.SortValue(catalog.FieldSize).Num
		stats.count++
		stats.sumSize += size
		if size > stats.maxSize {
			stats.maxSize = size
		}
		if e.Kind() == catalog.KindRecording {
			stats.anyGood = stats.anyGood || flagSet(e, catalog.FieldGood)
			stats.anyDropped = stats.anyDropped || flagSet(e, catalog.FieldDropped)
			stats.anyMastered = stats.anyMastered || flagSet(e, catalog.FieldMastered)
		}
	}
	return groups
}

func flagSet(e catalog.Entry, field catalog.Field) bool {
	return e.SortValue(field).Num == 0
}

// flagKey orders groups with the flag set ahead of groups without it, the
// same way per-entry flag ordering works.
func flagKey(set bool) sortKey {
	if set {
		return sortKey{num: 0}
	}
	return sortKey{num: 1}
}

// Sort orders entries in place according to spec. The primary criterion
// honors the requested direction; ties always fall back to grouping key then
// timestamp, both ascending, so the result is a stable total order.
func Sort(entries []catalog.Entry, spec Spec) error {
	criterion, err := ParseCriterion(string(spec.Criterion))
	if err != nil {
		return err
	}

	keyOf, err := keyFunc(criterion, entries)
	if err != nil {
		return err
	}

	type ranked struct {
		entry catalog.Entry
		key   sortKey
	}
	items := make([]ranked, len(entries))
	for i, e := range entries {
		items[i] = ranked{entry: e, key: keyOf(e)}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		cmp := a.key.compare(b.key)
		if spec.Direction == Descending {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		if cmp := strings.Compare(a.entry.GroupKey(), b.entry.GroupKey()); cmp != 0 {
			return cmp < 0
		}
		return a.entry.SortValue(catalog.FieldDate).Text < b.entry.SortValue(catalog.FieldDate).Text
	})

	for i := range items {
		entries[i] = items[i].entry
	}
	return nil
}

// keyFunc builds the primary key extractor for a criterion, precomputing
// group aggregates when needed.
func keyFunc(criterion Criterion, entries []catalog.Entry) (func(catalog.Entry) sortKey, error) {
	if field, ok := attributeFields[criterion]; ok {
		return func(e catalog.Entry) sortKey {
			return fromValue(e.SortValue(field))
		}, nil
	}

	groups := collectGroups(entries)
	switch criterion {
	case ByCount:
		return func(e catalog.Entry) sortKey {
			return sortKey{num: float64(groups[e.GroupKey()].count)}
		}, nil
	case BySumSize:
		return func(e catalog.Entry) sortKey {
			return sortKey{num: float64(groups[e.GroupKey()].sumSize)}
		}, nil
	case ByMaxSize:
		return func(e catalog.Entry) sortKey {
			return sortKey{num: float64(groups[e.GroupKey()].maxSize)}
		}, nil
	case ByAvgSize:
		return func(e catalog.Entry) sortKey {
			stats := groups[e.GroupKey()]
			return sortKey{num: float64(stats.sumSize) / float64(stats.count)}
		}, nil
	case ByAnyGood:
		return func(e catalog.Entry) sortKey {
			return flagKey(groups[e.GroupKey()].anyGood)
		}, nil
	case ByAnyDropped:
		return func(e catalog.Entry) sortKey {
			return flagKey(groups[e.GroupKey()].anyDropped)
		}, nil
	case ByAnyMastered:
		return func(e catalog.Entry) sortKey {
			return flagKey(groups[e.GroupKey()].anyMastered)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, criterion)
	}
}
