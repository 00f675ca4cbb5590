package main

import (
	"fmt"
	"sort"
	"strconv"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/ranking"
	"dvrshelf/internal/session"
)

func sortSpecFromFlags(sortFlag, orderFlag string) (ranking.Spec, error) {
	criterion, err := ranking.ParseCriterion(sortFlag)
	if err != nil {
		return ranking.Spec{}, err
	}
	direction, err := ranking.ParseDirection(orderFlag)
	if err != nil {
		return ranking.Spec{}, err
	}
	return ranking.Spec{Criterion: criterion, Direction: direction}, nil
}

// resolveSelection turns command arguments into catalog entries. An argument
// matching an identity exactly selects that single entry; otherwise it is
// treated as a title prefix and selects every match. Arguments that select
// nothing are an error so a typo never silently mutates zero entries.
func resolveSelection(sess *session.Session, args []string) ([]catalog.Entry, error) {
	var selection []catalog.Entry
	seen := make(map[string]struct{})

	add := func(e catalog.Entry) {
		key := string(e.Kind()) + "/" + e.Identity()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		selection = append(selection, e)
	}

	for _, arg := range args {
		if e, ok := sess.Lookup(arg); ok {
			add(e)
			continue
		}
		matches := sess.Find(arg)
		if len(matches) == 0 {
			return nil, fmt.Errorf("no entry matches %q", arg)
		}
		for _, e := range matches {
			add(e)
		}
	}
	return selection, nil
}

func summaryLine(e catalog.Entry, colorize bool) string {
	line := e.Summary()
	if !colorize {
		return line
	}
	rec, ok := e.(*catalog.Recording)
	if !ok {
		return ansiCyan + line + ansiReset
	}
	switch {
	case rec.Dropped:
		return ansiRed + line + ansiReset
	case rec.Good:
		return ansiGreen + line + ansiReset
	default:
		return line
	}
}

// sortRankRows orders table rows by the numeric rank in their first column.
func sortRankRows(rows [][]string) {
	sort.Slice(rows, func(i, j int) bool {
		a, _ := strconv.Atoi(rows[i][0])
		b, _ := strconv.Atoi(rows[j][0])
		return a < b
	})
}

func formatGiB(bytes int64) string {
	return fmt.Sprintf("%.1f GiB", float64(bytes)/(1<<30))
}
