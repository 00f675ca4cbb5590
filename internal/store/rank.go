package store

import (
	"context"
	"fmt"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/ranking"
)

// unifiedRows merges both row sets into one shape for ranking. Downloads
// carry their neutral flag defaults and an empty timestamp so the two
// variants order as one set.
const unifiedRows = `SELECT 'recording' AS kind, file_basename, groupkey, timestamp, file_size,
        epg_channel AS channel, video_duration, video_height,
        is_good, is_dropped, is_mastered
    FROM recordings
    UNION ALL
    SELECT 'download', file_basename, groupkey, '', file_size,
        dl_source, video_duration, video_height,
        1, 0, 0
    FROM downloads`

// attributeExprs maps each allow-listed attribute criterion to its
// pre-validated order expression. Flag expressions order flagged rows first
// under ASC, matching the in-memory ranking engine.
var attributeExprs = map[ranking.Criterion]string{
	ranking.ByTitle:      "groupkey",
	ranking.ByChannel:    "channel",
	ranking.ByDate:       "timestamp",
	ranking.ByTime:       "substr(timestamp, 12)",
	ranking.BySize:       "file_size",
	ranking.ByDuration:   "video_duration",
	ranking.ByResolution: "video_height",
	ranking.ByGood:       "CASE WHEN is_good = 1 THEN 0 ELSE 1 END",
	ranking.ByDropped:    "CASE WHEN is_dropped = 1 THEN 0 ELSE 1 END",
	ranking.ByMastered:   "CASE WHEN is_mastered = 1 THEN 0 ELSE 1 END",
}

// aggregateExprs maps each allow-listed aggregate criterion to its grouped
// order expression. The any_* flags aggregate over recordings only.
var aggregateExprs = map[ranking.Criterion]string{
	ranking.ByCount:       "COUNT(*)",
	ranking.BySumSize:     "SUM(file_size)",
	ranking.ByMaxSize:     "MAX(file_size)",
	ranking.ByAvgSize:     "AVG(file_size)",
	ranking.ByAnyGood:     anyFlagExpr("is_good"),
	ranking.ByAnyDropped:  anyFlagExpr("is_dropped"),
	ranking.ByAnyMastered: anyFlagExpr("is_mastered"),
}

func anyFlagExpr(column string) string {
	return fmt.Sprintf("CASE WHEN MAX(CASE WHEN kind = 'recording' THEN %s ELSE 0 END) = 1 THEN 0 ELSE 1 END", column)
}

// RankKey qualifies an identity with its variant namespace for attribute-mode
// rank lookups.
func RankKey(kind catalog.Kind, basename string) string {
	return string(kind) + "/" + basename
}

// Rank computes a dense 1-based ranking over persisted rows. Attribute
// criteria rank individual rows keyed by RankKey; aggregate criteria rank
// grouping-key groups keyed by the group key itself. Ties are broken by
// group key then timestamp, both ascending, regardless of direction; the
// criterion must come from the recognized allow-list.
func (s *Store) Rank(ctx context.Context, spec ranking.Spec) (map[string]int, error) {
	criterion, err := ranking.ParseCriterion(string(spec.Criterion))
	if err != nil {
		return nil, err
	}

	direction := "ASC"
	if spec.Direction == ranking.Descending {
		direction = "DESC"
	}

	if criterion.Mode() == ranking.Attribute {
		expr := attributeExprs[criterion]
		query := `SELECT kind, file_basename FROM (` + unifiedRows + `)
            ORDER BY ` + expr + ` ` + direction + `, groupkey ASC, timestamp ASC`
		rows, err := s.db.QueryContext(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("rank by %s: %w", criterion, err)
		}
		defer rows.Close()

		ranks := make(map[string]int)
		for rows.Next() {
			var kind, basename string
			if err := rows.Scan(&kind, &basename); err != nil {
				return nil, err
			}
			ranks[RankKey(catalog.Kind(kind), basename)] = len(ranks) + 1
		}
		return ranks, rows.Err()
	}

	expr := aggregateExprs[criterion]
	query := `SELECT groupkey FROM (` + unifiedRows + `)
        GROUP BY groupkey
        ORDER BY ` + expr + ` ` + direction + `, groupkey ASC, MIN(timestamp) ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("rank by %s: %w", criterion, err)
	}
	defer rows.Close()

	ranks := make(map[string]int)
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, err
		}
		ranks[group] = len(ranks) + 1
	}
	return ranks, rows.Err()
}
