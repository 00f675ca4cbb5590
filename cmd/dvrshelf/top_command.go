package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dvrshelf/internal/ranking"
	"dvrshelf/internal/session"
	"dvrshelf/internal/store"
)

func newTopCommand(ctx *commandContext) *cobra.Command {
	var sortFlag string
	var orderFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the highest-ranked entries or groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := sortSpecFromFlags(sortFlag, orderFlag)
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				ranks, err := sess.Store().Rank(runCtx, spec)
				if err != nil {
					return err
				}

				if spec.Criterion.Mode() == ranking.Aggregate {
					return renderGroupRanks(cmd, sess, ranks, limit)
				}
				return renderEntryRanks(cmd, sess, ranks, limit)
			})
		},
	}

	cmd.Flags().StringVarP(&sortFlag, "sort", "s", string(ranking.BySize), "Sort criterion")
	cmd.Flags().StringVarP(&orderFlag, "order", "o", "desc", "Sort direction (asc or desc)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of rows to show")
	return cmd
}

func renderEntryRanks(cmd *cobra.Command, sess *session.Session, ranks map[string]int, limit int) error {
	rows := make([][]string, 0, len(ranks))
	for _, e := range sess.Entries() {
		rank, ok := ranks[store.RankKey(e.Kind(), e.Identity())]
		if !ok {
			continue
		}
		rows = append(rows, []string{strconv.Itoa(rank), string(e.Kind()), e.Identity()})
	}
	sortRankRows(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Rank", "Kind", "Identity"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft}))
	return nil
}

func renderGroupRanks(cmd *cobra.Command, sess *session.Session, ranks map[string]int, limit int) error {
	members := make(map[string]int)
	for _, e := range sess.Entries() {
		members[e.GroupKey()]++
	}

	rows := make([][]string, 0, len(ranks))
	for group, rank := range ranks {
		rows = append(rows, []string{strconv.Itoa(rank), group, strconv.Itoa(members[group])})
	}
	sortRankRows(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Rank", "Group", "Entries"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignRight}))
	return nil
}
