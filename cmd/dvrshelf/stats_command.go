package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dvrshelf/internal/session"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize catalog flags and reclaimable space",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				stats := sess.Stats()
				rows := [][]string{
					{"Total entries", strconv.Itoa(stats.Total)},
					{"Good", strconv.Itoa(stats.Good)},
					{"Mastered", strconv.Itoa(stats.Mastered)},
					{"Dropped", strconv.Itoa(stats.Dropped)},
					{"Reclaimable", formatGiB(stats.DroppedBytes)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Catalog", "Value"}, rows,
					[]columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}
