package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dvrshelf/internal/session"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Reconcile the catalog against the scan roots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				counts := sess.Counts()
				rows := [][]string{
					{"Recording files", strconv.Itoa(counts.RecordingFiles)},
					{"Cache hits", strconv.Itoa(counts.RecordingHits)},
					{"New recordings", strconv.Itoa(counts.RecordingNew)},
					{"Skipped (no meta)", strconv.Itoa(counts.RecordingsSkipped)},
					{"Mastered survivors", strconv.Itoa(counts.MasteredSurvivors)},
					{"Download files", strconv.Itoa(counts.DownloadFiles)},
					{"Cached downloads", strconv.Itoa(counts.DownloadHits)},
					{"New downloads", strconv.Itoa(counts.DownloadNew)},
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable([]string{"Scan", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
				fmt.Fprintf(out, "%d entries in catalog\n", len(sess.Entries()))
				return nil
			})
		},
	}
}
