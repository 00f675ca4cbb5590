package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dvrshelf/internal/ranking"
	"dvrshelf/internal/session"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sortFlag string
	var orderFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog under a sort order",
		Long: "List every catalog entry as a fixed-width summary line.\n\n" +
			"Recognized sort criteria: " + criteriaHelp(),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := sortSpecFromFlags(sortFlag, orderFlag)
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				if err := sess.Sort(spec); err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for i, e := range sess.Entries() {
					fmt.Fprintf(out, "%4d  %s\n", i+1, summaryLine(e, colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&sortFlag, "sort", "s", string(ranking.ByTitle), "Sort criterion")
	cmd.Flags().StringVarP(&orderFlag, "order", "o", "asc", "Sort direction (asc or desc)")
	return cmd
}

func criteriaHelp() string {
	names := make([]string, 0, len(ranking.Criteria()))
	for _, c := range ranking.Criteria() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
