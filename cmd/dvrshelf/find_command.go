package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dvrshelf/internal/session"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "find <title-prefix>",
		Short: "Find entries by normalized title prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				matches := sess.Find(args[0])
				if len(matches) == 0 {
					return fmt.Errorf("no entry matches %q", args[0])
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, e := range matches {
					fmt.Fprintln(out, summaryLine(e, colorize))
				}
				return nil
			})
		},
	}
}
