package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/session"
)

func newDropCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Remove dropped recordings from the catalog",
		Long: "Remove every recording marked as dropped. Their component file\n" +
			"paths are appended to the drop log for external deletion and the\n" +
			"catalog rows are gone for good. Without --yes this only previews\n" +
			"what would be removed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				var pending int
				var bytes int64
				for _, e := range sess.Entries() {
					rec, ok := e.(*catalog.Recording)
					if !ok || !rec.Dropped {
						continue
					}
					pending++
					bytes += rec.FileSize
					fmt.Fprintln(out, summaryLine(rec, colorize))
				}
				if pending == 0 {
					fmt.Fprintln(out, "nothing marked as dropped")
					return nil
				}

				if !yes {
					fmt.Fprintf(out, "%d recordings (%s) would be removed; rerun with --yes to commit\n",
						pending, formatGiB(bytes))
					return nil
				}

				removed, err := sess.CommitDrops(runCtx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "removed %d recordings (%s); component paths appended to %s\n",
					removed, formatGiB(bytes), sess.DropLogPath())
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Commit the removal instead of previewing it")
	return cmd
}
