package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/session"
)

func newMarkCommand(ctx *commandContext) *cobra.Command {
	markCmd := &cobra.Command{
		Use:   "mark",
		Short: "Set or clear entry flags",
	}

	markCmd.AddCommand(newFlagCommand(ctx, "good",
		"Mark recordings as worth keeping",
		(*session.Session).MarkGood, (*session.Session).UnmarkGood))
	markCmd.AddCommand(newFlagCommand(ctx, "drop",
		"Mark recordings for the next drop commit",
		(*session.Session).MarkDropped, (*session.Session).UnmarkDropped))
	markCmd.AddCommand(newFlagCommand(ctx, "mastered",
		"Mark recordings as archived elsewhere",
		(*session.Session).MarkMastered, (*session.Session).UnmarkMastered))

	return markCmd
}

type flagMutation func(*session.Session, context.Context, []catalog.Entry) ([]catalog.Entry, error)

func newFlagCommand(ctx *commandContext, name, short string, apply, undo flagMutation) *cobra.Command {
	var undoFlag bool

	cmd := &cobra.Command{
		Use:   name + " <selection>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				selection, err := resolveSelection(sess, args)
				if err != nil {
					return err
				}
				mutate := apply
				if undoFlag {
					mutate = undo
				}
				changed, err := mutate(sess, runCtx, selection)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				for _, e := range changed {
					fmt.Fprintln(out, summaryLine(e, colorize))
				}
				fmt.Fprintf(out, "%d of %d selected entries changed\n", len(changed), len(selection))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&undoFlag, "undo", false, "Clear the flag instead of setting it")
	return cmd
}

func newCommentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <selection> <text>",
		Short: "Attach a comment to entries (empty text clears it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				selection, err := resolveSelection(sess, args[:1])
				if err != nil {
					return err
				}
				changed, err := sess.SetComment(runCtx, selection, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "commented %d entries\n", len(changed))
				return nil
			})
		},
	}
}
