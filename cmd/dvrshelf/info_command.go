package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/session"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var eit bool

	cmd := &cobra.Command{
		Use:   "info <selection>",
		Short: "Show full details for one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				entry, err := resolveOne(sess, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, summaryLine(entry, shouldColorize(out)))

				switch e := entry.(type) {
				case *catalog.Recording:
					printRecordingDetails(cmd, e)
					if eit {
						text, err := sess.EITText(e)
						if err != nil {
							return err
						}
						fmt.Fprintln(out)
						fmt.Fprintln(out, text)
					}
				case *catalog.Download:
					printDownloadDetails(cmd, e)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&eit, "eit", false, "Dump the DVB event information sidecar")
	return cmd
}

func resolveOne(sess *session.Session, arg string) (catalog.Entry, error) {
	selection, err := resolveSelection(sess, []string{arg})
	if err != nil {
		return nil, err
	}
	if len(selection) > 1 {
		return nil, fmt.Errorf("%q matches %d entries; narrow the selection", arg, len(selection))
	}
	return selection[0], nil
}

func printRecordingDetails(cmd *cobra.Command, rec *catalog.Recording) {
	rows := [][]string{
		{"Identity", rec.FileBasename},
		{"Group", rec.Group},
		{"Channel", rec.EPGChannel},
		{"Description", rec.EPGDescription},
		{"Recorded", rec.Timestamp},
		{"Size", formatGiB(rec.FileSize)},
		{"Video", fmt.Sprintf("%dx%d @ %d fps, %d s", rec.Video.Width, rec.Video.Height, rec.Video.FPS, rec.Video.Duration)},
		{"Flags", flagSummary(rec)},
		{"Comment", rec.Comment},
	}
	if rec.BasePath != "" {
		rows = append(rows, []string{"Path", rec.BasePath})
	} else {
		rows = append(rows, []string{"Path", "(mastered, file removed)"})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
}

func printDownloadDetails(cmd *cobra.Command, dl *catalog.Download) {
	rows := [][]string{
		{"Identity", dl.FileBasename},
		{"Group", dl.Group},
		{"Source", dl.Source},
		{"Description", dl.Description},
		{"Size", formatGiB(dl.FileSize)},
		{"Video", fmt.Sprintf("%dx%d @ %d fps, %d s", dl.Video.Width, dl.Video.Height, dl.Video.FPS, dl.Video.Duration)},
		{"Comment", dl.Comment},
		{"Path", dl.BasePath + dl.FileExtension},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
}

func flagSummary(rec *catalog.Recording) string {
	return fmt.Sprintf("good=%s dropped=%s mastered=%s",
		yesNo(rec.Good), yesNo(rec.Dropped), yesNo(rec.Mastered))
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
