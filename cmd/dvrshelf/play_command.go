package main

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/session"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <selection>",
		Short: "Open an entry in the configured player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(runCtx context.Context, sess *session.Session) error {
				entry, err := resolveOne(sess, args[0])
				if err != nil {
					return err
				}
				path, err := playablePath(entry, cfg.Files.VideoExtension)
				if err != nil {
					return err
				}

				words := strings.Fields(cfg.Player.Command)
				if len(words) == 0 {
					return fmt.Errorf("no player command configured")
				}
				player := exec.CommandContext(runCtx, words[0], append(words[1:], path)...)
				player.Stdout = cmd.OutOrStdout()
				player.Stderr = cmd.ErrOrStderr()
				if err := player.Run(); err != nil {
					return fmt.Errorf("run player: %w", err)
				}
				return nil
			})
		},
	}
}

func playablePath(entry catalog.Entry, videoExt string) (string, error) {
	switch e := entry.(type) {
	case *catalog.Recording:
		if e.BasePath == "" {
			return "", fmt.Errorf("recording %s has no file on disk", e.FileBasename)
		}
		return e.BasePath + videoExt, nil
	case *catalog.Download:
		return e.BasePath + e.FileExtension, nil
	default:
		return "", fmt.Errorf("entry %s is not playable", entry.Identity())
	}
}
