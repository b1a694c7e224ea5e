package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"shotlog/internal/notifications"
	"shotlog/internal/player"
	"shotlog/internal/save"
	"shotlog/internal/timecode"
)

func newSaveCommand(ctx *commandContext) *cobra.Command {
	var description string
	var shotType string
	var atFlag string
	var elapsedFlag float64
	var mpvSocketFlag string

	cmd := &cobra.Command{
		Use:   "save <media>",
		Short: "Save a timestamped annotation for a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve media path: %w", err)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			timeout := time.Duration(cfg.Player.RequestTimeout) * time.Second
			playback, err := resolvePlayback(cmd, cfg.Player.MpvSocket, mpvSocketFlag, atFlag, elapsedFlag, timeout)
			if err != nil {
				return err
			}

			var prompter save.Prompter
			if stdin, ok := cmd.InOrStdin().(interface{ Fd() uintptr }); ok && isatty.IsTerminal(stdin.Fd()) {
				prompter = newTerminalPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			notifier := notifications.WithLogger(notifications.NewService(cfg), logger)

			opts := []save.Option{}
			journal := ctx.openCatalogSoft(logger)
			if journal != nil {
				defer journal.Close()
				opts = append(opts, save.WithJournal(journal))
			}

			workflow := save.New(playback, prompter, notifier, logger, opts...)
			result := workflow.Save(cmd.Context(), save.Request{
				MediaPath:   mediaPath,
				Description: description,
				ShotType:    shotType,
			})

			out := cmd.OutOrStdout()
			switch result.Outcome {
			case save.OutcomePersisted:
				fmt.Fprintf(out, "Saved %s annotation at %s to %s\n",
					result.Record.ShotType, result.Record.Timestamp, result.SidecarPath)
				return nil
			case save.OutcomeCancelled:
				fmt.Fprintln(out, "Save cancelled; sidecar unchanged")
				return nil
			case save.OutcomeValidationFailed:
				return fmt.Errorf("annotation rejected: description is required")
			default:
				return fmt.Errorf("save failed; see the log for details")
			}
		},
	}

	cmd.Flags().StringVarP(&description, "message", "m", "", "Annotation description (required)")
	cmd.Flags().StringVarP(&shotType, "shot-type", "s", "", "Shot type label (defaults to N/A)")
	cmd.Flags().StringVar(&atFlag, "at", "", "Annotate at a fixed HH:MM:SS position instead of querying the player")
	cmd.Flags().Float64Var(&elapsedFlag, "elapsed", 0, "Annotate at a fixed elapsed position in seconds")
	cmd.Flags().StringVar(&mpvSocketFlag, "mpv-socket", "", "mpv IPC socket path (overrides configuration)")
	_ = cmd.MarkFlagRequired("message")
	cmd.MarkFlagsMutuallyExclusive("at", "elapsed", "mpv-socket")

	return cmd
}

// resolvePlayback picks the source of the annotation timestamp: an explicit
// position beats the player socket, and no socket at all leaves the workflow
// on its 00:00:00 fallback.
func resolvePlayback(cmd *cobra.Command, configuredSocket, socketFlag, atFlag string, elapsed float64, timeout time.Duration) (save.PlaybackSource, error) {
	if strings.TrimSpace(atFlag) != "" {
		position, err := timecode.Parse(strings.TrimSpace(atFlag))
		if err != nil {
			return nil, fmt.Errorf("parse --at: %w", err)
		}
		return player.NewFixed(position), nil
	}
	if cmd.Flags().Changed("elapsed") {
		if elapsed < 0 {
			return nil, fmt.Errorf("--elapsed must not be negative")
		}
		return player.NewFixed(timecode.FromSeconds(elapsed)), nil
	}

	socket := strings.TrimSpace(socketFlag)
	if socket == "" {
		socket = strings.TrimSpace(configuredSocket)
	}
	if socket == "" {
		return nil, nil
	}
	return player.NewMpv(socket, timeout), nil
}
