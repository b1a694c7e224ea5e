package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shotlog/internal/annotation"
	"shotlog/internal/config"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <media>",
		Short: "Show the annotations recorded for a media file",
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

			sidecarPath := annotation.SidecarPath(mediaPath)
			store, err := annotation.Load(sidecarPath)
			if err != nil {
				return fmt.Errorf("load sidecar: %w", err)
			}

			out := cmd.OutOrStdout()
			if store.Len() == 0 {
				fmt.Fprintf(out, "No annotations for %s\n", filepath.Base(mediaPath))
				return nil
			}

			rows := make([][]string, 0, store.Len())
			for _, rec := range store.Records() {
				rows = append(rows, []string{
					rec.Timestamp.String(),
					displayShotType(cfg, rec.ShotType),
					rec.Description,
				})
			}

			fmt.Fprintln(out, renderTable([]tableColumn{
				{title: "Timestamp", alignRight: true},
				{title: "Shot"},
				{title: "Description"},
			}, rows))
			if skipped := store.Skipped(); skipped > 0 {
				fmt.Fprintf(out, "Skipped %d unparseable line(s) in %s\n", skipped, sidecarPath)
			}
			return nil
		},
	}
}

// displayShotType keeps the configured abbreviations (WS, CU, ...) in their
// canonical uppercase form and title-cases anything free-form.
func displayShotType(cfg *config.Config, shotType string) string {
	trimmed := strings.TrimSpace(shotType)
	if trimmed == "" || trimmed == annotation.DefaultShotType {
		return annotation.DefaultShotType
	}
	if cfg != nil {
		for _, known := range cfg.Annotations.ShotTypes {
			if strings.EqualFold(known, trimmed) {
				return strings.ToUpper(known)
			}
		}
	}
	return cases.Title(language.English).String(strings.ToLower(trimmed))
}
