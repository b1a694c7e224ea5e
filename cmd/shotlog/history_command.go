package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shotlog/internal/catalog"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var mediaFlag string
	var summary bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent saves from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCatalog(func(store *catalog.Store) error {
				out := cmd.OutOrStdout()

				if summary {
					summaries, err := store.Summaries(cmd.Context())
					if err != nil {
						return err
					}
					if len(summaries) == 0 {
						fmt.Fprintln(out, "No saves recorded yet")
						return nil
					}
					rows := make([][]string, 0, len(summaries))
					for _, entry := range summaries {
						rows = append(rows, []string{
							filepath.Base(entry.MediaPath),
							strconv.Itoa(entry.Saves),
							entry.LastSave.Local().Format("2006-01-02 15:04"),
						})
					}
					fmt.Fprintln(out, renderTable([]tableColumn{
						{title: "Media"},
						{title: "Saves", alignRight: true},
						{title: "Last Save"},
					}, rows))
					return nil
				}

				var mediaPath string
				if trimmed := strings.TrimSpace(mediaFlag); trimmed != "" {
					abs, err := filepath.Abs(trimmed)
					if err != nil {
						return fmt.Errorf("resolve media path: %w", err)
					}
					mediaPath = abs
				}

				saves, err := store.RecentSaves(cmd.Context(), mediaPath, limit)
				if err != nil {
					return err
				}
				if len(saves) == 0 {
					fmt.Fprintln(out, "No saves recorded yet")
					return nil
				}

				rows := make([][]string, 0, len(saves))
				for _, entry := range saves {
					resolution := entry.Resolution
					if resolution == "" {
						resolution = "-"
					}
					rows = append(rows, []string{
						entry.CreatedAt.Local().Format("2006-01-02 15:04"),
						filepath.Base(entry.MediaPath),
						entry.Timestamp,
						entry.ShotType,
						entry.Description,
						resolution,
					})
				}
				fmt.Fprintln(out, renderTable([]tableColumn{
					{title: "Saved"},
					{title: "Media"},
					{title: "Timestamp", alignRight: true},
					{title: "Shot"},
					{title: "Description"},
					{title: "Resolution"},
				}, rows))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of saves to show")
	cmd.Flags().StringVar(&mediaFlag, "media", "", "Only show saves for this media file")
	cmd.Flags().BoolVar(&summary, "summary", false, "Aggregate save counts per media file")
	cmd.MarkFlagsMutuallyExclusive("media", "summary")

	return cmd
}
