package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Save is one journaled persist operation.
type Save struct {
	ID          int64
	SessionID   string
	MediaPath   string
	SidecarPath string
	Timestamp   string
	Description string
	ShotType    string
	Resolution  string
	CreatedAt   time.Time
}

// RecordSave appends a save to the journal and returns its row ID.
func (s *Store) RecordSave(ctx context.Context, save Save) (int64, error) {
	if strings.TrimSpace(save.MediaPath) == "" {
		return 0, fmt.Errorf("catalog: media path is required")
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (session_id, media_path, sidecar_path, timestamp, description, shot_type, resolution)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		save.SessionID, save.MediaPath, save.SidecarPath, save.Timestamp,
		save.Description, save.ShotType, save.Resolution)
	if err != nil {
		return 0, fmt.Errorf("catalog: record save: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("catalog: last insert id: %w", err)
	}
	return id, nil
}

// RecentSaves returns the newest saves, optionally filtered to one media
// file. A limit <= 0 defaults to 20.
func (s *Store) RecentSaves(ctx context.Context, mediaPath string, limit int) ([]Save, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, session_id, media_path, sidecar_path, timestamp, description, shot_type, resolution, created_at
	          FROM saves`
	args := []any{}
	if strings.TrimSpace(mediaPath) != "" {
		query += " WHERE media_path = ?"
		args = append(args, mediaPath)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: query saves: %w", err)
	}
	defer rows.Close()

	var saves []Save
	for rows.Next() {
		var save Save
		if err := rows.Scan(&save.ID, &save.SessionID, &save.MediaPath, &save.SidecarPath,
			&save.Timestamp, &save.Description, &save.ShotType, &save.Resolution, &save.CreatedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan save: %w", err)
		}
		saves = append(saves, save)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate saves: %w", err)
	}
	return saves, nil
}

// MediaSummary aggregates saves per media file.
type MediaSummary struct {
	MediaPath string
	Saves     int
	LastSave  time.Time
}

// Summaries returns per-media aggregates, most recently annotated first.
func (s *Store) Summaries(ctx context.Context) ([]MediaSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT media_path, COUNT(*), MAX(created_at)
		 FROM saves GROUP BY media_path ORDER BY MAX(created_at) DESC`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []MediaSummary
	for rows.Next() {
		var summary MediaSummary
		if err := rows.Scan(&summary.MediaPath, &summary.Saves, &summary.LastSave); err != nil {
			return nil, fmt.Errorf("catalog: scan summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: iterate summaries: %w", err)
	}
	return summaries, nil
}

// CountForMedia returns how many saves have been journaled for a media file.
func (s *Store) CountForMedia(ctx context.Context, mediaPath string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM saves WHERE media_path = ?", mediaPath).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("catalog: count saves: %w", err)
	}
	return count, nil
}
