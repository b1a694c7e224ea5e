package annotation

import (
	"path/filepath"
	"strings"
)

// SidecarPath derives the annotation file path for a media file: the media
// extension is stripped and ".txt" appended. A path without an extension
// simply gains the suffix.
func SidecarPath(mediaPath string) string {
	ext := filepath.Ext(mediaPath)
	return strings.TrimSuffix(mediaPath, ext) + ".txt"
}
