// Package timecode provides the fixed-width HH:MM:SS playback position type
// used throughout the annotation workflow.
//
// The textual form is always exactly eight characters with zero padding, so
// lexicographic comparison of formatted values is equivalent to numeric
// comparison. Sidecar files rely on this when sorting persisted lines.
package timecode
