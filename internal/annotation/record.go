package annotation

import (
	"fmt"
	"strings"

	"shotlog/internal/timecode"
)

// DefaultShotType is the sentinel stored when no shot type was supplied.
const DefaultShotType = "N/A"

const fieldSeparator = "\t"

// Record is one annotation: a playback position, a free-form description,
// and a shot-type tag. Records are never mutated in place; collision
// resolution produces a replacement via WithTimestamp.
type Record struct {
	Timestamp   timecode.TimeCode
	Description string
	ShotType    string
}

// NewRecord builds a record, coercing an empty shot type to DefaultShotType.
// Description validation is the workflow's responsibility.
func NewRecord(ts timecode.TimeCode, description, shotType string) Record {
	if strings.TrimSpace(shotType) == "" {
		shotType = DefaultShotType
	}
	return Record{Timestamp: ts, Description: description, ShotType: shotType}
}

// ParseLine decodes one sidecar line. A line that does not begin with a
// well-formed HH:MM:SS prefix is not a record; callers decide whether that
// is an error or a line to skip.
func ParseLine(line string) (Record, error) {
	ts, ok := timecode.ParsePrefix(line)
	if !ok {
		return Record{}, fmt.Errorf("annotation: line has no timestamp prefix: %q", truncate(line, 32))
	}
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("annotation: expected 3 tab-separated fields, got %d", len(fields))
	}
	if fields[0] != ts.String() {
		return Record{}, fmt.Errorf("annotation: timestamp field %q is not a bare timecode", fields[0])
	}
	return Record{Timestamp: ts, Description: fields[1], ShotType: fields[2]}, nil
}

// Line encodes the record as a single tab-separated sidecar line without a
// trailing newline.
func (r Record) Line() string {
	return r.Timestamp.String() + fieldSeparator + r.Description + fieldSeparator + r.ShotType
}

// WithTimestamp returns a copy of the record stamped with a new playback
// position. Used by the refresh-and-proceed resolution path.
func (r Record) WithTimestamp(ts timecode.TimeCode) Record {
	r.Timestamp = ts
	return r
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
