package timecode

import (
	"fmt"
	"math"
	"strings"
)

// TimeCode represents an elapsed playback position with second precision.
// The zero value formats as "00:00:00".
type TimeCode struct {
	hours   int
	minutes int
	seconds int
}

// FromSeconds builds a TimeCode from an elapsed duration in seconds.
// Fractional seconds are floored; negative input clamps to zero so callers
// can pass through an unavailable playback position unchecked.
func FromSeconds(total float64) TimeCode {
	if total < 0 || math.IsNaN(total) {
		total = 0
	}
	whole := int(math.Floor(total))
	return TimeCode{
		hours:   whole / 3600,
		minutes: (whole % 3600) / 60,
		seconds: whole % 60,
	}
}

// New constructs a TimeCode from explicit components. Minutes and seconds
// outside [0, 59] are normalized by carrying into the next unit.
func New(hours, minutes, seconds int) TimeCode {
	if hours < 0 {
		hours = 0
	}
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	return FromSeconds(float64(hours*3600 + minutes*60 + seconds))
}

// String renders the fixed-width zero-padded HH:MM:SS form.
func (t TimeCode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours, t.minutes, t.seconds)
}

// Seconds returns the total elapsed seconds.
func (t TimeCode) Seconds() int {
	return t.hours*3600 + t.minutes*60 + t.seconds
}

// Parse accepts exactly the HH:MM:SS form produced by String.
func Parse(value string) (TimeCode, error) {
	tc, ok := ParsePrefix(value)
	if !ok || len(value) != width {
		return TimeCode{}, fmt.Errorf("timecode: invalid value %q", value)
	}
	return tc, nil
}

const width = 8 // len("HH:MM:SS")

// ParsePrefix reports whether line begins with a well-formed HH:MM:SS
// timestamp and returns it. Digits beyond 59 in the minute or second
// positions are rejected; hours are unbounded within two digits.
func ParsePrefix(line string) (TimeCode, bool) {
	if len(line) < width {
		return TimeCode{}, false
	}
	for i := 0; i < width; i++ {
		c := line[i]
		if i == 2 || i == 5 {
			if c != ':' {
				return TimeCode{}, false
			}
			continue
		}
		if c < '0' || c > '9' {
			return TimeCode{}, false
		}
	}
	h := int(line[0]-'0')*10 + int(line[1]-'0')
	m := int(line[3]-'0')*10 + int(line[4]-'0')
	s := int(line[6]-'0')*10 + int(line[7]-'0')
	if m > 59 || s > 59 {
		return TimeCode{}, false
	}
	return TimeCode{hours: h, minutes: m, seconds: s}, true
}

// Compare orders two timecodes; the result follows strings.Compare on the
// formatted form, which matches numeric order because of the fixed width.
func (t TimeCode) Compare(other TimeCode) int {
	return strings.Compare(t.String(), other.String())
}

// Before reports whether t is strictly earlier than other.
func (t TimeCode) Before(other TimeCode) bool {
	return t.Compare(other) < 0
}

// Equal reports whether two timecodes mark the same second.
func (t TimeCode) Equal(other TimeCode) bool {
	return t == other
}
