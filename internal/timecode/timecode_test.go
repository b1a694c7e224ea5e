package timecode_test

import (
	"testing"

	"shotlog/internal/timecode"
)

func TestFromSecondsDecomposition(t *testing.T) {
	cases := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"fractional floors", 59.9, "00:00:59"},
		{"minute rollover", 60, "00:01:00"},
		{"hour rollover", 3600, "01:00:00"},
		{"mixed", 3725, "01:02:05"},
		{"negative clamps", -12, "00:00:00"},
		{"large", 35999, "09:59:59"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := timecode.FromSeconds(tc.input).String()
			if got != tc.expected {
				t.Fatalf("FromSeconds(%v) = %s, want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	original := timecode.New(1, 23, 45)
	parsed, err := timecode.Parse(original.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !parsed.Equal(original) {
		t.Fatalf("round trip mismatch: %s != %s", parsed, original)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	invalid := []string{
		"",
		"1:02:03",
		"00:00",
		"00-00-00",
		"aa:bb:cc",
		"00:61:00",
		"00:00:99",
		"00:00:00 extra",
	}
	for _, value := range invalid {
		if _, err := timecode.Parse(value); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", value)
		}
	}
}

func TestParsePrefix(t *testing.T) {
	tc, ok := timecode.ParsePrefix("00:01:00\tdescription\tWS")
	if !ok {
		t.Fatal("expected prefix to parse")
	}
	if tc.String() != "00:01:00" {
		t.Fatalf("unexpected timecode %s", tc)
	}

	if _, ok := timecode.ParsePrefix("not a timestamp"); ok {
		t.Fatal("expected prefix parse to fail")
	}
	if _, ok := timecode.ParsePrefix("00:99:00\tx\ty"); ok {
		t.Fatal("expected out-of-range minutes to fail")
	}
}

func TestOrderingMatchesSeconds(t *testing.T) {
	earlier := timecode.FromSeconds(59)
	later := timecode.FromSeconds(60)
	if !earlier.Before(later) {
		t.Fatal("expected 00:00:59 < 00:01:00")
	}
	if earlier.Compare(later) >= 0 {
		t.Fatal("Compare disagrees with Before")
	}
	if later.Compare(later) != 0 {
		t.Fatal("Compare of equal values should be 0")
	}
}
