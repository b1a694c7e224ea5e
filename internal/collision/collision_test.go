package collision_test

import (
	"testing"

	"shotlog/internal/annotation"
	"shotlog/internal/collision"
	"shotlog/internal/timecode"
)

func fixedNow(ts timecode.TimeCode) func() timecode.TimeCode {
	return func() timecode.TimeCode { return ts }
}

func TestResolveProceedKeepsOriginalTimestamp(t *testing.T) {
	incoming := annotation.NewRecord(timecode.New(0, 1, 0), "B", "Y")
	final, ok := collision.Resolve(incoming, collision.ChoiceProceed, fixedNow(timecode.New(9, 9, 9)))
	if !ok {
		t.Fatal("expected a record to persist")
	}
	if final != incoming {
		t.Fatalf("proceed altered the record: %#v", final)
	}
}

func TestResolveRefreshRequeriesTimestamp(t *testing.T) {
	incoming := annotation.NewRecord(timecode.New(0, 1, 0), "B", "Y")
	queried := false
	now := func() timecode.TimeCode {
		queried = true
		return timecode.New(0, 2, 0)
	}
	final, ok := collision.Resolve(incoming, collision.ChoiceRefresh, now)
	if !ok {
		t.Fatal("expected a record to persist")
	}
	if !queried {
		t.Fatal("refresh must re-query the playback position")
	}
	if final.Timestamp.String() != "00:02:00" {
		t.Fatalf("unexpected timestamp %s", final.Timestamp)
	}
	if final.Description != "B" || final.ShotType != "Y" {
		t.Fatalf("refresh altered fields: %#v", final)
	}
}

func TestResolveCancelPersistsNothing(t *testing.T) {
	incoming := annotation.NewRecord(timecode.New(0, 1, 0), "B", "Y")
	if _, ok := collision.Resolve(incoming, collision.ChoiceCancel, fixedNow(timecode.TimeCode{})); ok {
		t.Fatal("cancel must not produce a record")
	}
}

func TestChoiceString(t *testing.T) {
	cases := map[collision.Choice]string{
		collision.ChoiceProceed: "proceed",
		collision.ChoiceRefresh: "refresh",
		collision.ChoiceCancel:  "cancel",
	}
	for choice, expected := range cases {
		if choice.String() != expected {
			t.Errorf("Choice(%d).String() = %q, want %q", choice, choice.String(), expected)
		}
	}
}
