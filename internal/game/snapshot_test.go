package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	e, st := newTestGame(t, 11)

	// Build a save with every collection populated.
	if err := e.Apply(st, AddTrack{Title: "One", Quality: 8}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, AddAlbum{Title: "LP", TrackIDs: []int64{st.Tracks[0].ID}, Quality: 7}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, ReleaseContent{ContentID: st.Tracks[0].ID, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, AddSocialPost{Platform: PlatformRapGram, Content: "out now", Likes: 500}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, AdvanceWeek{}); err != nil {
		t.Fatal(err)
	}

	data, err := EncodeSnapshot(st)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, st) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, st)
	}
}

func TestSnapshotDecodeRederivesLevel(t *testing.T) {
	_, st := newTestGame(t, 1)
	st.Player.Fame = 40
	st.Player.Reputation = 40
	st.Player.recomputeLevel()

	// A snapshot written under an older balance may persist a stale level.
	st.Player.CareerLevelID = 7
	stale, err := EncodeSnapshot(st)
	if err != nil {
		t.Fatal(err)
	}

	got, err := DecodeSnapshot(stale)
	if err != nil {
		t.Fatal(err)
	}
	if got.Player.CareerLevelID != 4 {
		t.Errorf("level = %d, want re-derived 4", got.Player.CareerLevelID)
	}
}

func TestSnapshotDecodeClampsStats(t *testing.T) {
	data := []byte(`{"saveId":"x","gameStarted":true,"player":{"stageName":"MC","fame":250,"reputation":-10}}`)
	st, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}
	if st.Player.Fame != 100 || st.Player.Reputation != 0 {
		t.Errorf("fame/rep = %d/%d, want clamped 100/0", st.Player.Fame, st.Player.Reputation)
	}
}

func TestSnapshotDecodeCorrupt(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("not a snapshot")},
		{"truncated", []byte(`{"saveId":"x","player":{`)},
		{"started without identity", []byte(`{"saveId":"x","gameStarted":true,"player":{}}`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(tc.data); !errors.Is(err, ErrCorruptSnapshot) {
				t.Errorf("err = %v, want ErrCorruptSnapshot", err)
			}
		})
	}
}
