package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptSnapshot wraps decode failures so hosts can distinguish an
// unreadable save from an absent one.
var ErrCorruptSnapshot = errors.New("game: corrupt snapshot")

// EncodeSnapshot serializes the full state tree. The format is plain
// JSON with no cycles; release back-references are ids.
func EncodeSnapshot(st *State) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("game: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot restores a state tree from its serialized form and
// re-derives the career level in case the snapshot predates a balance
// change.
func DecodeSnapshot(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if st.Started {
		if st.Player.StageName == "" {
			return nil, fmt.Errorf("%w: started save without a player", ErrCorruptSnapshot)
		}
		st.Player.Fame = clampStat(st.Player.Fame)
		st.Player.Reputation = clampStat(st.Player.Reputation)
		st.Player.recomputeLevel()
	}
	return &st, nil
}
