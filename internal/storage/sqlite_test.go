package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/config"
	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "saves.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testState(t *testing.T, name string) *game.State {
	t.Helper()
	cfg := config.DefaultBalance()
	e := game.NewEngine(&cfg, 1)
	st := game.NewState()
	require.NoError(t, e.Apply(st, game.CreateCharacter{StageName: name, AvatarID: 1, City: "Atlanta"}))
	return st
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "saves.db")
	store, err := Open(path, 0)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, DefaultMaxSlots, store.MaxSlots())
}

func TestSaveAndLoadSlot(t *testing.T) {
	store := testStore(t)
	st := testState(t, "MC Persist")

	require.NoError(t, store.SaveSlot(1, st))

	loaded, err := store.LoadSlot(1)
	require.NoError(t, err)
	assert.Equal(t, st.SaveID, loaded.SaveID)
	assert.Equal(t, "MC Persist", loaded.Player.StageName)
	assert.Equal(t, st.Player, loaded.Player)
}

func TestSaveSlotOverwrites(t *testing.T) {
	store := testStore(t)

	first := testState(t, "First Run")
	require.NoError(t, store.SaveSlot(2, first))

	second := testState(t, "Second Run")
	second.Player.Fame = 42
	require.NoError(t, store.SaveSlot(2, second))

	loaded, err := store.LoadSlot(2)
	require.NoError(t, err)
	assert.Equal(t, "Second Run", loaded.Player.StageName)
	assert.Equal(t, 42, loaded.Player.Fame)

	infos, err := store.ListSlots()
	require.NoError(t, err)
	assert.Len(t, infos, 1, "overwrite must not create a second row")
}

func TestLoadEmptySlot(t *testing.T) {
	store := testStore(t)

	_, err := store.LoadSlot(1)
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestSlotRange(t *testing.T) {
	store := testStore(t)
	st := testState(t, "MC Range")

	assert.Error(t, store.SaveSlot(0, st))
	assert.Error(t, store.SaveSlot(DefaultMaxSlots+1, st))
	_, err := store.LoadSlot(99)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave, "out of range is not an empty slot")
}

func TestDeleteSlot(t *testing.T) {
	store := testStore(t)
	st := testState(t, "MC Gone")

	require.NoError(t, store.SaveSlot(3, st))
	require.NoError(t, store.DeleteSlot(3))

	_, err := store.LoadSlot(3)
	assert.ErrorIs(t, err, ErrNoSave)

	// Deleting an already-empty slot is not an error.
	assert.NoError(t, store.DeleteSlot(3))
}

func TestListSlots(t *testing.T) {
	store := testStore(t)

	infos, err := store.ListSlots()
	require.NoError(t, err)
	assert.Empty(t, infos)

	one := testState(t, "Slot One")
	one.Player.Fame = 10
	three := testState(t, "Slot Three")
	three.Player.NetWorth = 5000

	require.NoError(t, store.SaveSlot(3, three))
	require.NoError(t, store.SaveSlot(1, one))

	infos, err = store.ListSlots()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, 1, infos[0].Slot, "listing is ordered by slot")
	assert.Equal(t, "Slot One", infos[0].StageName)
	assert.Equal(t, 10, infos[0].Fame)
	assert.Equal(t, 3, infos[1].Slot)
	assert.Equal(t, 5000.0, infos[1].NetWorth)
	assert.False(t, infos[0].UpdatedAt.IsZero())
}

func TestLoadCorruptSave(t *testing.T) {
	store := testStore(t)
	st := testState(t, "MC Broken")
	require.NoError(t, store.SaveSlot(1, st))

	_, err := store.db.Exec("UPDATE saves SET data = 'garbage' WHERE slot = 1")
	require.NoError(t, err)

	_, err = store.LoadSlot(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrCorruptSnapshot))
	assert.NotErrorIs(t, err, ErrNoSave)
}
