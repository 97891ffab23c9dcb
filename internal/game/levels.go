// Package game implements the career simulation core: the level table,
// progression formulas, the state model, and the action engine that
// advances a save from one state to the next.
package game

// Level is one tier of the career ladder. Fame and reputation bands are
// defined independently; a player is at a level only when both bands
// contain their current values.
type Level struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	FameMin    int    `json:"fameMin"`
	FameMax    int    `json:"fameMax"`
	RepMin     int    `json:"repMin"`
	RepMax     int    `json:"repMax"`
	Unlocks    string `json:"unlocks"`
	FanRangeLo int64  `json:"fanRangeLo"`
	FanRangeHi int64  `json:"fanRangeHi"`
}

// Levels is the ordered career ladder, lowest tier first.
var Levels = []Level{
	{ID: 1, Name: "Rookie Musician", FameMin: 0, FameMax: 10, RepMin: 0, RepMax: 10,
		Unlocks: "Street performances and home recordings", FanRangeLo: 0, FanRangeHi: 1_000},
	{ID: 2, Name: "Local Artist", FameMin: 11, FameMax: 20, RepMin: 11, RepMax: 20,
		Unlocks: "Open mic nights and small venues", FanRangeLo: 1_000, FanRangeHi: 5_000},
	{ID: 3, Name: "Underground King", FameMin: 21, FameMax: 35, RepMin: 21, RepMax: 30,
		Unlocks: "Club shows and mixtape distribution", FanRangeLo: 5_000, FanRangeHi: 25_000},
	{ID: 4, Name: "Rising Star", FameMin: 36, FameMax: 50, RepMin: 31, RepMax: 45,
		Unlocks: "Label interest and radio play", FanRangeLo: 25_000, FanRangeHi: 100_000},
	{ID: 5, Name: "Known Artist", FameMin: 51, FameMax: 65, RepMin: 46, RepMax: 60,
		Unlocks: "Theater tours and brand deals", FanRangeLo: 100_000, FanRangeHi: 500_000},
	{ID: 6, Name: "Mainstream Act", FameMin: 66, FameMax: 80, RepMin: 61, RepMax: 75,
		Unlocks: "Arena shows and chart placement", FanRangeLo: 500_000, FanRangeHi: 2_000_000},
	{ID: 7, Name: "Superstar", FameMin: 81, FameMax: 92, RepMin: 76, RepMax: 88,
		Unlocks: "Stadium tours and award shows", FanRangeLo: 2_000_000, FanRangeHi: 10_000_000},
	{ID: 8, Name: "Rap Legend", FameMin: 93, FameMax: 100, RepMin: 89, RepMax: 100,
		Unlocks: "Hall of fame status", FanRangeLo: 10_000_000, FanRangeHi: 50_000_000},
}

// LevelFor returns the first level whose fame band and reputation band
// both contain the inputs. If no level matches (high fame with low
// reputation, or the reverse), it falls back to the first tier:
// reputation gates progression.
func LevelFor(fame, reputation int) Level {
	for _, lvl := range Levels {
		if fame >= lvl.FameMin && fame <= lvl.FameMax &&
			reputation >= lvl.RepMin && reputation <= lvl.RepMax {
			return lvl
		}
	}
	return Levels[0]
}

// LevelByID returns the level with the given id, or the first tier if
// the id is out of range.
func LevelByID(id int) Level {
	if id < 1 || id > len(Levels) {
		return Levels[0]
	}
	return Levels[id-1]
}

// NextLevel returns the tier immediately after the given one.
// The second return is false when already at the top.
func NextLevel(current Level) (Level, bool) {
	if current.ID >= len(Levels) {
		return Level{}, false
	}
	return Levels[current.ID], true
}

// CanLevelUp reports whether the player meets the lower bounds of the
// tier following current.
func CanLevelUp(fame, reputation int, current Level) bool {
	next, ok := NextLevel(current)
	if !ok {
		return false
	}
	return fame >= next.FameMin && reputation >= next.RepMin
}
