package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// newTestGame returns an engine with default balance and a started
// save, both on a fixed seed.
func newTestGame(t *testing.T, seed int64) (*Engine, *State) {
	t.Helper()
	e := NewEngine(testBalance(), seed)
	st := NewState()
	if err := e.Apply(st, CreateCharacter{StageName: "MC Test", AvatarID: 1, City: "Atlanta"}); err != nil {
		t.Fatalf("create character: %v", err)
	}
	return e, st
}

func TestCreateCharacter(t *testing.T) {
	_, st := newTestGame(t, 1)

	p := st.Player
	if p.StageName != "MC Test" || p.City != "Atlanta" {
		t.Errorf("player fields not set: %+v", p)
	}
	if p.Week != 1 || p.Year != StartYear || p.Age != StartAge {
		t.Errorf("calendar not initialized: week=%d year=%d age=%d", p.Week, p.Year, p.Age)
	}
	if p.Energy != 100 {
		t.Errorf("energy = %d, want 100", p.Energy)
	}
	if p.CareerLevelID != 1 {
		t.Errorf("new player level = %d, want 1", p.CareerLevelID)
	}
	if !st.Started {
		t.Error("game not marked started")
	}
	if st.SaveID == "" {
		t.Error("save id missing")
	}
}

func TestCreateCharacterTwiceRejected(t *testing.T) {
	e, st := newTestGame(t, 1)
	err := e.Apply(st, CreateCharacter{StageName: "Imposter"})
	if !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("err = %v, want ErrAlreadyStarted", err)
	}
	if st.Player.StageName != "MC Test" {
		t.Error("rejected action mutated state")
	}
}

func TestActionsRequireCharacter(t *testing.T) {
	e := NewEngine(testBalance(), 1)
	st := NewState()
	if err := e.Apply(st, AdvanceWeek{}); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
}

func TestUpdatePlayerMergeRecomputesLevel(t *testing.T) {
	e, st := newTestGame(t, 1)

	rep := 15
	if err := e.Apply(st, UpdatePlayer{Patch: PlayerPatch{Reputation: &rep}}); err != nil {
		t.Fatal(err)
	}
	// Reputation alone is not enough for tier 2.
	if st.Player.CareerLevelID != 1 {
		t.Fatalf("level = %d, want 1", st.Player.CareerLevelID)
	}

	// Patching only fame must combine with the already-merged
	// reputation, not the patch alone.
	fame := 15
	if err := e.Apply(st, UpdatePlayer{Patch: PlayerPatch{Fame: &fame}}); err != nil {
		t.Fatal(err)
	}
	if st.Player.CareerLevelID != 2 {
		t.Errorf("level = %d, want 2 from merged fame+reputation", st.Player.CareerLevelID)
	}
}

func TestUpdatePlayerClamps(t *testing.T) {
	e, st := newTestGame(t, 1)

	fame, rep := 150, -20
	if err := e.Apply(st, UpdatePlayer{Patch: PlayerPatch{Fame: &fame, Reputation: &rep}}); err != nil {
		t.Fatal(err)
	}
	if st.Player.Fame != 100 || st.Player.Reputation != 0 {
		t.Errorf("fame=%d rep=%d, want 100/0", st.Player.Fame, st.Player.Reputation)
	}
}

func TestAddTrackNoProgression(t *testing.T) {
	e, st := newTestGame(t, 1)

	if err := e.Apply(st, AddTrack{Title: "First Song", Quality: 6, EnergyCost: 20}); err != nil {
		t.Fatal(err)
	}
	if len(st.Tracks) != 1 {
		t.Fatalf("tracks = %d, want 1", len(st.Tracks))
	}
	if st.Tracks[0].Quality != 6 || st.Tracks[0].Released {
		t.Errorf("track = %+v", st.Tracks[0])
	}
	if st.Player.Energy != 80 {
		t.Errorf("energy = %d, want 80", st.Player.Energy)
	}
	// Creation earns nothing; progression happens on release.
	if st.Player.Fame != 0 || st.Player.Fans != 0 || st.Player.TotalReleases != 0 {
		t.Error("studio work must not grant progression")
	}
}

func TestAddTrackInsufficientEnergy(t *testing.T) {
	e, st := newTestGame(t, 1)

	err := e.Apply(st, AddTrack{Title: "Overwork", Quality: 5, EnergyCost: 150})
	if !errors.Is(err, ErrInsufficientEnergy) {
		t.Fatalf("err = %v, want ErrInsufficientEnergy", err)
	}
	if len(st.Tracks) != 0 || st.Player.Energy != 100 {
		t.Error("rejected action mutated state")
	}
}

func TestAddAlbumValidatesTracks(t *testing.T) {
	e, st := newTestGame(t, 1)

	err := e.Apply(st, AddAlbum{Title: "Ghost Album", TrackIDs: []int64{999}})
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
	if len(st.Albums) != 0 {
		t.Error("rejected album was appended")
	}

	if err := e.Apply(st, AddTrack{Title: "Cut One", Quality: 7}); err != nil {
		t.Fatal(err)
	}
	trackID := st.Tracks[0].ID
	if err := e.Apply(st, AddAlbum{Title: "Debut", TrackIDs: []int64{trackID}, Quality: 7}); err != nil {
		t.Fatal(err)
	}
	if !st.Tracks[0].InAlbum {
		t.Error("track not marked as part of the album")
	}
}

func TestAddConcert(t *testing.T) {
	e, st := newTestGame(t, 1)

	concert := Concert{
		Venue: "Dive Bar", Capacity: 150, Attendance: 120,
		Earnings: 1200, Quality: 8,
	}
	if err := e.Apply(st, AddConcert{Concert: concert, EnergyCost: 30}); err != nil {
		t.Fatal(err)
	}

	if len(st.Concerts) != 1 {
		t.Fatalf("concerts = %d, want 1", len(st.Concerts))
	}
	if st.Player.Energy != 70 {
		t.Errorf("energy = %d, want 70", st.Player.Energy)
	}
	if st.Player.Fame == 0 || st.Player.Fans == 0 {
		t.Error("concert must grant fame and fans immediately")
	}
	if st.Earnings.Concerts != 1200 || st.Earnings.Total != 1200 || st.Earnings.ThisWeek != 1200 {
		t.Errorf("earnings = %+v", st.Earnings)
	}
	if st.Player.NetWorth != 100+1200 {
		t.Errorf("net worth = %v, want 1300", st.Player.NetWorth)
	}
}

func TestAddSocialPostEngagement(t *testing.T) {
	e, st := newTestGame(t, 1)

	post := AddSocialPost{Platform: PlatformRapGram, Content: "studio vibes", Likes: 10_000}
	if err := e.Apply(st, post); err != nil {
		t.Fatal(err)
	}

	// engagement bonus = likes/100 = 100
	if st.Player.Fans != 100 {
		t.Errorf("fans = %d, want 100", st.Player.Fans)
	}
	if st.Player.Social.RapGram.Followers != 100 {
		t.Errorf("followers = %d, want 100", st.Player.Social.RapGram.Followers)
	}
	if st.Player.Social.RapGram.Posts != 1 {
		t.Errorf("posts = %d, want 1", st.Player.Social.RapGram.Posts)
	}
	// fame bonus = bonus/50 = 2
	if st.Player.Fame != 2 {
		t.Errorf("fame = %d, want 2", st.Player.Fame)
	}
}

func TestReleaseTrackComputation(t *testing.T) {
	const seed = 42
	e, st := newTestGame(t, seed)

	fame, rep := 10, 10
	if err := e.Apply(st, UpdatePlayer{Patch: PlayerPatch{Fame: &fame, Reputation: &rep}}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, AddTrack{Title: "Banger", Quality: 8}); err != nil {
		t.Fatal(err)
	}
	trackID := st.Tracks[0].ID

	// Replicate the engine's computation on a parallel RNG. Nothing so
	// far has consumed randomness, so the streams line up.
	rng := rand.New(rand.NewSource(seed))
	cfg := testBalance()

	wantFame := clampStat(10 + FameGain(cfg, GainTrack, 8, 1))
	wantRep := clampStat(10 + ReputationGain(cfg, RepHighQuality, 8, 0.5))
	wantFans := FanGrowth(cfg, wantFame, wantRep, GainTrack)
	baseStreams := ExpectedStreams(cfg, wantFame, wantRep, wantFans, 8)
	viral := ViralPotential(cfg, 8, 8, 7, rng.Float64())
	wantViews := int64(math.Floor(float64(baseStreams) * viral.Multiplier))
	wantEarnings := float64(wantViews) * cfg.Release.TrackViewValue

	if err := e.Apply(st, ReleaseContent{ContentID: trackID, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}

	if len(st.Releases) != 1 {
		t.Fatalf("releases = %d, want 1", len(st.Releases))
	}
	rel := st.Releases[0]

	if st.Player.Fame != wantFame || st.Player.Reputation != wantRep {
		t.Errorf("fame/rep = %d/%d, want %d/%d", st.Player.Fame, st.Player.Reputation, wantFame, wantRep)
	}
	if st.Player.Fans != wantFans {
		t.Errorf("fans = %d, want %d", st.Player.Fans, wantFans)
	}
	if rel.Views != wantViews {
		t.Errorf("views = %d, want %d", rel.Views, wantViews)
	}
	if rel.Earnings != wantEarnings {
		t.Errorf("earnings = %v, want %v", rel.Earnings, wantEarnings)
	}
	if rel.AlbumSales != 0 {
		t.Errorf("track release has album sales %d", rel.AlbumSales)
	}
	if rel.IsViral != viral.IsViral {
		t.Errorf("isViral = %v, want %v", rel.IsViral, viral.IsViral)
	}
	if rel.WeeklyViews != wantViews || rel.PeakWeeklyViews != wantViews {
		t.Error("debut week snapshot fields must equal initial views")
	}
	if len(rel.History) != 1 || rel.History[0].Views != wantViews {
		t.Errorf("history = %+v", rel.History)
	}

	if !st.Tracks[0].Released || st.Tracks[0].ReleaseID != rel.ID {
		t.Error("source track not marked released with back-reference")
	}
	if st.Player.TotalReleases != 1 {
		t.Errorf("totalReleases = %d, want 1", st.Player.TotalReleases)
	}
	if st.Stats.TotalStreams != wantViews {
		t.Errorf("career streams = %d, want %d", st.Stats.TotalStreams, wantViews)
	}
}

func TestReleaseAlbumSales(t *testing.T) {
	e, st := newTestGame(t, 7)

	if err := e.Apply(st, AddTrack{Title: "Cut", Quality: 8}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, AddAlbum{Title: "LP", TrackIDs: []int64{st.Tracks[0].ID}, Quality: 8}); err != nil {
		t.Fatal(err)
	}

	if err := e.Apply(st, ReleaseContent{ContentID: st.Albums[0].ID, Type: ContentAlbum}); err != nil {
		t.Fatal(err)
	}
	rel := st.Releases[0]
	if rel.AlbumSales == 0 {
		t.Fatal("album release must have sales")
	}
	// Sales derive from the expected streams before any viral boost.
	cfg := testBalance()
	wantFame := clampStat(FameGain(cfg, GainAlbum, 8, 1))
	wantRep := clampStat(ReputationGain(cfg, RepHighQuality, 8, 0.5))
	wantFans := FanGrowth(cfg, wantFame, wantRep, GainAlbum)
	if want := AlbumSales(cfg, ExpectedStreams(cfg, wantFame, wantRep, wantFans, 8)); rel.AlbumSales != want {
		t.Errorf("album sales = %d, want %d", rel.AlbumSales, want)
	}
	if st.Earnings.AlbumSales == 0 {
		t.Error("album sales channel not credited")
	}
	if st.Stats.TotalAlbumSales != rel.AlbumSales {
		t.Errorf("career album sales = %d, want %d", st.Stats.TotalAlbumSales, rel.AlbumSales)
	}
}

func TestReleaseUnknownContent(t *testing.T) {
	e, st := newTestGame(t, 1)

	before := st.Player
	err := e.Apply(st, ReleaseContent{ContentID: 12345, Type: ContentTrack})
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
	if len(st.Releases) != 0 {
		t.Error("release created for unknown content")
	}
	if st.Player != before {
		t.Error("rejected release mutated the player")
	}
}

func TestReleaseTwiceRejected(t *testing.T) {
	e, st := newTestGame(t, 1)

	if err := e.Apply(st, AddTrack{Title: "Once", Quality: 5}); err != nil {
		t.Fatal(err)
	}
	id := st.Tracks[0].ID
	if err := e.Apply(st, ReleaseContent{ContentID: id, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}

	err := e.Apply(st, ReleaseContent{ContentID: id, Type: ContentTrack})
	if !errors.Is(err, ErrAlreadyReleased) {
		t.Fatalf("err = %v, want ErrAlreadyReleased", err)
	}
	if len(st.Releases) != 1 {
		t.Fatalf("releases = %d, want exactly 1", len(st.Releases))
	}
}

func TestReleaseConsistencyScore(t *testing.T) {
	e, st := newTestGame(t, 3)

	// Quick follow-up release: reward.
	if err := e.Apply(st, AddTrack{Title: "One", Quality: 5}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, ReleaseContent{ContentID: st.Tracks[0].ID, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}
	if got := st.Player.ConsistencyScore; math.Abs(got-0.6) > 1e-9 {
		t.Errorf("consistency = %v, want 0.6", got)
	}

	// Long gap: penalty, floored at 0.3.
	st.Player.LastReleaseWeek = st.Player.CareerWeek - 40
	st.Player.ConsistencyScore = 0.4
	if err := e.Apply(st, AddTrack{Title: "Two", Quality: 5}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, ReleaseContent{ContentID: st.Tracks[1].ID, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}
	if got := st.Player.ConsistencyScore; math.Abs(got-0.3) > 1e-9 {
		t.Errorf("consistency = %v, want floor 0.3", got)
	}
}

func TestAnnounceRelease(t *testing.T) {
	e, st := newTestGame(t, 5)

	st.Player.Fans = 100_000
	st.Player.Social.RapGram.Followers = 50_000

	if err := e.Apply(st, AddTrack{Title: "Promo Me", Quality: 6}); err != nil {
		t.Fatal(err)
	}
	if err := e.Apply(st, ReleaseContent{ContentID: st.Tracks[0].ID, Type: ContentTrack}); err != nil {
		t.Fatal(err)
	}

	rel := st.Releases[0]
	viewsBefore := rel.Views
	postsBefore := len(st.Posts)

	if err := e.Apply(st, AnnounceRelease{ReleaseID: rel.ID}); err != nil {
		t.Fatal(err)
	}

	rel = st.Releases[0]
	if !rel.Announced {
		t.Error("release not marked announced")
	}
	if rel.Views <= viewsBefore {
		t.Error("announcement must add views")
	}
	if len(st.Posts) != postsBefore+2 {
		t.Errorf("posts = %d, want %d promo posts", len(st.Posts), postsBefore+2)
	}

	if err := e.Apply(st, AnnounceRelease{ReleaseID: rel.ID}); !errors.Is(err, ErrAlreadyAnnounced) {
		t.Fatalf("second announce err = %v, want ErrAlreadyAnnounced", err)
	}
}

func TestWorkJob(t *testing.T) {
	e, st := newTestGame(t, 1)

	if err := e.Apply(st, WorkJob{JobID: "street_performer"}); err != nil {
		t.Fatal(err)
	}
	if st.Player.Energy != 80 {
		t.Errorf("energy = %d, want 80", st.Player.Energy)
	}
	if st.Player.NetWorth != 150 {
		t.Errorf("net worth = %v, want 150", st.Player.NetWorth)
	}

	if err := e.Apply(st, WorkJob{JobID: "brand_endorsement"}); !errors.Is(err, ErrLevelTooLow) {
		t.Fatalf("err = %v, want ErrLevelTooLow", err)
	}
	if err := e.Apply(st, WorkJob{JobID: "nope"}); !errors.Is(err, ErrUnknownJob) {
		t.Fatalf("err = %v, want ErrUnknownJob", err)
	}
}

func TestPurchaseItem(t *testing.T) {
	e, st := newTestGame(t, 1)

	if err := e.Apply(st, PurchaseItem{ItemID: "chain"}); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	st.Player.NetWorth = 2000
	if err := e.Apply(st, PurchaseItem{ItemID: "chain"}); err != nil {
		t.Fatal(err)
	}
	if st.Player.NetWorth != 500 {
		t.Errorf("net worth = %v, want 500", st.Player.NetWorth)
	}
	if st.Player.Fame != 1 {
		t.Errorf("fame = %d, want 1 from the chain", st.Player.Fame)
	}
}

func TestUpgradeSkillCostBoundary(t *testing.T) {
	e, st := newTestGame(t, 1)

	st.Player.Skills.Lyrics = 24
	if err := e.Apply(st, UpgradeSkill{Skill: SkillLyrics}); err != nil {
		t.Fatal(err)
	}
	if st.Player.Skills.Lyrics != 25 {
		t.Fatalf("lyrics = %d, want 25", st.Player.Skills.Lyrics)
	}
	if st.Player.Energy != 98 {
		t.Errorf("energy = %d, want 98 (cost 2 below level 25)", st.Player.Energy)
	}

	if err := e.Apply(st, UpgradeSkill{Skill: SkillLyrics}); err != nil {
		t.Fatal(err)
	}
	if st.Player.Energy != 94 {
		t.Errorf("energy = %d, want 94 (cost 4 at level 25)", st.Player.Energy)
	}

	st.Player.Skills.Flow = 100
	if err := e.Apply(st, UpgradeSkill{Skill: SkillFlow}); !errors.Is(err, ErrSkillMaxed) {
		t.Fatalf("err = %v, want ErrSkillMaxed", err)
	}
}

func TestNotificationsBounded(t *testing.T) {
	e, st := newTestGame(t, 1)
	st.Player.NetWorth = 1e9

	for i := 0; i < 40; i++ {
		if err := e.Apply(st, PurchaseItem{ItemID: "mic"}); err != nil {
			t.Fatal(err)
		}
	}
	if max := testBalance().Retention.Notifications; len(st.Notifications) > max {
		t.Errorf("notifications = %d, want <= %d", len(st.Notifications), max)
	}
	// Newest first.
	if st.Notifications[0].ID <= st.Notifications[1].ID {
		t.Error("notifications must be prepended")
	}
}

func TestClearAndReadNotifications(t *testing.T) {
	e, st := newTestGame(t, 1)

	if st.UnreadNotifications() == 0 {
		t.Fatal("character creation should notify")
	}
	if err := e.Apply(st, MarkNotificationsRead{}); err != nil {
		t.Fatal(err)
	}
	if st.UnreadNotifications() != 0 {
		t.Error("notifications still unread")
	}
	if err := e.Apply(st, ClearNotifications{}); err != nil {
		t.Fatal(err)
	}
	if len(st.Notifications) != 0 {
		t.Error("notifications not cleared")
	}
}

// TestInvariantsUnderRandomPlay drives the engine through a long mixed
// action sequence and checks the core invariants after every step.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	e, st := newTestGame(t, 99)
	rng := rand.New(rand.NewSource(1234))

	prevReleases := 0
	var prevStreams, prevSales int64

	check := func(step int) {
		t.Helper()
		p := st.Player
		if p.Fame < 0 || p.Fame > 100 || p.Reputation < 0 || p.Reputation > 100 {
			t.Fatalf("step %d: fame/rep out of range: %d/%d", step, p.Fame, p.Reputation)
		}
		if want := LevelFor(p.Fame, p.Reputation).ID; p.CareerLevelID != want {
			t.Fatalf("step %d: stale career level %d, want %d", step, p.CareerLevelID, want)
		}
		if p.ConsistencyScore < 0.3-1e-9 || p.ConsistencyScore > 1.0+1e-9 {
			t.Fatalf("step %d: consistency %v out of range", step, p.ConsistencyScore)
		}
		if p.Energy < 0 || p.Energy > 100 {
			t.Fatalf("step %d: energy %d out of range", step, p.Energy)
		}
		if p.TotalReleases < prevReleases {
			t.Fatalf("step %d: totalReleases decreased", step)
		}
		if st.Stats.TotalStreams < prevStreams || st.Stats.TotalAlbumSales < prevSales {
			t.Fatalf("step %d: career stats decreased", step)
		}
		prevReleases = p.TotalReleases
		prevStreams = st.Stats.TotalStreams
		prevSales = st.Stats.TotalAlbumSales
	}

	for i := 0; i < 500; i++ {
		var a Action
		switch rng.Intn(8) {
		case 0:
			a = AddTrack{Title: "Track", Quality: 1 + rng.Intn(10), EnergyCost: rng.Intn(40)}
		case 1:
			if n := len(st.Tracks); n > 0 {
				a = ReleaseContent{ContentID: st.Tracks[rng.Intn(n)].ID, Type: ContentTrack}
			} else {
				a = AdvanceWeek{}
			}
		case 2:
			a = AdvanceWeek{}
		case 3:
			a = AddSocialPost{Platform: PlatformRikTok, Content: "post", Likes: int64(rng.Intn(50000))}
		case 4:
			a = WorkJob{JobID: "street_performer"}
		case 5:
			a = UpgradeSkill{Skill: SkillFlow}
		case 6:
			a = AddConcert{
				Concert:    Concert{Venue: "Club", Capacity: 600, Attendance: int64(rng.Intn(600)), Earnings: float64(rng.Intn(5000)), Quality: 1 + rng.Intn(10)},
				EnergyCost: 25,
			}
		case 7:
			fame := rng.Intn(201) - 50
			a = UpdatePlayer{Patch: PlayerPatch{Fame: &fame}}
		}

		// Typed rejections are fine; silent corruption is not.
		switch err := e.Apply(st, a); {
		case err == nil:
		case errors.Is(err, ErrInsufficientEnergy),
			errors.Is(err, ErrInsufficientFunds),
			errors.Is(err, ErrAlreadyReleased),
			errors.Is(err, ErrSkillMaxed),
			errors.Is(err, ErrLevelTooLow):
		default:
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
		check(i)
	}
}
