package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/config"
)

// Typed rejections. The engine validates every precondition itself and
// rejects without touching state; callers can rely on that instead of
// pre-checking affordability.
var (
	ErrNotStarted         = errors.New("game: no character created")
	ErrAlreadyStarted     = errors.New("game: character already created")
	ErrInsufficientEnergy = errors.New("game: insufficient energy")
	ErrInsufficientFunds  = errors.New("game: insufficient funds")
	ErrContentNotFound    = errors.New("game: content not found")
	ErrReleaseNotFound    = errors.New("game: release not found")
	ErrAlreadyReleased    = errors.New("game: content already released")
	ErrAlreadyAnnounced   = errors.New("game: release already announced")
	ErrUnknownJob         = errors.New("game: unknown job")
	ErrUnknownItem        = errors.New("game: unknown shop item")
	ErrUnknownSkill       = errors.New("game: unknown skill")
	ErrSkillMaxed         = errors.New("game: skill already at maximum")
	ErrLevelTooLow        = errors.New("game: career level too low")
)

// Engine applies actions to game state. All randomness is drawn from
// the injected source, so a fixed seed yields a fully deterministic
// career.
type Engine struct {
	cfg *config.Balance
	rng *rand.Rand
}

// NewEngine creates an engine with the given balance and RNG seed.
func NewEngine(cfg *config.Balance, seed int64) *Engine {
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Balance exposes the engine's tuning constants to hosts.
func (e *Engine) Balance() *config.Balance { return e.cfg }

// Rand exposes the engine's random source so host-side planning helpers
// (concerts, post engagement) share the deterministic stream.
func (e *Engine) Rand() *rand.Rand { return e.rng }

// NewState creates an empty save with a fresh identity. The character
// itself is created by the CreateCharacter action.
func NewState() *State {
	return &State{SaveID: uuid.NewString()}
}

// Apply advances state by one action. On error the state is unchanged.
// Dispatches must be serialized by the host; Apply never blocks and
// draws all randomness eagerly.
func (e *Engine) Apply(st *State, a Action) error {
	if _, ok := a.(CreateCharacter); !ok && !st.Started {
		return ErrNotStarted
	}

	switch act := a.(type) {
	case CreateCharacter:
		return e.applyCreateCharacter(st, act)
	case UpdatePlayer:
		return e.applyUpdatePlayer(st, act)
	case AddTrack:
		return e.applyAddTrack(st, act)
	case AddAlbum:
		return e.applyAddAlbum(st, act)
	case AddVideo:
		return e.applyAddVideo(st, act)
	case AddCollaboration:
		return e.applyAddCollaboration(st, act)
	case AddConcert:
		return e.applyAddConcert(st, act)
	case AddSocialPost:
		return e.applyAddSocialPost(st, act)
	case ReleaseContent:
		return e.applyReleaseContent(st, act)
	case AnnounceRelease:
		return e.applyAnnounceRelease(st, act)
	case AdvanceWeek:
		return e.advanceWeek(st)
	case WorkJob:
		return e.applyWorkJob(st, act)
	case PurchaseItem:
		return e.applyPurchaseItem(st, act)
	case UpgradeSkill:
		return e.applyUpgradeSkill(st, act)
	case ClearNotifications:
		st.Notifications = nil
		return nil
	case MarkNotificationsRead:
		for i := range st.Notifications {
			st.Notifications[i].Shown = true
			st.Notifications[i].Read = true
		}
		return nil
	default:
		return fmt.Errorf("game: unknown action %q", a.Name())
	}
}

func (e *Engine) applyCreateCharacter(st *State, act CreateCharacter) error {
	if st.Started {
		return ErrAlreadyStarted
	}

	st.Player = Player{
		StageName:        act.StageName,
		AvatarID:         act.AvatarID,
		City:             act.City,
		Age:              StartAge,
		Year:             StartYear,
		Week:             1,
		Month:            1,
		CareerWeek:       1,
		Energy:           100,
		NetWorth:         100,
		LastReleaseWeek:  1,
		ConsistencyScore: 0.5,
		Skills:           Skills{Lyrics: 1, Flow: 1, Charisma: 1, Business: 1, Production: 1},
	}
	st.Player.recomputeLevel()
	st.Started = true

	e.notify(st, NoticeLevelUp, "Welcome to the game",
		fmt.Sprintf("%s starts the grind in %s.", act.StageName, act.City))
	return nil
}

func (e *Engine) applyUpdatePlayer(st *State, act UpdatePlayer) error {
	p := &st.Player
	patch := act.Patch

	if patch.StageName != nil {
		p.StageName = *patch.StageName
	}
	if patch.AvatarID != nil {
		p.AvatarID = *patch.AvatarID
	}
	if patch.Fans != nil {
		p.Fans = *patch.Fans
		if p.Fans < 0 {
			p.Fans = 0
		}
	}
	if patch.NetWorth != nil {
		p.NetWorth = *patch.NetWorth
	}
	if patch.Energy != nil {
		p.Energy = clampStat(*patch.Energy)
	}

	// Level is derived from the merged values, never the patch alone.
	if patch.Fame != nil || patch.Reputation != nil {
		if patch.Fame != nil {
			p.Fame = clampStat(*patch.Fame)
		}
		if patch.Reputation != nil {
			p.Reputation = clampStat(*patch.Reputation)
		}
		p.recomputeLevel()
	}
	return nil
}

// spendStudio validates and deducts the energy/money cost of a studio
// session. Creation costs resources but grants no progression; that
// happens on release.
func (e *Engine) spendStudio(st *State, energy int, money float64) error {
	if st.Player.Energy < energy {
		return ErrInsufficientEnergy
	}
	if st.Player.NetWorth < money {
		return ErrInsufficientFunds
	}
	st.Player.Energy -= energy
	st.Player.NetWorth -= money
	return nil
}

func (e *Engine) applyAddTrack(st *State, act AddTrack) error {
	if err := e.spendStudio(st, act.EnergyCost, act.MoneyCost); err != nil {
		return err
	}
	quality := act.Quality
	if quality == 0 {
		quality = StudioQuality(st.Player.Skills, ContentTrack, e.rng)
	}
	st.Tracks = append(st.Tracks, Track{
		ID:      st.nextID(),
		Title:   act.Title,
		Quality: quality,
		Week:    st.Player.Week,
		Year:    st.Player.Year,
	})
	return nil
}

func (e *Engine) applyAddAlbum(st *State, act AddAlbum) error {
	// Validate the track list before any mutation.
	for _, id := range act.TrackIDs {
		if trackIndex(st, id) < 0 {
			return fmt.Errorf("%w: track %d", ErrContentNotFound, id)
		}
	}
	if err := e.spendStudio(st, act.EnergyCost, act.MoneyCost); err != nil {
		return err
	}

	quality := act.Quality
	if quality == 0 {
		quality = StudioQuality(st.Player.Skills, ContentAlbum, e.rng)
	}
	st.Albums = append(st.Albums, Album{
		ID:       st.nextID(),
		Title:    act.Title,
		Quality:  quality,
		TrackIDs: append([]int64(nil), act.TrackIDs...),
		Week:     st.Player.Week,
		Year:     st.Player.Year,
	})
	for _, id := range act.TrackIDs {
		st.Tracks[trackIndex(st, id)].InAlbum = true
	}
	return nil
}

func (e *Engine) applyAddVideo(st *State, act AddVideo) error {
	var trackIdx = -1
	if act.TrackID != 0 {
		trackIdx = trackIndex(st, act.TrackID)
		if trackIdx < 0 {
			return fmt.Errorf("%w: track %d", ErrContentNotFound, act.TrackID)
		}
	}
	if err := e.spendStudio(st, act.EnergyCost, act.MoneyCost); err != nil {
		return err
	}

	quality := act.Quality
	if quality == 0 {
		quality = StudioQuality(st.Player.Skills, ContentVideo, e.rng)
	}
	st.Videos = append(st.Videos, MusicVideo{
		ID:      st.nextID(),
		Title:   act.Title,
		TrackID: act.TrackID,
		Quality: quality,
		Week:    st.Player.Week,
		Year:    st.Player.Year,
	})
	if trackIdx >= 0 {
		st.Tracks[trackIdx].HasVideo = true
	}
	return nil
}

func (e *Engine) applyAddCollaboration(st *State, act AddCollaboration) error {
	if err := e.spendStudio(st, act.EnergyCost, act.MoneyCost); err != nil {
		return err
	}
	quality := act.Quality
	if quality == 0 {
		quality = StudioQuality(st.Player.Skills, ContentCollaboration, e.rng)
	}
	st.Collabs = append(st.Collabs, Collaboration{
		ID:      st.nextID(),
		Title:   act.Title,
		Partner: act.Partner,
		Quality: quality,
		Week:    st.Player.Week,
		Year:    st.Player.Year,
	})
	return nil
}

func (e *Engine) applyAddConcert(st *State, act AddConcert) error {
	if st.Player.Energy < act.EnergyCost {
		return ErrInsufficientEnergy
	}
	st.Player.Energy -= act.EnergyCost

	c := act.Concert
	c.ID = st.nextID()
	c.Week = st.Player.Week
	c.Year = st.Player.Year
	st.Concerts = append(st.Concerts, c)

	p := &st.Player
	levelID := p.CareerLevelID
	p.Fame = clampStat(p.Fame + FameGain(e.cfg, GainConcert, c.Quality, levelID))
	p.Reputation = clampStat(p.Reputation + ReputationGain(e.cfg,
		RepKindForQuality(e.cfg, c.Quality), c.Quality, p.ConsistencyScore))
	p.recomputeLevel()

	p.Fans += FanGrowth(e.cfg, p.Fame, p.Reputation, GainConcert)
	p.Social.RapGram.Followers += FollowerGrowth(e.cfg, p.Fame, p.Reputation, FollowerConcert)

	e.credit(st, c.Earnings, &st.Earnings.Concerts)
	p.NetWorth += c.Earnings

	msg := fmt.Sprintf("%d people showed up at %s. Earned $%.0f.", c.Attendance, c.Venue, c.Earnings)
	if c.SoldOut {
		msg = fmt.Sprintf("SOLD OUT %s! %d tickets. Earned $%.0f.", c.Venue, c.Attendance, c.Earnings)
	}
	e.notify(st, NoticeConcert, "Concert played", msg)
	return nil
}

func (e *Engine) applyAddSocialPost(st *State, act AddSocialPost) error {
	p := &st.Player

	post := SocialPost{
		ID:        st.nextID(),
		Platform:  act.Platform,
		Content:   act.Content,
		Likes:     act.Likes,
		Comments:  act.Comments,
		Shares:    act.Shares,
		IsViral:   act.IsViral,
		ContentID: act.ContentID,
		Week:      p.Week,
		Year:      p.Year,
	}
	st.Posts = append(st.Posts, post)

	engagementBonus := act.Likes / 100
	p.Fans += engagementBonus

	switch act.Platform {
	case PlatformRapGram:
		p.Social.RapGram.Followers += engagementBonus
		p.Social.RapGram.Posts++
	case PlatformRapTube:
		p.Social.RapTube.Subscribers += engagementBonus
		p.Social.RapTube.Videos++
	case PlatformRapify:
		p.Social.Rapify.Listeners += engagementBonus
	case PlatformRikTok:
		p.Social.RikTok.Followers += engagementBonus
		p.Social.RikTok.Videos++
	}

	p.Fame = clampStat(p.Fame + int(engagementBonus/50))
	p.recomputeLevel()

	if act.IsViral {
		e.notify(st, NoticeViral, "Post went viral",
			fmt.Sprintf("Your %s post blew up with %d likes!", act.Platform, act.Likes))
	}
	return nil
}

func (e *Engine) applyWorkJob(st *State, act WorkJob) error {
	job, ok := JobByID(act.JobID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownJob, act.JobID)
	}
	if st.Player.CareerLevelID < job.MinLevel {
		return fmt.Errorf("%w: %s requires level %d", ErrLevelTooLow, job.Name, job.MinLevel)
	}
	if st.Player.Energy < job.EnergyCost {
		return ErrInsufficientEnergy
	}

	st.Player.Energy -= job.EnergyCost
	st.Player.NetWorth += job.Pay
	e.notify(st, NoticeJob, "Job done",
		fmt.Sprintf("Worked as %s for $%.0f.", job.Name, job.Pay))
	return nil
}

func (e *Engine) applyPurchaseItem(st *State, act PurchaseItem) error {
	item, ok := ShopItemByID(act.ItemID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, act.ItemID)
	}
	if st.Player.NetWorth < item.Price {
		return ErrInsufficientFunds
	}

	p := &st.Player
	p.NetWorth -= item.Price
	if item.FameBonus != 0 || item.RepBonus != 0 {
		p.Fame = clampStat(p.Fame + item.FameBonus)
		p.Reputation = clampStat(p.Reputation + item.RepBonus)
		p.recomputeLevel()
	}

	e.notify(st, NoticePurchase, "Purchase",
		fmt.Sprintf("Bought %s for $%.0f.", item.Name, item.Price))
	return nil
}

func (e *Engine) applyUpgradeSkill(st *State, act UpgradeSkill) error {
	current := st.Player.Skills.Get(act.Skill)
	if current == 0 && !isSkillName(act.Skill) {
		return fmt.Errorf("%w: %q", ErrUnknownSkill, act.Skill)
	}
	cost, ok := SkillUpgradeCost(e.cfg, current)
	if !ok {
		return ErrSkillMaxed
	}
	if st.Player.Energy < cost {
		return ErrInsufficientEnergy
	}

	st.Player.Energy -= cost
	st.Player.Skills.set(act.Skill, current+1)
	e.notify(st, NoticeSkill, "Skill improved",
		fmt.Sprintf("%s is now %d.", act.Skill, current+1))
	return nil
}

func isSkillName(name SkillName) bool {
	switch name {
	case SkillLyrics, SkillFlow, SkillCharisma, SkillBusiness, SkillProduction:
		return true
	}
	return false
}

func trackIndex(st *State, id int64) int {
	for i := range st.Tracks {
		if st.Tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// credit books income into the running totals and one channel bucket.
func (e *Engine) credit(st *State, amount float64, channel *float64) {
	st.Earnings.Total += amount
	st.Earnings.ThisWeek += amount
	if channel != nil {
		*channel += amount
	}
}

// notify prepends a notification and evicts beyond the retention cap.
func (e *Engine) notify(st *State, typ NotificationType, title, message string) {
	n := Notification{
		ID:      st.nextID(),
		Type:    typ,
		Title:   title,
		Message: message,
		Week:    st.Player.Week,
		Year:    st.Player.Year,
	}
	st.Notifications = append([]Notification{n}, st.Notifications...)
	if max := e.cfg.Retention.Notifications; max > 0 && len(st.Notifications) > max {
		st.Notifications = st.Notifications[:max]
	}
}
