package game

import (
	"math"
	"math/rand"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/config"
)

// GainKind selects the base fame gain and the fan/follower growth
// multipliers for a progression event.
type GainKind string

const (
	GainTrack         GainKind = "track"
	GainAlbum         GainKind = "album"
	GainCollaboration GainKind = "collaboration"
	GainConcert       GainKind = "concert"
	GainViral         GainKind = "viral"
	GainBase          GainKind = "base"
)

// RepKind selects the base reputation gain for a progression event.
type RepKind string

const (
	RepConsistent  RepKind = "consistent"
	RepHighQuality RepKind = "highQuality"
	RepCharity     RepKind = "charity"
	RepLowQuality  RepKind = "lowQuality"
	RepInactive    RepKind = "inactive"
)

// FameGain computes fame gained from an event of the given kind.
// Quality scales the base gain, floored so even weak work earns a
// little, and higher career levels amplify exposure.
func FameGain(cfg *config.Balance, kind GainKind, quality, levelID int) int {
	var base float64
	switch kind {
	case GainTrack:
		base = cfg.FameGain.Track
	case GainAlbum:
		base = cfg.FameGain.Album
	case GainCollaboration:
		base = cfg.FameGain.Collaboration
	case GainConcert:
		base = cfg.FameGain.Concert
	case GainViral:
		base = cfg.FameGain.Viral
	}
	qualityFactor := math.Max(cfg.FameGain.MinQualityFactor, float64(quality)/10)
	levelFactor := 1 + float64(levelID)*cfg.FameGain.LevelBonus
	return int(math.Floor(base * qualityFactor * levelFactor))
}

// RepKindForQuality maps a work's quality to the reputation event it
// produces: strong work builds respect, weak work costs it.
func RepKindForQuality(cfg *config.Balance, quality int) RepKind {
	switch {
	case quality >= cfg.ReputationGain.HighQualityMin:
		return RepHighQuality
	case quality <= cfg.ReputationGain.LowQualityMax:
		return RepLowQuality
	default:
		return RepConsistent
	}
}

// ReputationGain computes reputation change for an event of the given
// kind. Quality flips the sign for poor work; a consistent release
// cadence earns a bonus.
func ReputationGain(cfg *config.Balance, kind RepKind, quality int, consistency float64) int {
	var base float64
	switch kind {
	case RepConsistent:
		base = cfg.ReputationGain.Consistent
	case RepHighQuality:
		base = cfg.ReputationGain.HighQuality
	case RepCharity:
		base = cfg.ReputationGain.Charity
	case RepLowQuality:
		base = cfg.ReputationGain.LowQuality
	case RepInactive:
		base = cfg.ReputationGain.Inactive
	}

	qualityFactor := 1.0
	if quality >= cfg.ReputationGain.HighQualityMin {
		qualityFactor = cfg.ReputationGain.HighQualityFactor
	} else if quality <= cfg.ReputationGain.LowQualityMax {
		qualityFactor = cfg.ReputationGain.LowQualityFactor
	}

	consistencyFactor := 1.0
	if consistency >= cfg.ReputationGain.ConsistencyBonusMin {
		consistencyFactor = cfg.ReputationGain.ConsistencyFactor
	}

	return int(math.Floor(base * qualityFactor * consistencyFactor))
}

// FanGrowth computes fans gained from an event of the given kind.
func FanGrowth(cfg *config.Balance, fame, reputation int, kind GainKind) int64 {
	base := float64(fame)*cfg.FanGrowth.FamePerPoint + float64(reputation)*cfg.FanGrowth.ReputationPerPoint
	mult := cfg.FanGrowth.Base
	switch kind {
	case GainConcert:
		mult = cfg.FanGrowth.Concert
	case GainAlbum:
		mult = cfg.FanGrowth.Album
	case GainViral:
		mult = cfg.FanGrowth.Viral
	case GainCollaboration:
		mult = cfg.FanGrowth.Collaboration
	}
	return int64(math.Floor(base * mult))
}

// FollowerKind selects the follower growth multiplier.
type FollowerKind string

const (
	FollowerBase    FollowerKind = "base"
	FollowerSingle  FollowerKind = "single"
	FollowerAlbum   FollowerKind = "album"
	FollowerConcert FollowerKind = "concert"
	FollowerViral   FollowerKind = "viral"
)

// FollowerGrowth computes social followers gained from an event of the
// given kind.
func FollowerGrowth(cfg *config.Balance, fame, reputation int, kind FollowerKind) int64 {
	base := float64(fame)*cfg.FollowerGrowth.FamePerPoint + float64(reputation)*cfg.FollowerGrowth.ReputationPerPoint
	mult := cfg.FollowerGrowth.Base
	switch kind {
	case FollowerSingle:
		mult = cfg.FollowerGrowth.Single
	case FollowerAlbum:
		mult = cfg.FollowerGrowth.Album
	case FollowerConcert:
		mult = cfg.FollowerGrowth.Concert
	case FollowerViral:
		mult = cfg.FollowerGrowth.Viral
	}
	return int64(math.Floor(base * mult))
}

// ExpectedStreams computes the expected first-week streams for a
// release given the artist's current reach and the work's quality.
func ExpectedStreams(cfg *config.Balance, fame, reputation int, fans int64, quality int) int64 {
	base := float64(fame)*cfg.Streams.FamePerPoint +
		float64(reputation)*cfg.Streams.ReputationPerPoint +
		float64(fans)/cfg.Streams.FanDivisor
	qualityFactor := math.Max(cfg.Streams.MinQualityFactor, float64(quality)/10)
	return int64(math.Floor(base * qualityFactor))
}

// AlbumSales derives physical/digital album sales from streams.
func AlbumSales(cfg *config.Balance, streams int64) int64 {
	return int64(math.Floor(float64(streams) / cfg.Streams.AlbumSalesDivisor))
}

// ViralOutcome is the result of a viral-potential roll.
type ViralOutcome struct {
	IsViral    bool
	Chance     float64
	Multiplier float64
}

// ViralPotential rolls whether a release goes viral. Quality, timing
// and trend alignment are weighted inputs; luck is drawn from the
// caller's random source in [0,1).
func ViralPotential(cfg *config.Balance, quality, timing, trends int, luck float64) ViralOutcome {
	chance := float64(quality)/10*cfg.Viral.QualityWeight +
		float64(timing)/10*cfg.Viral.TimingWeight +
		float64(trends)/10*cfg.Viral.TrendsWeight +
		luck*cfg.Viral.LuckWeight

	out := ViralOutcome{Chance: chance, Multiplier: 1}
	if chance > cfg.Viral.Threshold {
		out.IsViral = true
		out.Multiplier = cfg.Viral.BaseMultiplier + chance*cfg.Viral.ChanceMultiplier
	}
	return out
}

// Penalty is the decay applied after a long gap between releases.
type Penalty struct {
	Fame         float64
	Reputation   float64
	FanLoss      float64
	FollowerLoss float64
}

// InactivityPenalty returns the decay for the given gap, if any.
func InactivityPenalty(cfg *config.Balance, weeksSinceRelease int) (Penalty, bool) {
	if weeksSinceRelease < cfg.Inactivity.ThresholdWeeks {
		return Penalty{}, false
	}
	return Penalty{
		Fame:         cfg.Inactivity.Fame,
		Reputation:   cfg.Inactivity.Reputation,
		FanLoss:      cfg.Inactivity.FanLoss,
		FollowerLoss: cfg.Inactivity.FollowerLoss,
	}, true
}

// SkillUpgradeCost returns the energy cost of raising a skill by one
// point from its current level. The ladder steepens sharply near the
// cap. Returns false when the skill is already at max.
func SkillUpgradeCost(cfg *config.Balance, current int) (int, bool) {
	if current >= cfg.Skills.Max {
		return 0, false
	}
	for _, step := range cfg.Skills.CostLadder {
		if current < step.Below {
			return step.Cost, true
		}
	}
	// Ladder misconfigured: charge the last step rather than give
	// upgrades away.
	if n := len(cfg.Skills.CostLadder); n > 0 {
		return cfg.Skills.CostLadder[n-1].Cost, true
	}
	return 1, true
}

// StudioQuality computes the 1-10 quality of a recording from the
// relevant skills plus a small luck swing.
func StudioQuality(skills Skills, kind ContentType, rng *rand.Rand) int {
	var craft int
	switch kind {
	case ContentVideo:
		craft = skills.Charisma + skills.Production
	case ContentCollaboration:
		craft = skills.Lyrics + skills.Flow + skills.Charisma*2
		craft = craft / 2
	default:
		craft = skills.Lyrics + skills.Flow
	}
	// craft is on a 2..200 scale; map to 1..9 then add luck.
	q := 1 + craft*8/200
	q += rng.Intn(3) - 1 // -1, 0, or +1
	if q < 1 {
		q = 1
	}
	if q > 10 {
		q = 10
	}
	return q
}

// PlanConcert fills in attendance, earnings and performance quality for
// a show at the given venue. Draw depends on fame relative to the
// venue's size; performance quality on charisma with a luck swing.
func PlanConcert(cfg *config.Balance, fame int, fans int64, charisma int, venue Venue, rng *rand.Rand) Concert {
	drawFactor := 0.2 + float64(fame)/100*0.7 + rng.Float64()*0.1
	draw := int64(float64(fans) * drawFactor / 10)
	if potential := int64(fame * 50); draw < potential {
		draw = potential
	}

	attendance := draw
	soldOut := false
	if attendance >= venue.Capacity {
		attendance = venue.Capacity
		soldOut = true
	}

	quality := 1 + charisma*8/100 + rng.Intn(3) - 1
	if quality < 1 {
		quality = 1
	}
	if quality > 10 {
		quality = 10
	}

	return Concert{
		Venue:      venue.Name,
		Capacity:   venue.Capacity,
		Attendance: attendance,
		Earnings:   float64(attendance) * venue.TicketPrice,
		Quality:    quality,
		SoldOut:    soldOut,
	}
}

// PostEngagement generates engagement counters for a social post from
// the artist's reach on the platform. A viral roll multiplies reach.
func PostEngagement(cfg *config.Balance, followers int64, fame int, rng *rand.Rand) (likes, comments, shares int64, viral bool) {
	reach := float64(followers)*0.1 + float64(fame)*20
	if rng.Float64() < 0.05 {
		viral = true
		reach *= cfg.Viral.BaseMultiplier + rng.Float64()*cfg.Viral.ChanceMultiplier
	}
	likes = int64(reach * (0.5 + rng.Float64()*0.5))
	comments = likes / 20
	shares = likes / 10
	return likes, comments, shares, viral
}
