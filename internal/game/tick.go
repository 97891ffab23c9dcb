package game

import (
	"fmt"
	"math"
)

// advanceWeek runs the weekly simulation: calendar rollover, passive
// performance of every release, platform growth or inactivity decay,
// level change detection, milestone notifications and the money
// settlement. Step order matters; later steps consume totals
// accumulated by earlier ones.
func (e *Engine) advanceWeek(st *State) error {
	p := &st.Player
	cfg := e.cfg.Week

	// Cadence gap is measured against the pre-advance week.
	weeksSinceRelease := p.CareerWeek - p.LastReleaseWeek

	// Calendar rollover.
	p.Week++
	if p.Week > WeeksPerYear {
		p.Week = 1
		p.Year++
	}
	p.CareerWeek++
	p.Age = p.Year - StartYear + StartAge
	p.Month = int(math.Ceil(float64(p.Week) / 4.33))

	penalty, penalized := InactivityPenalty(e.cfg, weeksSinceRelease)

	// The pre-tick level scales this week's passive growth; it is not
	// refreshed until after the penalty/growth branch.
	level := LevelFor(p.Fame, p.Reputation)
	prevLevelID := level.ID

	// Passive performance of every live release.
	var weeklyViews, weeklyStreams int64
	var weeklyEarnings float64

	for i := range st.Releases {
		rel := &st.Releases[i]
		if rel.Views == 0 {
			continue
		}

		weeksOld := p.CareerWeek - rel.ReleaseWeek
		ageDecay := math.Max(cfg.AgeDecayFloor, 1-float64(weeksOld)*cfg.AgeDecayPerWeek)

		base := float64(cfg.BaseViewsMin + e.rng.Intn(cfg.BaseViewsMax-cfg.BaseViewsMin))
		qualityMult := math.Max(cfg.MinQualityFactor, float64(rel.QualityRating)/10)
		careerMult := 1 + float64(level.ID)*cfg.CareerBonus
		consistencyMult := p.ConsistencyScore
		fanEngagement := math.Min(1, float64(p.Fans)/float64(level.FanRangeHi))

		viralChance := cfg.ViralChanceBase
		if rel.PeakWeeklyViews > cfg.ViralPeakThreshold {
			viralChance = cfg.ViralChanceHot
		}
		viralMult := 1.0
		if e.rng.Float64() < viralChance {
			viralMult = cfg.ViralMultMin + e.rng.Float64()*(cfg.ViralMultMax-cfg.ViralMultMin)
		}

		gain := int64(math.Floor(base * qualityMult * careerMult * consistencyMult *
			fanEngagement * ageDecay * viralMult))

		viewValue := cfg.TrackViewValue
		switch rel.Type {
		case ContentVideo:
			viewValue = cfg.VideoViewValue
		case ContentAlbum:
			viewValue = cfg.AlbumViewValue
		}
		viewValue += float64(level.ID) * cfg.LevelViewBonus
		earned := float64(gain) * viewValue

		weeklyViews += gain
		weeklyEarnings += earned
		if rel.Type != ContentVideo {
			weeklyStreams += gain
		}

		rel.Views += gain
		if rel.Type != ContentVideo {
			rel.Streams += gain
		}
		rel.Earnings += earned
		rel.WeeklyViews = gain
		rel.DailyViews = gain / 7
		if gain > rel.PeakWeeklyViews {
			rel.PeakWeeklyViews = gain
		}

		rel.History = append(rel.History, WeekSample{
			Week:     p.CareerWeek,
			Views:    gain,
			Total:    rel.Views,
			Earnings: earned,
		})
		if keep := e.cfg.Retention.History; len(rel.History) > keep {
			rel.History = rel.History[len(rel.History)-keep:]
		}

		// Monthly views are the trailing four weeks of history.
		rel.MonthlyViews = 0
		for j := len(rel.History) - 1; j >= 0 && j >= len(rel.History)-4; j-- {
			rel.MonthlyViews += rel.History[j].Views
		}

		rel.Trending = gain > cfg.TrendingMin && gain < cfg.TrendingMax
		if rel.Views > cfg.ViralTotalViews || gain > cfg.ViralWeeklyViews {
			rel.IsViral = true
		}

		// A chart position is assigned once and never overwritten.
		if rel.ChartPosition == 0 {
			for _, tier := range e.cfg.Charts {
				if rel.Views > tier.MinViews && level.ID >= tier.MinLevel {
					span := tier.WorstRank - tier.BestRank + 1
					rel.ChartPosition = tier.BestRank + e.rng.Intn(span)
					break
				}
			}
		}
	}

	// Decay for the inactive, growth for the active. Never both.
	if penalized {
		p.Fame = clampStat(p.Fame + int(penalty.Fame))
		p.Reputation = clampStat(p.Reputation + int(penalty.Reputation))
		p.Fans -= int64(float64(p.Fans) * penalty.FanLoss)

		social := &p.Social
		social.RapGram.Followers -= int64(float64(social.RapGram.Followers) * penalty.FollowerLoss)
		social.RapTube.Subscribers -= int64(float64(social.RapTube.Subscribers) * penalty.FollowerLoss)
		social.Rapify.Listeners -= int64(float64(social.Rapify.Listeners) * penalty.FollowerLoss)
		social.RikTok.Followers -= int64(float64(social.RikTok.Followers) * penalty.FollowerLoss)

		e.notify(st, NoticeWarning, "Falling off",
			fmt.Sprintf("No releases for %d weeks. The streets are forgetting you.", weeksSinceRelease))
	} else {
		baseGrowth := float64(FollowerGrowth(e.cfg, p.Fame, p.Reputation, FollowerBase))
		levelMult := 1 + float64(level.ID)*cfg.FollowerLevelBonus

		social := &p.Social
		social.RapGram.Followers += int64(math.Floor(baseGrowth*e.cfg.Social.RapGram*levelMult)) +
			int64(math.Floor(float64(weeklyViews)*cfg.RapGramViewFactor))
		social.RapTube.Subscribers += int64(math.Floor(baseGrowth * e.cfg.Social.RapTube * levelMult))
		social.Rapify.Listeners += int64(math.Floor(baseGrowth * e.cfg.Social.Rapify * levelMult))
		social.RikTok.Followers += int64(math.Floor(baseGrowth * e.cfg.Social.RikTok * levelMult))

		social.RapTube.TotalViews += weeklyViews
		social.Rapify.TotalStreams += weeklyStreams

		naturalFans := float64(FanGrowth(e.cfg, p.Fame, p.Reputation, GainBase))
		p.Fans += int64(math.Floor(naturalFans * cfg.NaturalFanFactor * levelMult))
	}

	// Level change against the post-branch stats.
	p.recomputeLevel()
	if p.CareerLevelID > prevLevelID {
		e.notify(st, NoticeLevelUp, "Level up!",
			fmt.Sprintf("You are now a %s.", p.Level().Name))
	} else if p.CareerLevelID < prevLevelID {
		e.notify(st, NoticeDecline, "Career decline",
			fmt.Sprintf("You dropped back to %s.", p.Level().Name))
	}

	// Milestone notifications, each at most once per release.
	for i := range st.Releases {
		rel := &st.Releases[i]
		if rel.IsViral && !rel.ViralNotified {
			rel.ViralNotified = true
			e.notify(st, NoticeViral, "Viral hit",
				fmt.Sprintf("%q is blowing up with %d views this week!", rel.Title, rel.WeeklyViews))
		}
		if rel.ChartPosition > 0 && rel.ChartPosition <= 10 && !rel.ChartNotified {
			rel.ChartNotified = true
			e.notify(st, NoticeChart, "Chart hit",
				fmt.Sprintf("%q entered the charts at #%d!", rel.Title, rel.ChartPosition))
		}
	}

	if weeklyEarnings > cfg.EarningsNoticeMin {
		e.notify(st, NoticeEarnings, "Weekly earnings",
			fmt.Sprintf("Your catalog earned $%.2f this week.", weeklyEarnings))
	}

	// Settlement: fresh energy, this week's totals replace last week's,
	// streaming/video split on the passive income.
	p.Energy = 100
	st.Earnings.ThisWeek = weeklyEarnings
	st.Earnings.Total += weeklyEarnings
	st.Earnings.Streaming += weeklyEarnings * cfg.StreamingShare
	st.Earnings.Video += weeklyEarnings * (1 - cfg.StreamingShare)
	st.Stats.TotalStreams += weeklyStreams

	p.NetWorth += weeklyEarnings
	if p.NetWorth < 0 {
		p.NetWorth = 0
	}
	return nil
}
