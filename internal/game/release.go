package game

import (
	"fmt"
	"math"
)

// contentRef points at a content item found by id, whatever list it
// lives in.
type contentRef struct {
	title    string
	quality  int
	released *bool
	relID    *int64
}

// findContent locates a content item by type and id. Returns nil when
// the id does not exist in the matching collection.
func findContent(st *State, typ ContentType, id int64) *contentRef {
	switch typ {
	case ContentTrack:
		for i := range st.Tracks {
			if st.Tracks[i].ID == id {
				t := &st.Tracks[i]
				return &contentRef{t.Title, t.Quality, &t.Released, &t.ReleaseID}
			}
		}
	case ContentAlbum:
		for i := range st.Albums {
			if st.Albums[i].ID == id {
				a := &st.Albums[i]
				return &contentRef{a.Title, a.Quality, &a.Released, &a.ReleaseID}
			}
		}
	case ContentVideo:
		for i := range st.Videos {
			if st.Videos[i].ID == id {
				v := &st.Videos[i]
				return &contentRef{v.Title, v.Quality, &v.Released, &v.ReleaseID}
			}
		}
	case ContentCollaboration:
		for i := range st.Collabs {
			if st.Collabs[i].ID == id {
				c := &st.Collabs[i]
				return &contentRef{c.Title, c.Quality, &c.Released, &c.ReleaseID}
			}
		}
	}
	return nil
}

// gainKindFor maps a content type to its fame/fan gain kind.
func gainKindFor(typ ContentType) GainKind {
	switch typ {
	case ContentAlbum:
		return GainAlbum
	case ContentCollaboration:
		return GainCollaboration
	default:
		return GainTrack
	}
}

// followerKindFor maps a content type to its follower growth kind.
func followerKindFor(typ ContentType) FollowerKind {
	switch typ {
	case ContentTrack:
		return FollowerSingle
	case ContentAlbum:
		return FollowerAlbum
	default:
		return FollowerBase
	}
}

// viewValueFor returns the per-view earnings value at release time.
func (e *Engine) viewValueFor(typ ContentType) float64 {
	switch typ {
	case ContentVideo:
		return e.cfg.Release.VideoViewValue
	case ContentAlbum:
		return e.cfg.Release.AlbumViewValue
	default:
		return e.cfg.Release.TrackViewValue
	}
}

// applyReleaseContent publishes a content item: progression gains from
// the work's quality, an expected-streams debut scaled by a viral roll,
// and a new Release record tracking it from here on. The content id is
// validated before anything is touched; releasing twice is rejected.
func (e *Engine) applyReleaseContent(st *State, act ReleaseContent) error {
	ref := findContent(st, act.Type, act.ContentID)
	if ref == nil {
		return fmt.Errorf("%w: %s %d", ErrContentNotFound, act.Type, act.ContentID)
	}
	if *ref.released {
		return fmt.Errorf("%w: %s %d", ErrAlreadyReleased, act.Type, act.ContentID)
	}

	p := &st.Player
	quality := ref.quality
	prevLevelID := p.CareerLevelID

	// Progression gains first; reach below is computed from the
	// post-gain stats so a release benefits from its own buzz.
	p.Fame = clampStat(p.Fame + FameGain(e.cfg, gainKindFor(act.Type), quality, prevLevelID))
	p.Reputation = clampStat(p.Reputation + ReputationGain(e.cfg,
		RepKindForQuality(e.cfg, quality), quality, p.ConsistencyScore))

	p.Fans += FanGrowth(e.cfg, p.Fame, p.Reputation, gainKindFor(act.Type))
	followerGain := FollowerGrowth(e.cfg, p.Fame, p.Reputation, followerKindFor(act.Type))

	streams := ExpectedStreams(e.cfg, p.Fame, p.Reputation, p.Fans, quality)

	var albumSales int64
	if act.Type == ContentAlbum {
		albumSales = AlbumSales(e.cfg, streams)
	}

	viral := ViralPotential(e.cfg, quality,
		e.cfg.Viral.ReleaseTiming, e.cfg.Viral.ReleaseTrends, e.rng.Float64())
	streams = int64(math.Floor(float64(streams) * viral.Multiplier))

	salesRevenue := float64(albumSales) * e.cfg.Release.AlbumSalePrice
	earnings := float64(streams)*e.viewValueFor(act.Type) + salesRevenue

	rel := Release{
		ID:              st.nextID(),
		SourceID:        act.ContentID,
		Type:            act.Type,
		Title:           ref.title,
		QualityRating:   quality,
		Views:           streams,
		Streams:         streams,
		AlbumSales:      albumSales,
		Earnings:        earnings,
		WeeklyViews:     streams,
		DailyViews:      streams / 7,
		MonthlyViews:    streams,
		PeakWeeklyViews: streams,
		History: []WeekSample{
			{Week: p.CareerWeek, Views: streams, Total: streams, Earnings: earnings},
		},
		IsViral:     viral.IsViral,
		ReleaseWeek: p.CareerWeek,
		ReleaseYear: p.Year,
	}
	if viral.IsViral {
		span := e.cfg.Release.ChartWorstRank - e.cfg.Release.ChartBestRank + 1
		rel.ChartPosition = e.cfg.Release.ChartBestRank + e.rng.Intn(span)
	}
	st.Releases = append(st.Releases, rel)

	*ref.released = true
	*ref.relID = rel.ID

	// Release cadence: frequent drops push the score toward 1.0, long
	// gaps let it fall back toward the floor.
	gap := p.CareerWeek - p.LastReleaseWeek
	if gap <= e.cfg.Consistency.WindowWeeks {
		p.ConsistencyScore = math.Min(e.cfg.Consistency.Max, p.ConsistencyScore+e.cfg.Consistency.Reward)
	} else {
		p.ConsistencyScore = math.Max(e.cfg.Consistency.Min, p.ConsistencyScore-e.cfg.Consistency.Penalty)
	}
	p.LastReleaseWeek = p.CareerWeek
	p.TotalReleases++

	// Platform exposure follows the release type: videos land on
	// RapTube, audio on Rapify.
	if act.Type == ContentVideo {
		p.Social.RapTube.Videos++
		p.Social.RapTube.TotalViews += streams
		p.Social.RapTube.Subscribers += followerGain
	} else {
		p.Social.Rapify.Tracks++
		p.Social.Rapify.TotalStreams += streams
		p.Social.Rapify.Listeners += followerGain
	}

	switch act.Type {
	case ContentVideo:
		e.credit(st, earnings, &st.Earnings.Video)
	case ContentAlbum:
		e.credit(st, earnings-salesRevenue, &st.Earnings.Streaming)
		e.credit(st, salesRevenue, &st.Earnings.AlbumSales)
	default:
		e.credit(st, earnings, &st.Earnings.Streaming)
	}
	p.NetWorth += earnings

	st.Stats.TotalStreams += streams
	st.Stats.TotalAlbumSales += albumSales

	p.recomputeLevel()
	if p.CareerLevelID > prevLevelID {
		e.notify(st, NoticeLevelUp, "Level up!",
			fmt.Sprintf("You are now a %s.", p.Level().Name))
	}
	if viral.IsViral {
		e.notify(st, NoticeViral, "Gone viral!",
			fmt.Sprintf("%q is everywhere right now.", ref.title))
	}
	e.notify(st, NoticeRelease, "New release",
		fmt.Sprintf("%q is out: %d streams in week one, $%.0f earned.", ref.title, streams, earnings))
	return nil
}

// applyAnnounceRelease runs a promo push for an existing release:
// social reach converts into extra views, earnings and followers, and
// two promo posts hit the feeds.
func (e *Engine) applyAnnounceRelease(st *State, act AnnounceRelease) error {
	rel := st.ReleaseByID(act.ReleaseID)
	if rel == nil {
		return fmt.Errorf("%w: %d", ErrReleaseNotFound, act.ReleaseID)
	}
	if rel.Announced {
		return fmt.Errorf("%w: %d", ErrAlreadyAnnounced, act.ReleaseID)
	}

	p := &st.Player
	cfg := e.cfg.Announce

	reach := float64(p.Fans + p.Social.RapGram.Followers)
	fraction := cfg.ViewFractionMin + e.rng.Float64()*(cfg.ViewFractionMax-cfg.ViewFractionMin)
	views := int64(math.Floor(reach * fraction))
	earnings := float64(views) * cfg.EarningsPerView

	rel.Views += views
	rel.WeeklyViews += views
	rel.Earnings += earnings
	rel.Announced = true

	p.Fans += int64(float64(views) / cfg.ViewsPerFan)
	p.Social.RapGram.Followers += int64(float64(views) / cfg.ViewsPerFollower)
	p.Fame = clampStat(p.Fame + int(float64(views)/cfg.ViewsPerFame))
	p.recomputeLevel()

	switch rel.Type {
	case ContentVideo:
		e.credit(st, earnings, &st.Earnings.Video)
	default:
		e.credit(st, earnings, &st.Earnings.Streaming)
	}
	p.NetWorth += earnings

	promo := fmt.Sprintf("%s OUT NOW! Link in bio.", rel.Title)
	for _, platform := range []Platform{PlatformRapGram, PlatformRikTok} {
		st.Posts = append(st.Posts, SocialPost{
			ID:        st.nextID(),
			Platform:  platform,
			Content:   promo,
			Likes:     views / 20,
			Comments:  views / 400,
			Shares:    views / 200,
			ContentID: rel.SourceID,
			Week:      p.Week,
			Year:      p.Year,
		})
	}
	p.Social.RapGram.Posts++
	p.Social.RikTok.Videos++

	e.notify(st, NoticeRelease, "Announcement",
		fmt.Sprintf("Promo for %q reached %d people.", rel.Title, views))
	return nil
}
