package tui

import (
	"fmt"
	"math/rand"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/game"
)

// studioProject is one bookable studio session.
type studioProject struct {
	name       string
	ctype      game.ContentType
	energyCost int
	moneyCost  float64
}

var studioProjects = []studioProject{
	{"Record a track", game.ContentTrack, 20, 50},
	{"Cut an album", game.ContentAlbum, 40, 200},
	{"Shoot a music video", game.ContentVideo, 30, 500},
	{"Record a collaboration", game.ContentCollaboration, 25, 300},
}

// skillOrder fixes the skills screen row order.
var skillOrder = []game.SkillName{
	game.SkillLyrics, game.SkillFlow, game.SkillCharisma,
	game.SkillBusiness, game.SkillProduction,
}

// albumMinTracks is how many unreleased loose tracks an album needs.
const albumMinTracks = 2

// albumMaxTracks caps the tracklist of a studio album.
const albumMaxTracks = 5

var trackAdjectives = []string{
	"Midnight", "Golden", "Broken", "Electric", "Savage", "Lonely", "Neon", "Frozen",
}

var trackNouns = []string{
	"Hustle", "Dreams", "Streets", "Crown", "Flow", "Money", "Skyline", "Heart",
}

var albumWords = []string{
	"Chronicles", "Testament", "Blueprint", "Mixtape", "Sessions", "Chapters",
}

var collabPartners = []string{
	"Lil Cipher", "MC Vortex", "Young Sable", "DJ Parallax", "Big Meridian", "Trap Oracle",
}

func trackTitle(rng *rand.Rand) string {
	return fmt.Sprintf("%s %s",
		trackAdjectives[rng.Intn(len(trackAdjectives))],
		trackNouns[rng.Intn(len(trackNouns))])
}

func albumTitle(rng *rand.Rand, count int) string {
	return fmt.Sprintf("%s Vol. %d", albumWords[rng.Intn(len(albumWords))], count+1)
}

var postCaptions = []string{
	"Late night in the booth.",
	"New heat dropping soon.",
	"Grind never stops.",
	"Real ones know.",
	"Studio therapy.",
}

// selectStudio books the studio session behind the cursor.
func (m SessionModel) selectStudio() SessionModel {
	if m.cursor >= len(studioProjects) {
		return m
	}
	project := studioProjects[m.cursor]
	rng := m.engine.Rand()
	st := m.state

	switch project.ctype {
	case game.ContentTrack:
		title := trackTitle(rng)
		return m.apply(game.AddTrack{
			Title: title, EnergyCost: project.energyCost, MoneyCost: project.moneyCost,
		}, fmt.Sprintf("Recorded %q.", title))

	case game.ContentAlbum:
		var trackIDs []int64
		for _, t := range st.Tracks {
			if !t.Released && !t.InAlbum {
				trackIDs = append(trackIDs, t.ID)
			}
			if len(trackIDs) == albumMaxTracks {
				break
			}
		}
		if len(trackIDs) < albumMinTracks {
			m.status = warnStyle.Render(
				fmt.Sprintf("An album needs at least %d unreleased loose tracks.", albumMinTracks))
			return m
		}
		title := albumTitle(rng, len(st.Albums))
		return m.apply(game.AddAlbum{
			Title: title, TrackIDs: trackIDs,
			EnergyCost: project.energyCost, MoneyCost: project.moneyCost,
		}, fmt.Sprintf("Cut %q with %d tracks.", title, len(trackIDs)))

	case game.ContentVideo:
		var track *game.Track
		for i := range st.Tracks {
			if !st.Tracks[i].HasVideo {
				track = &st.Tracks[i]
				break
			}
		}
		if track == nil {
			m.status = warnStyle.Render("Every track already has a video. Record a new one.")
			return m
		}
		title := track.Title + " (Official Video)"
		return m.apply(game.AddVideo{
			Title: title, TrackID: track.ID,
			EnergyCost: project.energyCost, MoneyCost: project.moneyCost,
		}, fmt.Sprintf("Shot %q.", title))

	case game.ContentCollaboration:
		partner := collabPartners[rng.Intn(len(collabPartners))]
		title := fmt.Sprintf("%s (feat. %s)", trackTitle(rng), partner)
		return m.apply(game.AddCollaboration{
			Title: title, Partner: partner,
			EnergyCost: project.energyCost, MoneyCost: project.moneyCost,
		}, fmt.Sprintf("Linked up with %s.", partner))
	}
	return m
}

// concertEnergyCost is the energy price of playing any venue.
const concertEnergyCost = 30

// selectSocial posts to a platform or books a concert, depending on
// the cursor row.
func (m SessionModel) selectSocial() SessionModel {
	rng := m.engine.Rand()
	st := m.state
	cfg := m.engine.Balance()

	if m.cursor < len(game.Platforms) {
		platform := game.Platforms[m.cursor]
		followers := platformFollowers(st, platform)

		likes, comments, shares, viral := game.PostEngagement(cfg, followers, st.Player.Fame, rng)
		caption := postCaptions[rng.Intn(len(postCaptions))]

		status := fmt.Sprintf("Posted on %s: %d likes.", platform, likes)
		if viral {
			status = viralStyle.Render(fmt.Sprintf("Your %s post went VIRAL: %d likes!", platform, likes))
		}
		return m.apply(game.AddSocialPost{
			Platform: platform, Content: caption,
			Likes: likes, Comments: comments, Shares: shares, IsViral: viral,
		}, status)
	}

	idx := m.cursor - len(game.Platforms)
	if idx >= len(game.Venues) {
		return m
	}
	venue := game.Venues[idx]
	if st.Player.CareerLevelID < venue.MinLevel {
		m.status = warnStyle.Render(
			fmt.Sprintf("%s books level %d acts and up.", venue.Name, venue.MinLevel))
		return m
	}

	concert := game.PlanConcert(cfg, st.Player.Fame, st.Player.Fans,
		st.Player.Skills.Charisma, venue, rng)
	status := fmt.Sprintf("Played %s for %d people.", venue.Name, concert.Attendance)
	if concert.SoldOut {
		status = viralStyle.Render(fmt.Sprintf("SOLD OUT %s!", venue.Name))
	}
	return m.apply(game.AddConcert{Concert: concert, EnergyCost: concertEnergyCost}, status)
}

// platformFollowers returns the audience size on one platform.
func platformFollowers(st *game.State, p game.Platform) int64 {
	switch p {
	case game.PlatformRapGram:
		return st.Player.Social.RapGram.Followers
	case game.PlatformRapTube:
		return st.Player.Social.RapTube.Subscribers
	case game.PlatformRapify:
		return st.Player.Social.Rapify.Listeners
	case game.PlatformRikTok:
		return st.Player.Social.RikTok.Followers
	}
	return 0
}
