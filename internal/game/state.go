package game

// ContentType identifies the kind of a content item and its release.
type ContentType string

const (
	ContentTrack         ContentType = "track"
	ContentAlbum         ContentType = "album"
	ContentVideo         ContentType = "video"
	ContentCollaboration ContentType = "collaboration"
)

// SkillName identifies one of the five trainable skills.
type SkillName string

const (
	SkillLyrics     SkillName = "lyrics"
	SkillFlow       SkillName = "flow"
	SkillCharisma   SkillName = "charisma"
	SkillBusiness   SkillName = "business"
	SkillProduction SkillName = "production"
)

// Platform identifies one of the four social media platforms.
type Platform string

const (
	PlatformRapGram Platform = "rapgram"
	PlatformRapTube Platform = "raptube"
	PlatformRapify  Platform = "rapify"
	PlatformRikTok  Platform = "riktok"
)

// Platforms lists the social platforms in display order.
var Platforms = []Platform{PlatformRapGram, PlatformRapTube, PlatformRapify, PlatformRikTok}

// Cities an artist can start from.
var Cities = []string{
	"Atlanta", "New York", "Los Angeles", "Chicago", "Houston", "Memphis", "Detroit", "Miami",
}

// StartYear anchors the in-game calendar; age is derived from it.
const StartYear = 2020

// StartAge is the protagonist's age in StartYear.
const StartAge = 20

// WeeksPerYear is the length of the in-game year.
const WeeksPerYear = 52

// Skills holds the five trainable skill tracks, each 1-100.
type Skills struct {
	Lyrics     int `json:"lyrics"`
	Flow       int `json:"flow"`
	Charisma   int `json:"charisma"`
	Business   int `json:"business"`
	Production int `json:"production"`
}

// Get returns the value of the named skill.
func (s Skills) Get(name SkillName) int {
	switch name {
	case SkillLyrics:
		return s.Lyrics
	case SkillFlow:
		return s.Flow
	case SkillCharisma:
		return s.Charisma
	case SkillBusiness:
		return s.Business
	case SkillProduction:
		return s.Production
	}
	return 0
}

// set assigns the named skill. Unknown names are ignored.
func (s *Skills) set(name SkillName, value int) {
	switch name {
	case SkillLyrics:
		s.Lyrics = value
	case SkillFlow:
		s.Flow = value
	case SkillCharisma:
		s.Charisma = value
	case SkillBusiness:
		s.Business = value
	case SkillProduction:
		s.Production = value
	}
}

// RapGramAccount is a photo-sharing profile.
type RapGramAccount struct {
	Followers int64 `json:"followers"`
	Posts     int64 `json:"posts"`
}

// RapTubeAccount is a video channel.
type RapTubeAccount struct {
	Subscribers int64 `json:"subscribers"`
	Videos      int64 `json:"videos"`
	TotalViews  int64 `json:"totalViews"`
}

// RapifyAccount is a streaming-service artist profile.
type RapifyAccount struct {
	Listeners    int64 `json:"listeners"`
	Tracks       int64 `json:"tracks"`
	TotalStreams int64 `json:"totalStreams"`
}

// RikTokAccount is a short-video profile.
type RikTokAccount struct {
	Followers  int64 `json:"followers"`
	Videos     int64 `json:"videos"`
	TotalViews int64 `json:"totalViews"`
}

// SocialMedia bundles the four platform accounts.
type SocialMedia struct {
	RapGram RapGramAccount `json:"rapgram"`
	RapTube RapTubeAccount `json:"raptube"`
	Rapify  RapifyAccount  `json:"rapify"`
	RikTok  RikTokAccount  `json:"riktok"`
}

// Player is the protagonist's mutable profile.
type Player struct {
	StageName string `json:"stageName"`
	AvatarID  int    `json:"avatarId"`
	City      string `json:"city"`
	Age       int    `json:"age"`
	Year      int    `json:"year"`
	Week      int    `json:"week"`  // 1-52, wraps at year end
	Month     int    `json:"month"` // 1-12, derived from the week

	// CareerWeek is the absolute week index since game start. It never
	// wraps, so release ages and cadence gaps survive year rollover.
	CareerWeek int `json:"careerWeek"`

	Fame       int     `json:"fame"`       // 0-100
	Reputation int     `json:"reputation"` // 0-100
	Fans       int64   `json:"fans"`
	NetWorth   float64 `json:"netWorth"`
	Energy     int     `json:"energy"` // 0-100, refills on week advance

	// CareerLevelID is derived from fame and reputation and recomputed
	// on every change to either. Kept in the snapshot for display.
	CareerLevelID int `json:"careerLevelId"`

	LastReleaseWeek  int     `json:"lastReleaseWeek"` // CareerWeek of most recent release
	TotalReleases    int     `json:"totalReleases"`
	ConsistencyScore float64 `json:"consistencyScore"` // 0.3-1.0

	Skills Skills      `json:"skills"`
	Social SocialMedia `json:"socialMedia"`
}

// Level returns the player's current career level.
func (p *Player) Level() Level {
	return LevelByID(p.CareerLevelID)
}

// Track is a recorded song.
type Track struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Quality   int    `json:"quality"` // 1-10, fixed at creation
	Released  bool   `json:"released"`
	ReleaseID int64  `json:"releaseId,omitempty"`
	InAlbum   bool   `json:"inAlbum"`
	HasVideo  bool   `json:"hasVideo"`
	Week      int    `json:"week"`
	Year      int    `json:"year"`
}

// Album is a collection of tracks recorded as one work.
type Album struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Quality   int     `json:"quality"`
	Released  bool    `json:"released"`
	ReleaseID int64   `json:"releaseId,omitempty"`
	TrackIDs  []int64 `json:"trackIds,omitempty"`
	Week      int     `json:"week"`
	Year      int     `json:"year"`
}

// MusicVideo is a filmed video for a track.
type MusicVideo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Quality   int    `json:"quality"`
	Released  bool   `json:"released"`
	ReleaseID int64  `json:"releaseId,omitempty"`
	TrackID   int64  `json:"trackId,omitempty"`
	Week      int    `json:"week"`
	Year      int    `json:"year"`
}

// Collaboration is a joint work with another artist.
type Collaboration struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Partner   string `json:"partner"`
	Quality   int    `json:"quality"`
	Released  bool   `json:"released"`
	ReleaseID int64  `json:"releaseId,omitempty"`
	Week      int    `json:"week"`
	Year      int    `json:"year"`
}

// WeekSample is one entry of a release's performance history.
type WeekSample struct {
	Week     int     `json:"week"` // CareerWeek of the sample
	Views    int64   `json:"views"`
	Total    int64   `json:"total"`
	Earnings float64 `json:"earnings"`
}

// Release is the live, earning representation of published content.
// QualityRating is copied from the source content at release time and
// never changes afterwards.
type Release struct {
	ID            int64       `json:"id"`
	SourceID      int64       `json:"sourceId"`
	Type          ContentType `json:"type"`
	Title         string      `json:"title"`
	QualityRating int         `json:"qualityRating"`

	Views      int64   `json:"views"`
	Streams    int64   `json:"streams"`
	AlbumSales int64   `json:"albumSales"`
	Earnings   float64 `json:"earnings"`

	WeeklyViews     int64 `json:"weeklyViews"`
	DailyViews      int64 `json:"dailyViews"`
	MonthlyViews    int64 `json:"monthlyViews"`
	PeakWeeklyViews int64 `json:"peakWeeklyViews"`

	// History holds the most recent per-week samples, oldest evicted
	// beyond the configured retention (six months by default).
	History []WeekSample `json:"history"`

	Trending      bool `json:"trending"`
	IsViral       bool `json:"isViral"`
	ChartPosition int  `json:"chartPosition,omitempty"` // 0 = never charted
	Announced     bool `json:"announced"`

	ReleaseWeek int `json:"releaseWeek"` // CareerWeek of publication
	ReleaseYear int `json:"releaseYear"`

	// Notification guards so each milestone fires once.
	ViralNotified bool `json:"viralNotified,omitempty"`
	ChartNotified bool `json:"chartNotified,omitempty"`
}

// Concert is a completed performance event.
type Concert struct {
	ID         int64   `json:"id"`
	Venue      string  `json:"venue"`
	Capacity   int64   `json:"capacity"`
	Attendance int64   `json:"attendance"`
	Earnings   float64 `json:"earnings"`
	Quality    int     `json:"quality"`
	SoldOut    bool    `json:"soldOut"`
	Week       int     `json:"week"`
	Year       int     `json:"year"`
}

// SocialPost is a posted item on one platform.
type SocialPost struct {
	ID        int64    `json:"id"`
	Platform  Platform `json:"platform"`
	Content   string   `json:"content"`
	Likes     int64    `json:"likes"`
	Comments  int64    `json:"comments"`
	Shares    int64    `json:"shares"`
	IsViral   bool     `json:"isViral"`
	ContentID int64    `json:"contentId,omitempty"`
	Week      int      `json:"week"`
	Year      int      `json:"year"`
}

// NotificationType tags a notification for display.
type NotificationType string

const (
	NoticeRelease  NotificationType = "release"
	NoticeLevelUp  NotificationType = "levelup"
	NoticeDecline  NotificationType = "decline"
	NoticeViral    NotificationType = "viral"
	NoticeChart    NotificationType = "chart"
	NoticeEarnings NotificationType = "earnings"
	NoticeConcert  NotificationType = "concert"
	NoticePurchase NotificationType = "purchase"
	NoticeSkill    NotificationType = "skill"
	NoticeJob      NotificationType = "job"
	NoticeWarning  NotificationType = "warning"
)

// Notification is an ephemeral UI event. The feed is bounded; oldest
// entries are evicted.
type Notification struct {
	ID      int64            `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Week    int              `json:"week"`
	Year    int              `json:"year"`
	Shown   bool             `json:"shown"`
	Read    bool             `json:"read"`
}

// Earnings tracks money income, total and per channel. ThisWeek is
// replaced on every week advance.
type Earnings struct {
	Total      float64 `json:"total"`
	ThisWeek   float64 `json:"thisWeek"`
	Streaming  float64 `json:"streaming"`
	Video      float64 `json:"video"`
	Concerts   float64 `json:"concerts"`
	Merch      float64 `json:"merchandise"`
	AlbumSales float64 `json:"albumSales"`
}

// CareerStats holds monotonically non-decreasing lifetime totals.
type CareerStats struct {
	TotalStreams    int64 `json:"totalStreams"`
	TotalAlbumSales int64 `json:"totalAlbumSales"`
}

// State is the complete game state for one save. It is a plain tree of
// values (JSON-serializable, no cycles); release back-references are
// stored as ids.
type State struct {
	SaveID  string `json:"saveId"`
	Started bool   `json:"gameStarted"`

	Player Player `json:"player"`

	Tracks  []Track         `json:"tracks"`
	Albums  []Album         `json:"albums"`
	Videos  []MusicVideo    `json:"musicVideos"`
	Collabs []Collaboration `json:"collaborations"`

	Releases []Release    `json:"releases"`
	Concerts []Concert    `json:"concerts"`
	Posts    []SocialPost `json:"socialPosts"`

	Notifications []Notification `json:"notifications"`
	Earnings      Earnings       `json:"earnings"`
	Stats         CareerStats    `json:"careerStats"`

	// NextID backs deterministic id assignment for all entities.
	NextID int64 `json:"nextId"`
}

// nextID returns a fresh unique id for a new entity.
func (s *State) nextID() int64 {
	s.NextID++
	return s.NextID
}

// ReleaseByID returns a pointer into the release list, or nil.
func (s *State) ReleaseByID(id int64) *Release {
	for i := range s.Releases {
		if s.Releases[i].ID == id {
			return &s.Releases[i]
		}
	}
	return nil
}

// UnreadNotifications counts notifications not yet marked read.
func (s *State) UnreadNotifications() int {
	n := 0
	for i := range s.Notifications {
		if !s.Notifications[i].Read {
			n++
		}
	}
	return n
}

// clampStat bounds fame/reputation-style scalars to [0,100].
func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// recomputeLevel refreshes the derived career level. Must be called
// after every fame or reputation write.
func (p *Player) recomputeLevel() {
	p.CareerLevelID = LevelFor(p.Fame, p.Reputation).ID
}
