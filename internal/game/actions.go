package game

// Action is the engine's only input surface: a tagged union of player
// intents. Hosts construct actions and hand them to Engine.Apply.
type Action interface {
	// Name identifies the action kind for logging.
	Name() string
}

// CreateCharacter starts a new career.
type CreateCharacter struct {
	StageName string
	AvatarID  int
	City      string
}

func (CreateCharacter) Name() string { return "createCharacter" }

// PlayerPatch is a partial player update; nil fields are left alone.
type PlayerPatch struct {
	StageName  *string
	AvatarID   *int
	Fame       *int
	Reputation *int
	Fans       *int64
	NetWorth   *float64
	Energy     *int
}

// UpdatePlayer shallow-merges a patch into the player profile. Fame and
// reputation writes are clamped and refresh the career level from the
// merged values.
type UpdatePlayer struct {
	Patch PlayerPatch
}

func (UpdatePlayer) Name() string { return "updatePlayer" }

// AddTrack records a new track in the studio.
type AddTrack struct {
	Title      string
	Quality    int // 1-10; 0 means derive from skills
	EnergyCost int
	MoneyCost  float64
}

func (AddTrack) Name() string { return "addTrack" }

// AddAlbum assembles an album from recorded tracks.
type AddAlbum struct {
	Title      string
	TrackIDs   []int64
	Quality    int
	EnergyCost int
	MoneyCost  float64
}

func (AddAlbum) Name() string { return "addAlbum" }

// AddVideo films a music video, optionally for an existing track.
type AddVideo struct {
	Title      string
	TrackID    int64
	Quality    int
	EnergyCost int
	MoneyCost  float64
}

func (AddVideo) Name() string { return "addVideo" }

// AddCollaboration records a joint work with another artist.
type AddCollaboration struct {
	Title      string
	Partner    string
	Quality    int
	EnergyCost int
	MoneyCost  float64
}

func (AddCollaboration) Name() string { return "addCollaboration" }

// AddConcert books and performs a show. The concert arrives fully
// planned (see PlanConcert); the engine applies its progression and
// earnings effects.
type AddConcert struct {
	Concert    Concert
	EnergyCost int
}

func (AddConcert) Name() string { return "addConcert" }

// AddSocialPost publishes a post with pre-rolled engagement (see
// PostEngagement). The engine derives the fan/follower/fame bonus.
type AddSocialPost struct {
	Platform  Platform
	Content   string
	Likes     int64
	Comments  int64
	Shares    int64
	IsViral   bool
	ContentID int64
}

func (AddSocialPost) Name() string { return "addSocialPost" }

// ReleaseContent publishes a recorded content item, creating its
// Release record.
type ReleaseContent struct {
	ContentID int64
	Type      ContentType
}

func (ReleaseContent) Name() string { return "releaseContent" }

// AnnounceRelease promotes an existing release across social platforms.
type AnnounceRelease struct {
	ReleaseID int64
}

func (AnnounceRelease) Name() string { return "announceRelease" }

// AdvanceWeek runs the weekly tick simulation.
type AdvanceWeek struct{}

func (AdvanceWeek) Name() string { return "advanceWeek" }

// WorkJob performs a side job for money.
type WorkJob struct {
	JobID string
}

func (WorkJob) Name() string { return "workJob" }

// PurchaseItem buys a shop item.
type PurchaseItem struct {
	ItemID string
}

func (PurchaseItem) Name() string { return "purchaseItem" }

// UpgradeSkill raises one skill by a point for energy.
type UpgradeSkill struct {
	Skill SkillName
}

func (UpgradeSkill) Name() string { return "upgradeSkill" }

// ClearNotifications empties the notification feed.
type ClearNotifications struct{}

func (ClearNotifications) Name() string { return "clearNotifications" }

// MarkNotificationsRead flags every notification as shown and read.
type MarkNotificationsRead struct{}

func (MarkNotificationsRead) Name() string { return "markNotificationsRead" }
