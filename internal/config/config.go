// Package config provides YAML-based balance configuration loading and
// difficulty presets for the career simulation.
package config

// Balance contains every tunable constant of the simulation. Values are
// grouped by the subsystem that consumes them.
type Balance struct {
	FameGain       FameGainConfig       `yaml:"fame_gain"`
	ReputationGain ReputationGainConfig `yaml:"reputation_gain"`
	FanGrowth      FanGrowthConfig      `yaml:"fan_growth"`
	FollowerGrowth FollowerGrowthConfig `yaml:"follower_growth"`
	Streams        StreamsConfig        `yaml:"streams"`
	Viral          ViralConfig          `yaml:"viral"`
	Inactivity     InactivityConfig     `yaml:"inactivity"`
	Consistency    ConsistencyConfig    `yaml:"consistency"`
	Release        ReleaseConfig        `yaml:"release"`
	Announce       AnnounceConfig       `yaml:"announce"`
	Week           WeekConfig           `yaml:"week"`
	Charts         []ChartTier          `yaml:"charts"`
	Skills         SkillsConfig         `yaml:"skills"`
	Social         SocialConfig         `yaml:"social"`
	Retention      RetentionConfig      `yaml:"retention"`
}

// FameGainConfig defines per-action fame base gains and scaling.
type FameGainConfig struct {
	Track         float64 `yaml:"track"`
	Album         float64 `yaml:"album"`
	Collaboration float64 `yaml:"collaboration"`
	Concert       float64 `yaml:"concert"`
	Viral         float64 `yaml:"viral"`

	// MinQualityFactor is the floor of the quality/10 multiplier.
	MinQualityFactor float64 `yaml:"min_quality_factor"`
	// LevelBonus is the per-career-level fame gain bonus fraction.
	LevelBonus float64 `yaml:"level_bonus"`
}

// ReputationGainConfig defines per-action reputation base gains and the
// quality/consistency multipliers applied on top.
type ReputationGainConfig struct {
	Consistent  float64 `yaml:"consistent"`
	HighQuality float64 `yaml:"high_quality"`
	Charity     float64 `yaml:"charity"`
	LowQuality  float64 `yaml:"low_quality"`
	Inactive    float64 `yaml:"inactive"`

	HighQualityMin      int     `yaml:"high_quality_min"`      // quality >= this -> 1.5x
	LowQualityMax       int     `yaml:"low_quality_max"`       // quality <= this -> -1x
	HighQualityFactor   float64 `yaml:"high_quality_factor"`   // default 1.5
	LowQualityFactor    float64 `yaml:"low_quality_factor"`    // default -1
	ConsistencyBonusMin float64 `yaml:"consistency_bonus_min"` // consistency >= this -> bonus
	ConsistencyFactor   float64 `yaml:"consistency_factor"`    // default 1.2
}

// FanGrowthConfig defines fan growth weights and per-action multipliers.
type FanGrowthConfig struct {
	FamePerPoint       float64 `yaml:"fame_per_point"`
	ReputationPerPoint float64 `yaml:"reputation_per_point"`

	Base          float64 `yaml:"base"`
	Concert       float64 `yaml:"concert"`
	Album         float64 `yaml:"album"`
	Viral         float64 `yaml:"viral"`
	Collaboration float64 `yaml:"collaboration"`
}

// FollowerGrowthConfig defines follower growth weights and per-action
// multipliers.
type FollowerGrowthConfig struct {
	FamePerPoint       float64 `yaml:"fame_per_point"`
	ReputationPerPoint float64 `yaml:"reputation_per_point"`

	Base    float64 `yaml:"base"`
	Single  float64 `yaml:"single"`
	Album   float64 `yaml:"album"`
	Concert float64 `yaml:"concert"`
	Viral   float64 `yaml:"viral"`
}

// StreamsConfig defines the expected-streams formula weights.
type StreamsConfig struct {
	FamePerPoint       float64 `yaml:"fame_per_point"`
	ReputationPerPoint float64 `yaml:"reputation_per_point"`
	FanDivisor         float64 `yaml:"fan_divisor"`
	MinQualityFactor   float64 `yaml:"min_quality_factor"`
	AlbumSalesDivisor  float64 `yaml:"album_sales_divisor"`
}

// ViralConfig defines the viral-roll weights for releases.
type ViralConfig struct {
	QualityWeight float64 `yaml:"quality_weight"`
	TimingWeight  float64 `yaml:"timing_weight"`
	TrendsWeight  float64 `yaml:"trends_weight"`
	LuckWeight    float64 `yaml:"luck_weight"`
	Threshold     float64 `yaml:"threshold"`

	// Multiplier = BaseMultiplier + chance*ChanceMultiplier when viral.
	BaseMultiplier   float64 `yaml:"base_multiplier"`
	ChanceMultiplier float64 `yaml:"chance_multiplier"`

	// Fixed timing/trends inputs used by the release transition.
	ReleaseTiming int `yaml:"release_timing"`
	ReleaseTrends int `yaml:"release_trends"`
}

// InactivityConfig defines the decay applied after long release gaps.
type InactivityConfig struct {
	ThresholdWeeks int     `yaml:"threshold_weeks"`
	Fame           float64 `yaml:"fame"`
	Reputation     float64 `yaml:"reputation"`
	FanLoss        float64 `yaml:"fan_loss"`
	FollowerLoss   float64 `yaml:"follower_loss"`
}

// ConsistencyConfig defines the release-cadence score bounds and steps.
type ConsistencyConfig struct {
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Reward      float64 `yaml:"reward"`
	Penalty     float64 `yaml:"penalty"`
	WindowWeeks int     `yaml:"window_weeks"`
}

// ReleaseConfig defines per-type earnings values at release time.
type ReleaseConfig struct {
	VideoViewValue float64 `yaml:"video_view_value"`
	AlbumViewValue float64 `yaml:"album_view_value"`
	TrackViewValue float64 `yaml:"track_view_value"`
	AlbumSalePrice float64 `yaml:"album_sale_price"`

	// Viral releases debut on the charts somewhere in this rank range.
	ChartBestRank  int `yaml:"chart_best_rank"`
	ChartWorstRank int `yaml:"chart_worst_rank"`
}

// AnnounceConfig defines the release-announcement promotion numbers.
type AnnounceConfig struct {
	ViewFractionMin  float64 `yaml:"view_fraction_min"`
	ViewFractionMax  float64 `yaml:"view_fraction_max"`
	EarningsPerView  float64 `yaml:"earnings_per_view"`
	ViewsPerFan      float64 `yaml:"views_per_fan"`
	ViewsPerFollower float64 `yaml:"views_per_follower"`
	ViewsPerFame     float64 `yaml:"views_per_fame"`
}

// WeekConfig defines the weekly tick simulation constants.
type WeekConfig struct {
	BaseViewsMin int `yaml:"base_views_min"`
	BaseViewsMax int `yaml:"base_views_max"`

	AgeDecayPerWeek  float64 `yaml:"age_decay_per_week"`
	AgeDecayFloor    float64 `yaml:"age_decay_floor"`
	MinQualityFactor float64 `yaml:"min_quality_factor"`
	CareerBonus      float64 `yaml:"career_bonus"`

	ViralChanceHot     float64 `yaml:"viral_chance_hot"`
	ViralChanceBase    float64 `yaml:"viral_chance_base"`
	ViralPeakThreshold int64   `yaml:"viral_peak_threshold"`
	ViralMultMin       float64 `yaml:"viral_mult_min"`
	ViralMultMax       float64 `yaml:"viral_mult_max"`

	VideoViewValue float64 `yaml:"video_view_value"`
	AlbumViewValue float64 `yaml:"album_view_value"`
	TrackViewValue float64 `yaml:"track_view_value"`
	LevelViewBonus float64 `yaml:"level_view_bonus"`

	TrendingMin      int64 `yaml:"trending_min"`
	TrendingMax      int64 `yaml:"trending_max"`
	ViralTotalViews  int64 `yaml:"viral_total_views"`
	ViralWeeklyViews int64 `yaml:"viral_weekly_views"`

	EarningsNoticeMin  float64 `yaml:"earnings_notice_min"`
	StreamingShare     float64 `yaml:"streaming_share"`
	FollowerLevelBonus float64 `yaml:"follower_level_bonus"`
	NaturalFanFactor   float64 `yaml:"natural_fan_factor"`
	RapGramViewFactor  float64 `yaml:"rapgram_view_factor"`
}

// ChartTier gates chart entry on cumulative views and career level.
// A release entering via this tier debuts between BestRank and WorstRank.
type ChartTier struct {
	MinViews  int64 `yaml:"min_views"`
	MinLevel  int   `yaml:"min_level"`
	BestRank  int   `yaml:"best_rank"`
	WorstRank int   `yaml:"worst_rank"`
}

// SkillCostStep defines the energy cost of a single-point upgrade for
// skills below the given level.
type SkillCostStep struct {
	Below int `yaml:"below"`
	Cost  int `yaml:"cost"`
}

// SkillsConfig defines skill bounds and the upgrade cost ladder.
type SkillsConfig struct {
	Max        int             `yaml:"max"`
	CostLadder []SkillCostStep `yaml:"cost_ladder"`
}

// SocialConfig defines per-platform weekly follower growth fractions.
type SocialConfig struct {
	RapGram float64 `yaml:"rapgram"`
	RapTube float64 `yaml:"raptube"`
	Rapify  float64 `yaml:"rapify"`
	RikTok  float64 `yaml:"riktok"`
}

// RetentionConfig bounds the per-release history and notification feed.
type RetentionConfig struct {
	History       int `yaml:"history"`
	Notifications int `yaml:"notifications"`
}
