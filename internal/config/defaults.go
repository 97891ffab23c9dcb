package config

import (
	_ "embed"
)

//go:embed defaults/balance.yaml
var defaultBalanceYAML []byte

// DefaultBalance returns the shipped balance configuration.
func DefaultBalance() Balance {
	return Balance{
		FameGain: FameGainConfig{
			Track:            5,
			Album:            10,
			Collaboration:    15,
			Concert:          20,
			Viral:            25,
			MinQualityFactor: 0.5,
			LevelBonus:       0.1,
		},
		ReputationGain: ReputationGainConfig{
			Consistent:          5,
			HighQuality:         10,
			Charity:             5,
			LowQuality:          -10,
			Inactive:            -5,
			HighQualityMin:      7,
			LowQualityMax:       4,
			HighQualityFactor:   1.5,
			LowQualityFactor:    -1,
			ConsistencyBonusMin: 0.8,
			ConsistencyFactor:   1.2,
		},
		FanGrowth: FanGrowthConfig{
			FamePerPoint:       100,
			ReputationPerPoint: 50,
			Base:               1,
			Concert:            5,
			Album:              10,
			Viral:              15,
			Collaboration:      3,
		},
		FollowerGrowth: FollowerGrowthConfig{
			FamePerPoint:       200,
			ReputationPerPoint: 100,
			Base:               1,
			Single:             2,
			Album:              5,
			Concert:            3,
			Viral:              10,
		},
		Streams: StreamsConfig{
			FamePerPoint:       10000,
			ReputationPerPoint: 5000,
			FanDivisor:         2,
			MinQualityFactor:   0.3,
			AlbumSalesDivisor:  10,
		},
		Viral: ViralConfig{
			QualityWeight:    0.4,
			TimingWeight:     0.3,
			TrendsWeight:     0.2,
			LuckWeight:       0.1,
			Threshold:        0.7,
			BaseMultiplier:   2,
			ChanceMultiplier: 3,
			ReleaseTiming:    8,
			ReleaseTrends:    7,
		},
		Inactivity: InactivityConfig{
			ThresholdWeeks: 24,
			Fame:           -5,
			Reputation:     -5,
			FanLoss:        0.10,
			FollowerLoss:   0.05,
		},
		Consistency: ConsistencyConfig{
			Min:         0.3,
			Max:         1.0,
			Reward:      0.1,
			Penalty:     0.2,
			WindowWeeks: 12,
		},
		Release: ReleaseConfig{
			VideoViewValue: 0.08,
			AlbumViewValue: 0.25,
			TrackViewValue: 0.15,
			AlbumSalePrice: 2.5,
			ChartBestRank:  1,
			ChartWorstRank: 20,
		},
		Announce: AnnounceConfig{
			ViewFractionMin:  0.10,
			ViewFractionMax:  0.30,
			EarningsPerView:  0.05,
			ViewsPerFan:      100,
			ViewsPerFollower: 50,
			ViewsPerFame:     10000,
		},
		Week: WeekConfig{
			BaseViewsMin:       1000,
			BaseViewsMax:       4000,
			AgeDecayPerWeek:    0.03,
			AgeDecayFloor:      0.1,
			MinQualityFactor:   0.4,
			CareerBonus:        0.15,
			ViralChanceHot:     0.2,
			ViralChanceBase:    0.08,
			ViralPeakThreshold: 100000,
			ViralMultMin:       1.5,
			ViralMultMax:       3.5,
			VideoViewValue:     0.08,
			AlbumViewValue:     0.25,
			TrackViewValue:     0.18,
			LevelViewBonus:     0.02,
			TrendingMin:        50000,
			TrendingMax:        200000,
			ViralTotalViews:    2000000,
			ViralWeeklyViews:   200000,
			EarningsNoticeMin:  100,
			StreamingShare:     0.7,
			FollowerLevelBonus: 0.2,
			NaturalFanFactor:   0.1,
			RapGramViewFactor:  0.02,
		},
		Charts: []ChartTier{
			{MinViews: 5_000_000, MinLevel: 6, BestRank: 1, WorstRank: 10},
			{MinViews: 2_000_000, MinLevel: 4, BestRank: 1, WorstRank: 20},
			{MinViews: 500_000, MinLevel: 3, BestRank: 1, WorstRank: 50},
		},
		Skills: SkillsConfig{
			Max: 100,
			CostLadder: []SkillCostStep{
				{Below: 25, Cost: 2},
				{Below: 50, Cost: 4},
				{Below: 75, Cost: 6},
				{Below: 90, Cost: 8},
				{Below: 95, Cost: 12},
				{Below: 98, Cost: 16},
				{Below: 99, Cost: 25},
				{Below: 100, Cost: 100},
			},
		},
		Social: SocialConfig{
			RapGram: 0.3,
			RapTube: 0.25,
			Rapify:  0.4,
			RikTok:  0.35,
		},
		Retention: RetentionConfig{
			History:       24,
			Notifications: 20,
		},
	}
}
