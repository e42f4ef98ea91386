package hunter

// DefaultSectors returns the built-in seed collection used at first run and
// whenever no readable saved state exists.
func DefaultSectors() []Sector {
	return []Sector{
		{
			ID:                 "us_ai_concepts",
			Name:               "AI 巨頭概念 (Server/CSP)",
			Phase:              Advancing,
			RotationRisk:       15,
			MarketCorrelation:  0.85,
			TotalChangePercent: 2.5,
			Stocks: []Stock{
				{ID: "2382", Name: "廣達", Price: 320.5, Change: 8.5, ChangePercent: 2.72, Volume: "22K", IsLeader: true, OpeningFiveMinChange: 1.5, VolumeRatio: 1.8, GapPercent: 1.2, ConfidenceScore: 60, DistributionRisk: 10, RelativeStrength: 1.2, HunterScore: 82, SupportPrice: 310, ResistancePrice: 335},
				{ID: "2317", Name: "鴻海", Price: 215.5, Change: 4.5, ChangePercent: 2.13, Volume: "85K", OpeningFiveMinChange: 1.0, VolumeRatio: 1.5, GapPercent: 0.8, ConfidenceScore: 55, DistributionRisk: 12, RelativeStrength: 0.8, HunterScore: 78, SupportPrice: 205, ResistancePrice: 225},
				{ID: "6669", Name: "緯穎", Price: 2450, Change: 95, ChangePercent: 4.03, Volume: "1,200", OpeningFiveMinChange: 2.5, VolumeRatio: 3.2, GapPercent: 1.8, ConfidenceScore: 92, DistributionRisk: 15, RelativeStrength: 2.5, HunterScore: 95, SupportPrice: 2350, ResistancePrice: 2550},
				{ID: "3231", Name: "緯創", Price: 125.5, Change: 3.5, ChangePercent: 2.87, Volume: "45K", OpeningFiveMinChange: 1.2, VolumeRatio: 2.5, GapPercent: 0.5, ConfidenceScore: 88, DistributionRisk: 20, RelativeStrength: 1.5, HunterScore: 89, SupportPrice: 118, ResistancePrice: 132},
			},
		},
		{
			ID:                 "thermal_mgmt",
			Name:               "散熱族群",
			Phase:              Climax,
			RotationRisk:       45,
			MarketCorrelation:  0.6,
			TotalChangePercent: 4.2,
			Stocks: []Stock{
				{ID: "3017", Name: "奇鋐", Price: 685, Change: 32, ChangePercent: 4.90, Volume: "8,500", IsLeader: true, OpeningFiveMinChange: 3.2, VolumeRatio: 4.2, GapPercent: 2.5, ConfidenceScore: 40, DistributionRisk: 65, IsStalling: true, RelativeStrength: 1.5, HunterScore: 45, SupportPrice: 650, ResistancePrice: 710},
				{ID: "3324", Name: "雙鴻", Price: 712, Change: 28, ChangePercent: 4.09, Volume: "4,200", OpeningFiveMinChange: 2.8, VolumeRatio: 3.8, GapPercent: 2.1, ConfidenceScore: 45, DistributionRisk: 55, RelativeStrength: 1.2, HunterScore: 52, SupportPrice: 680, ResistancePrice: 745},
				{ID: "3338", Name: "泰碩", Price: 72.5, Change: 6.5, ChangePercent: 9.85, Volume: "15K", OpeningFiveMinChange: 1.5, VolumeRatio: 8.5, GapPercent: 1.2, ConfidenceScore: 98, DistributionRisk: 30, RelativeStrength: 5.2, HunterScore: 92, SupportPrice: 68, ResistancePrice: 75},
			},
		},
		{
			ID:                 "leo_satellite",
			Name:               "低軌衛星 (LEO)",
			Phase:              Advancing,
			RotationRisk:       18,
			MarketCorrelation:  0.4,
			TotalChangePercent: 1.5,
			Stocks: []Stock{
				{ID: "3491", Name: "昇達科", Price: 285, Change: 5.5, ChangePercent: 1.97, Volume: "4,800", IsLeader: true, OpeningFiveMinChange: 1.2, VolumeRatio: 1.6, GapPercent: 0.8, ConfidenceScore: 65, DistributionRisk: 15, RelativeStrength: 0.5, HunterScore: 72, SupportPrice: 275, ResistancePrice: 305},
				{ID: "2312", Name: "金寶", Price: 32.5, Change: 1.2, ChangePercent: 3.83, Volume: "55K", OpeningFiveMinChange: 2.1, VolumeRatio: 4.5, GapPercent: 1.5, ConfidenceScore: 90, DistributionRisk: 25, RelativeStrength: 2.8, HunterScore: 94, SupportPrice: 30, ResistancePrice: 35},
				{ID: "6285", Name: "啟碁", Price: 165.5, Change: 2.5, ChangePercent: 1.53, Volume: "3,500", OpeningFiveMinChange: 0.5, VolumeRatio: 1.1, GapPercent: 0.2, ConfidenceScore: 70, DistributionRisk: 10, RelativeStrength: 0.2, HunterScore: 68, SupportPrice: 158, ResistancePrice: 175},
			},
		},
	}
}
