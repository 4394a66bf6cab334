package model

// Chart time frames.
const (
	TimeFrame24H = "24H"
	TimeFrame7D  = "7D"
	TimeFrame30D = "30D"
)

func ValidChartTimeFrame(tf string) bool {
	return tf == TimeFrame24H || tf == TimeFrame7D || tf == TimeFrame30D
}

// Leaderboard time frames.
const (
	TimeFrameDaily   = "daily"
	TimeFrameWeekly  = "weekly"
	TimeFrameMonthly = "monthly"
)

func ValidLeaderboardTimeFrame(tf string) bool {
	return tf == TimeFrameDaily || tf == TimeFrameWeekly || tf == TimeFrameMonthly
}

// ChartData is the synthetic four-series activity dataset. The series are
// presentation filler, not measured activity; each time frame is generated
// once per process and memoized.
type ChartData struct {
	TimeFrame          string   `json:"timeFrame,omitempty"`
	Labels             []string `json:"labels"`
	CoreDopamine       []int    `json:"coreDopamine"`
	LiquidationMoments []int    `json:"liquidationMoments"`
	ChillPotent        []int    `json:"chillPotent"`
	FunFastHits        []int    `json:"funFastHits"`
}
