package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
)

var weekdayAbbrevs = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// generateChartData synthesizes the four activity series for a time frame.
// The numbers are presentation filler: each series is base +/- variance with
// a fifth of the points spiked upward and clamped at 90.
func generateChartData(timeFrame string, now time.Time) (model.ChartData, error) {
	var labels []string

	switch timeFrame {
	case model.TimeFrame24H:
		labels = make([]string, 24)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d:00", i)
		}
	case model.TimeFrame7D:
		today := int(now.Weekday())
		labels = make([]string, 7)
		for i := range labels {
			labels[i] = weekdayAbbrevs[(today-6+i+7)%7]
		}
	case model.TimeFrame30D:
		labels = make([]string, 30)
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i+1)
		}
	default:
		return model.ChartData{}, ErrBadTimeFrame
	}

	n := len(labels)
	return model.ChartData{
		TimeFrame:          timeFrame,
		Labels:             labels,
		CoreDopamine:       generateSeries(n, 35, 15),
		LiquidationMoments: generateSeries(n, 40, 20),
		ChillPotent:        generateSeries(n, 30, 10),
		FunFastHits:        generateSeries(n, 25, 15),
	}, nil
}

func generateSeries(n, base, variance int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = base + rand.Intn(2*variance+1) - variance
	}
	addSpikes(data)
	return data
}

func addSpikes(data []int) {
	spikeCount := len(data) / 5
	for i := 0; i < spikeCount; i++ {
		idx := rand.Intn(len(data))
		spiked := data[idx] + 20 + rand.Intn(10)
		if spiked > 90 {
			spiked = 90
		}
		data[idx] = spiked
	}
}
