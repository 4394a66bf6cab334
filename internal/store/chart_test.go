package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dopameter/dopameter_api/internal/model"
)

func TestGenerateChartDataLabels(t *testing.T) {
	// A Monday, so the 7D window runs Tue..Mon.
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		timeFrame  string
		labelCount int
		firstLabel string
		lastLabel  string
	}{
		{model.TimeFrame24H, 24, "0:00", "23:00"},
		{model.TimeFrame7D, 7, "Tue", "Mon"},
		{model.TimeFrame30D, 30, "1", "30"},
	}

	for _, tc := range testCases {
		t.Run(tc.timeFrame, func(t *testing.T) {
			data, err := generateChartData(tc.timeFrame, now)
			if err != nil {
				t.Fatalf("generateChartData returned error %v", err)
			}

			if len(data.Labels) != tc.labelCount {
				t.Fatalf("got %d labels; want %d", len(data.Labels), tc.labelCount)
			}
			if data.Labels[0] != tc.firstLabel {
				t.Errorf("first label = %q; want %q", data.Labels[0], tc.firstLabel)
			}
			if data.Labels[len(data.Labels)-1] != tc.lastLabel {
				t.Errorf("last label = %q; want %q", data.Labels[len(data.Labels)-1], tc.lastLabel)
			}

			for name, series := range map[string][]int{
				"coreDopamine":       data.CoreDopamine,
				"liquidationMoments": data.LiquidationMoments,
				"chillPotent":        data.ChillPotent,
				"funFastHits":        data.FunFastHits,
			} {
				if len(series) != tc.labelCount {
					t.Errorf("%s has %d points; want %d", name, len(series), tc.labelCount)
				}
				for i, v := range series {
					if v > 90 {
						t.Errorf("%s[%d] = %d exceeds the 90 cap", name, i, v)
					}
				}
			}
		})
	}

	if _, err := generateChartData("1Y", now); !errors.Is(err, ErrBadTimeFrame) {
		t.Errorf("unknown time frame returned %v; want ErrBadTimeFrame", err)
	}
}

func TestMemStoreChartDataMemoized(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	first, err := s.GetChartData(ctx, model.TimeFrame7D)
	if err != nil {
		t.Fatalf("GetChartData returned error %v", err)
	}
	second, err := s.GetChartData(ctx, model.TimeFrame7D)
	if err != nil {
		t.Fatalf("GetChartData returned error %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeat call regenerated the chart data")
	}

	if _, err := s.GetChartData(ctx, "weekly"); !errors.Is(err, ErrBadTimeFrame) {
		t.Errorf("chart lookup with leaderboard time frame returned %v; want ErrBadTimeFrame", err)
	}
}
