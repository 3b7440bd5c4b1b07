package services

import (
	"errors"
	"restock-cycle-analyser/internal/domain"

	"github.com/shopspring/decimal"
)

// Metrics is the scalar KPI bundle shown above the charts.
// Percentages and the average are rounded to one decimal.
type Metrics struct {
	TotalDeliveries   int     `json:"total_deliveries"`
	DelayedDeliveries int     `json:"delayed_deliveries"`
	DelayedPct        float64 `json:"delayed_pct"`
	Stockouts         int     `json:"stockouts"`
	StockoutPct       float64 `json:"stockout_pct"`
	AvgDelayMinutes   float64 `json:"avg_delay_minutes"`
}

// ComputeMetrics aggregates the KPI bundle over the working subset.
// The subset must be non-empty: every percentage divides by its size.
func ComputeMetrics(subset []*domain.Delivery) (Metrics, error) {
	if len(subset) == 0 {
		return Metrics{}, errors.New("compute metrics: subset must not be empty")
	}

	total := len(subset)
	delayed := 0
	stockouts := 0
	delaySum := 0
	delayKnown := 0

	for _, d := range subset {
		if d.Delayed() {
			delayed++
		}
		if d.StockoutObserved() {
			stockouts++
		}
		if d.DelayMinutes != nil {
			delaySum += *d.DelayMinutes
			delayKnown++
		}
	}

	avgDelay := 0.0
	if delayKnown > 0 {
		avgDelay = float64(delaySum) / float64(delayKnown)
	}

	return Metrics{
		TotalDeliveries:   total,
		DelayedDeliveries: delayed,
		DelayedPct:        round1(float64(delayed) / float64(total) * 100),
		Stockouts:         stockouts,
		StockoutPct:       round1(float64(stockouts) / float64(total) * 100),
		AvgDelayMinutes:   round1(avgDelay),
	}, nil
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
