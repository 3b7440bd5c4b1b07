package services

import (
	"context"
	"fmt"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/platform/obs"
)

// Dashboard is the render-ready result of one full recomputation pass:
// filter, KPI bundle, the eight aggregation views, and the working
// subset for the raw-data table.
type Dashboard struct {
	Metrics    Metrics
	Charts     []Chart
	Deliveries []*domain.Delivery
}

// BuildDashboard runs the whole pipeline for one filter spec. A spec
// that matches nothing returns ErrEmptySubset so the caller can show a
// single notice instead of eight empty charts.
func BuildDashboard(ctx context.Context, records []*domain.Delivery, spec domain.FilterSpec) (_ *Dashboard, err error) {
	defer obs.Time(ctx, "dashboard.Build")(&err)

	subset, err := FilterDeliveries(records, spec)
	if err != nil {
		return nil, err
	}

	metrics, err := ComputeMetrics(subset)
	if err != nil {
		return nil, fmt.Errorf("build dashboard: %w", err)
	}

	return &Dashboard{
		Metrics: metrics,
		Charts: []Chart{
			DelayReasonFrequency(subset),
			AvgDelayByReason(subset),
			AvgDelayByDepartment(subset),
			StockoutCountByDepartment(subset),
			StockoutPctByDepartment(subset),
			DelayByStockoutStatus(subset),
			DailyVolume(subset),
			AvgDelayByWeekday(subset),
		},
		Deliveries: subset,
	}, nil
}
