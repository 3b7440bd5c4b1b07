package handlers

import (
	"fmt"
	"restock-cycle-analyser/internal/api/dto"
	"restock-cycle-analyser/internal/domain"
	"time"
)

// filterSpecFromRequest turns the wire-level widget values into a
// domain filter spec. Dates use the dataset's 2006-01-02 form and the
// range must be ordered; everything else passes through untouched
// (empty multi-selects mean "no restriction").
func filterSpecFromRequest(req dto.DashboardRequest) (domain.FilterSpec, error) {
	var spec domain.FilterSpec

	start, err := parseSpecDate(req.DateStart)
	if err != nil {
		return spec, fmt.Errorf("date_start: %w", err)
	}
	end, err := parseSpecDate(req.DateEnd)
	if err != nil {
		return spec, fmt.Errorf("date_end: %w", err)
	}
	if start != nil && end != nil && end.Before(*start) {
		return spec, fmt.Errorf("date_end must not be before date_start")
	}

	mode, err := domain.ParseStockoutMode(req.Stockout)
	if err != nil {
		return spec, err
	}

	spec.DateStart = start
	spec.DateEnd = end
	spec.Departments = req.Departments
	spec.DelayReasons = req.DelayReasons
	spec.Stockout = mode
	return spec, nil
}

func parseSpecDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", *s)
	}
	return &t, nil
}
