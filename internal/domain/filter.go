package domain

import (
	"fmt"
	"time"
)

// StockoutMode selects how the stockout flag participates in filtering.
type StockoutMode int

const (
	StockoutAll StockoutMode = iota
	StockoutOnly
	StockoutNone
)

// ParseStockoutMode maps the dashboard's radio labels to a mode.
func ParseStockoutMode(s string) (StockoutMode, error) {
	switch s {
	case "", "All":
		return StockoutAll, nil
	case "Stockout":
		return StockoutOnly, nil
	case "No Stockout":
		return StockoutNone, nil
	}
	return StockoutAll, fmt.Errorf("parse stockout mode: unknown mode %q", s)
}

func (m StockoutMode) String() string {
	switch m {
	case StockoutOnly:
		return "Stockout"
	case StockoutNone:
		return "No Stockout"
	default:
		return "All"
	}
}

// FilterSpec describes one set of active dashboard filters.
// All dimensions combine with AND semantics. An empty Departments or
// DelayReasons selection is a pass-through, not an exclude-all: the
// dashboard's multi-selects default to everything selected, and
// clearing them means "no restriction".
type FilterSpec struct {
	DateStart    *time.Time
	DateEnd      *time.Time
	Departments  []string
	DelayReasons []string
	Stockout     StockoutMode
}

// Matches reports whether a single delivery satisfies every active
// predicate in the spec. The date range is inclusive on both ends.
func (s FilterSpec) Matches(d *Delivery) bool {
	if s.DateStart != nil && d.Date.Before(*s.DateStart) {
		return false
	}
	if s.DateEnd != nil && d.Date.After(*s.DateEnd) {
		return false
	}

	if len(s.Departments) > 0 && !contains(s.Departments, d.Department) {
		return false
	}
	if len(s.DelayReasons) > 0 && !contains(s.DelayReasons, d.DelayReason) {
		return false
	}

	switch s.Stockout {
	case StockoutOnly:
		if d.Stockout != StockoutYes {
			return false
		}
	case StockoutNone:
		if d.Stockout != StockoutNo {
			return false
		}
	}

	return true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
