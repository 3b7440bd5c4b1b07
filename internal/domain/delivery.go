package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel delay reason for deliveries that arrived without incident.
// The loader guarantees DelayReason is never empty, so downstream
// grouping never has to handle a null-like value.
const NoDelayReason = "None"

// Stockout Observed column values as they appear in the source dataset.
const (
	StockoutYes = "Yes"
	StockoutNo  = "No"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// The dataset records times with "HH:MM" granularity only.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" literal into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse time of day: %q is not in HH:MM form", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parse time of day: hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parse time of day: minute in %q: %w", s, err)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse time of day: %q is out of range", s)
	}

	return TimeOfDay(h*60 + m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Represents a single truck delivery observed during one restock cycle.
// Records are loaded once from the source dataset and never mutated;
// all analysis works over filtered views of the full set.
type Delivery struct {
	DeliveryID     int
	Date           time.Time // calendar date at UTC midnight
	TruckArrival   *TimeOfDay
	UnloadingStart *TimeOfDay
	ShelfStock     *TimeOfDay
	Department     string
	DelayReason    string // never empty; NoDelayReason when absent in source
	Stockout       string // StockoutYes or StockoutNo
	DelayMinutes   *int   // nil when arrival or shelf-stock time is missing
}

// ComputeDelayMinutes derives the delay between truck arrival and
// shelf-stock time. A negative raw difference means the cycle crossed
// midnight, so one full day is added; the result is always >= 0.
// Returns nil when either time is missing.
func ComputeDelayMinutes(arrival, shelfStock *TimeOfDay) *int {
	if arrival == nil || shelfStock == nil {
		return nil
	}

	d := int(*shelfStock) - int(*arrival)
	if d < 0 {
		d += minutesPerDay
	}
	return &d
}

// A delivery counts as delayed when the source recorded a concrete reason.
func (d *Delivery) Delayed() bool {
	return d.DelayReason != NoDelayReason
}

func (d *Delivery) StockoutObserved() bool {
	return d.Stockout == StockoutYes
}

// Weekday name ("Monday" .. "Sunday") of the delivery date.
func (d *Delivery) Weekday() string {
	return d.Date.Weekday().String()
}
