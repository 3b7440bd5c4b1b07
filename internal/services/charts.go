package services

import (
	"fmt"
	"restock-cycle-analyser/internal/domain"
	"sort"
)

// User-visible placeholder notes for views with nothing to aggregate.
const (
	noteNoData      = "No data available with the current filter settings."
	noteNoDelayData = "No delay data available with current filters."
	noteNoStockouts = "No stockouts observed with current filters."
)

// Fixed weekday order for the day-of-week view.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ChartPoint is one bar or line point. Value is nil for gaps
// (e.g. a weekday with no deliveries in the subset).
type ChartPoint struct {
	Label      string   `json:"label"`
	Value      *float64 `json:"value"`
	Annotation string   `json:"annotation,omitempty"`
}

// Chart is one render-ready aggregation view.
type Chart struct {
	Key    string       `json:"key"`
	Title  string       `json:"title"`
	Kind   string       `json:"kind"` // bar, barh or line
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []ChartPoint `json:"points"`
	Trend  *TrendLine   `json:"trend,omitempty"`
	Note   string       `json:"note,omitempty"`
}

// DelayReasonFrequency counts concrete delay reasons, most frequent
// first. Each bar carries its count and share of the delayed subset.
func DelayReasonFrequency(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "delay_reason_frequency",
		Title:  "Frequency of Delay Reasons",
		Kind:   "barh",
		XLabel: "Number of Occurrences",
		YLabel: "Delay Reason",
	}

	counts := map[string]int{}
	delayed := 0
	for _, d := range subset {
		if d.Delayed() {
			counts[d.DelayReason]++
			delayed++
		}
	}
	if delayed == 0 {
		c.Note = noteNoDelayData
		return c
	}

	reasons := sortedKeys(counts)
	// Descending by count; label order breaks ties deterministically.
	sort.SliceStable(reasons, func(i, j int) bool {
		return counts[reasons[i]] > counts[reasons[j]]
	})

	for _, r := range reasons {
		n := counts[r]
		c.Points = append(c.Points, ChartPoint{
			Label:      r,
			Value:      f64(float64(n)),
			Annotation: fmt.Sprintf("%d (%.1f%%)", n, float64(n)/float64(delayed)*100),
		})
	}
	return c
}

// AvgDelayByReason averages delay minutes per reason, sentinel
// included, shortest delays first.
func AvgDelayByReason(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "avg_delay_by_reason",
		Title:  "Average Delay Time by Reason",
		Kind:   "barh",
		XLabel: "Average Delay (minutes)",
		YLabel: "Delay Reason",
	}

	if !anyDelayed(subset) {
		c.Note = noteNoDelayData
		return c
	}

	c.Points = meanDelayPoints(subset, func(d *domain.Delivery) string { return d.DelayReason })
	return c
}

// AvgDelayByDepartment averages delay minutes per department,
// shortest delays first.
func AvgDelayByDepartment(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "avg_delay_by_department",
		Title:  "Average Delay Time per Department",
		Kind:   "barh",
		XLabel: "Average Delay (minutes)",
		YLabel: "Department",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	c.Points = meanDelayPoints(subset, func(d *domain.Delivery) string { return d.Department })
	return c
}

// StockoutCountByDepartment counts stockout deliveries per department,
// fewest first. Departments without a stockout do not appear.
func StockoutCountByDepartment(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "stockout_count_by_department",
		Title:  "Stockouts by Department",
		Kind:   "barh",
		XLabel: "Number of Stockouts",
		YLabel: "Department",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	counts := map[string]int{}
	for _, d := range subset {
		if d.StockoutObserved() {
			counts[d.Department]++
		}
	}
	if len(counts) == 0 {
		c.Note = noteNoStockouts
		return c
	}

	departments := sortedKeys(counts)
	sort.SliceStable(departments, func(i, j int) bool {
		return counts[departments[i]] < counts[departments[j]]
	})

	for _, dep := range departments {
		n := counts[dep]
		c.Points = append(c.Points, ChartPoint{
			Label:      dep,
			Value:      f64(float64(n)),
			Annotation: fmt.Sprintf("%d", n),
		})
	}
	return c
}

// StockoutPctByDepartment shows the share of deliveries with a
// stockout per department, lowest first.
func StockoutPctByDepartment(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "stockout_pct_by_department",
		Title:  "Stockout Percentage by Department",
		Kind:   "barh",
		XLabel: "Stockout Percentage (%)",
		YLabel: "Department",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	totals := map[string]int{}
	stockouts := map[string]int{}
	for _, d := range subset {
		totals[d.Department]++
		if d.StockoutObserved() {
			stockouts[d.Department]++
		}
	}

	pcts := map[string]float64{}
	for dep, n := range totals {
		pcts[dep] = float64(stockouts[dep]) / float64(n) * 100
	}

	departments := sortedKeys(totals)
	sort.SliceStable(departments, func(i, j int) bool {
		return pcts[departments[i]] < pcts[departments[j]]
	})

	for _, dep := range departments {
		c.Points = append(c.Points, ChartPoint{
			Label:      dep,
			Value:      f64(pcts[dep]),
			Annotation: fmt.Sprintf("%.1f%%", pcts[dep]),
		})
	}
	return c
}

// DelayByStockoutStatus compares average delay for deliveries with and
// without a stockout (at most two bars, No before Yes).
func DelayByStockoutStatus(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "delay_by_stockout_status",
		Title:  "Average Delay Time: Stockout vs. No Stockout",
		Kind:   "bar",
		XLabel: "Stockout Observed",
		YLabel: "Average Delay (minutes)",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	groups := groupBy(subset, func(d *domain.Delivery) string { return d.Stockout })
	for _, flag := range []string{domain.StockoutNo, domain.StockoutYes} {
		members, ok := groups[flag]
		if !ok {
			continue
		}
		mean := meanDelay(members)
		p := ChartPoint{Label: flag, Value: mean}
		if mean != nil {
			p.Annotation = fmt.Sprintf("%.1f min", *mean)
		}
		c.Points = append(c.Points, p)
	}
	return c
}

// DailyVolume counts deliveries per calendar date, in date order, with
// a best-fit trend overlay when there is more than one day.
func DailyVolume(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "daily_volume",
		Title:  "Daily Truck Volume Over Time",
		Kind:   "line",
		XLabel: "Date",
		YLabel: "Number of Deliveries",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	counts := map[string]int{}
	for _, d := range subset {
		counts[d.Date.Format("2006-01-02")]++
	}

	days := sortedKeys(counts)
	values := make([]float64, 0, len(days))
	for _, day := range days {
		n := counts[day]
		values = append(values, float64(n))
		c.Points = append(c.Points, ChartPoint{
			Label:      day,
			Value:      f64(float64(n)),
			Annotation: fmt.Sprintf("%d", n),
		})
	}

	if trend, ok := FitTrend(values); ok {
		c.Trend = &trend
	}
	return c
}

// AvgDelayByWeekday averages delay minutes per weekday in fixed
// Monday–Sunday order. Weekdays absent from the subset are rendered as
// gaps, not zeros.
func AvgDelayByWeekday(subset []*domain.Delivery) Chart {
	c := Chart{
		Key:    "avg_delay_by_weekday",
		Title:  "Average Delay by Day of Week",
		Kind:   "bar",
		XLabel: "Day of Week",
		YLabel: "Average Delay (minutes)",
	}

	if len(subset) == 0 {
		c.Note = noteNoData
		return c
	}

	groups := groupBy(subset, func(d *domain.Delivery) string { return d.Weekday() })
	for _, day := range weekdayOrder {
		members, ok := groups[day]
		if !ok {
			c.Points = append(c.Points, ChartPoint{Label: day})
			continue
		}
		mean := meanDelay(members)
		p := ChartPoint{Label: day, Value: mean}
		if mean != nil {
			p.Annotation = fmt.Sprintf("%.1f min", *mean)
		}
		c.Points = append(c.Points, p)
	}
	return c
}

// meanDelayPoints groups the subset by key, averages the known delay
// minutes per group, and orders groups ascending by mean. Groups whose
// delay is entirely unknown sort last and render as gaps.
func meanDelayPoints(subset []*domain.Delivery, key func(*domain.Delivery) string) []ChartPoint {
	groups := groupBy(subset, key)

	means := map[string]*float64{}
	labels := make([]string, 0, len(groups))
	for label, members := range groups {
		labels = append(labels, label)
		means[label] = meanDelay(members)
	}
	sort.Strings(labels)
	sort.SliceStable(labels, func(i, j int) bool {
		a, b := means[labels[i]], means[labels[j]]
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})

	points := make([]ChartPoint, 0, len(labels))
	for _, label := range labels {
		p := ChartPoint{Label: label, Value: means[label]}
		if p.Value != nil {
			p.Annotation = fmt.Sprintf("%.1f min", *p.Value)
		}
		points = append(points, p)
	}
	return points
}

// meanDelay averages the known delay minutes; nil when every member's
// delay is unknown.
func meanDelay(records []*domain.Delivery) *float64 {
	sum := 0
	n := 0
	for _, d := range records {
		if d.DelayMinutes != nil {
			sum += *d.DelayMinutes
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return f64(float64(sum) / float64(n))
}

func anyDelayed(records []*domain.Delivery) bool {
	for _, d := range records {
		if d.Delayed() {
			return true
		}
	}
	return false
}

func groupBy(records []*domain.Delivery, key func(*domain.Delivery) string) map[string][]*domain.Delivery {
	groups := map[string][]*domain.Delivery{}
	for _, d := range records {
		k := key(d)
		groups[k] = append(groups[k], d)
	}
	return groups
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func f64(v float64) *float64 { return &v }
