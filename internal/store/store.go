package store

import (
	"errors"
	"restock-cycle-analyser/internal/domain"
	"sort"
	"time"
)

// Store holds the full delivery dataset for the lifetime of the process.
// It is built once at startup and never mutated afterwards, so it is
// safe to share across request handlers without locking. Filtering
// produces fresh subsets; the backing records are read-only.
type Store struct {
	records      []*domain.Delivery
	departments  []string
	delayReasons []string
	minDate      time.Time
	maxDate      time.Time
}

// New builds the dataset store and precomputes the distinct department
// and delay-reason values plus the date bounds that drive the
// dashboard's default filter widgets.
func New(records []*domain.Delivery) (*Store, error) {
	if len(records) == 0 {
		return nil, errors.New("store: dataset must contain at least one record")
	}

	s := &Store{
		records:      records,
		departments:  distinct(records, func(d *domain.Delivery) string { return d.Department }),
		delayReasons: distinct(records, func(d *domain.Delivery) string { return d.DelayReason }),
		minDate:      records[0].Date,
		maxDate:      records[0].Date,
	}

	for _, d := range records[1:] {
		if d.Date.Before(s.minDate) {
			s.minDate = d.Date
		}
		if d.Date.After(s.maxDate) {
			s.maxDate = d.Date
		}
	}

	return s, nil
}

// Records returns the full record set. Callers must treat it as
// read-only; filtered views are new slices over the same records.
func (s *Store) Records() []*domain.Delivery { return s.records }

// Distinct department labels, sorted.
func (s *Store) Departments() []string { return s.departments }

// Distinct delay reasons (including the sentinel), sorted.
func (s *Store) DelayReasons() []string { return s.delayReasons }

// DateBounds returns the earliest and latest delivery dates.
func (s *Store) DateBounds() (min, max time.Time) { return s.minDate, s.maxDate }

func distinct(records []*domain.Delivery, key func(*domain.Delivery) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, 8)
	for _, d := range records {
		k := key(d)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
