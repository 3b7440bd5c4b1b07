package services

import (
	"errors"
	"restock-cycle-analyser/internal/domain"
)

// Signals that no records match the active filters. Callers must
// short-circuit metric and chart computation: percentage metrics
// divide by the subset size.
var ErrEmptySubset = errors.New("filter deliveries: no records match the active filters")

// ApplyFilter returns the working subset: every record satisfying all
// predicates of the spec. The result is a fresh slice over the same
// immutable records, so filtering is idempotent and side-effect free.
func ApplyFilter(records []*domain.Delivery, spec domain.FilterSpec) []*domain.Delivery {
	subset := make([]*domain.Delivery, 0, len(records))
	for _, d := range records {
		if spec.Matches(d) {
			subset = append(subset, d)
		}
	}
	return subset
}

// FilterDeliveries applies the spec and signals an empty result
// distinctly via ErrEmptySubset.
func FilterDeliveries(records []*domain.Delivery, spec domain.FilterSpec) ([]*domain.Delivery, error) {
	subset := ApplyFilter(records, spec)
	if len(subset) == 0 {
		return nil, ErrEmptySubset
	}
	return subset, nil
}
