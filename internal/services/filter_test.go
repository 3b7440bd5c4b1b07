package services

import (
	"errors"
	"restock-cycle-analyser/internal/domain"
	"testing"
	"time"
)

func specDate(s string) *time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestApplyFilterSubsetSatisfiesSpec(t *testing.T) {
	records := fixtureWeek()
	spec := domain.FilterSpec{
		DateStart:   specDate("2024-03-04"),
		DateEnd:     specDate("2024-03-05"),
		Departments: []string{"Grocery", "Produce"},
		Stockout:    domain.StockoutOnly,
	}

	subset := ApplyFilter(records, spec)

	if len(subset) == 0 {
		t.Fatal("expected a non-empty subset")
	}
	if len(subset) > len(records) {
		t.Fatalf("subset larger than full set: %d > %d", len(subset), len(records))
	}
	for _, d := range subset {
		if !spec.Matches(d) {
			t.Errorf("delivery %d in subset does not satisfy the spec", d.DeliveryID)
		}
	}

	// Every excluded record must fail at least one predicate.
	in := map[int]bool{}
	for _, d := range subset {
		in[d.DeliveryID] = true
	}
	for _, d := range records {
		if !in[d.DeliveryID] && spec.Matches(d) {
			t.Errorf("delivery %d satisfies the spec but was excluded", d.DeliveryID)
		}
	}
}

func TestApplyFilterEmptySelectionIsPassThrough(t *testing.T) {
	records := fixtureWeek()

	unrestricted := ApplyFilter(records, domain.FilterSpec{})
	emptySelects := ApplyFilter(records, domain.FilterSpec{
		Departments:  []string{},
		DelayReasons: []string{},
	})

	if len(unrestricted) != len(records) {
		t.Fatalf("unrestricted filter dropped records: %d != %d", len(unrestricted), len(records))
	}
	if len(emptySelects) != len(unrestricted) {
		t.Fatalf("empty selections must pass through: %d != %d", len(emptySelects), len(unrestricted))
	}
}

func TestApplyFilterIdempotent(t *testing.T) {
	records := fixtureWeek()
	spec := domain.FilterSpec{Stockout: domain.StockoutNone}

	once := ApplyFilter(records, spec)
	twice := ApplyFilter(once, spec)

	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the subset: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("filtering twice reordered the subset at index %d", i)
		}
	}
}

func TestFilterDeliveriesEmptySignal(t *testing.T) {
	records := fixtureWeek()
	spec := domain.FilterSpec{Departments: []string{"Pharmacy"}}

	subset, err := FilterDeliveries(records, spec)
	if !errors.Is(err, ErrEmptySubset) {
		t.Fatalf("expected ErrEmptySubset, got subset=%v err=%v", subset, err)
	}
}
