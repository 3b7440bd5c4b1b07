package repositories

import (
	"encoding/csv"
	"fmt"
	"os"
	"restock-cycle-analyser/internal/domain"
	"strings"
	"time"
)

// Column order of the source logistics dataset.
var datasetHeader = []string{
	"Date",
	"Truck Arrival Time",
	"Unloading Start Time",
	"Shelf Stock Time",
	"Department",
	"Delay Reason",
	"Stockout Observed",
}

// Accepted layouts for the Date column.
var dateLayouts = []string{"2006-01-02", "01/02/2006"}

// ReadDatasetCSV loads and cleans the delivery dataset.
//
// Dates must parse (a bad date fails the load), but time-of-day values
// are recovered locally: an unparseable "HH:MM" cell becomes a nil
// marker and the record's delay stays unknown rather than failing the
// whole file. Missing delay reasons are normalized to the sentinel so
// grouping never sees an empty value.
func ReadDatasetCSV(path string) ([]*domain.Delivery, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: open %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: parse csv %q: %w", path, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("read dataset: %q must have a header and at least one data row", path)
	}

	header := records[0]
	if !headerMatches(header, datasetHeader) {
		return nil, fmt.Errorf("read dataset: header mismatch: expected %v, got %v", datasetHeader, header)
	}

	deliveries := make([]*domain.Delivery, 0, len(records)-1)
	for i, row := range records[1:] {
		if len(row) != len(datasetHeader) {
			return nil, fmt.Errorf("read dataset: row %d: expected %d columns, got %d", i+2, len(datasetHeader), len(row))
		}

		d, err := parseDeliveryRow(i+1, row)
		if err != nil {
			return nil, fmt.Errorf("read dataset: row %d: %w", i+2, err)
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func parseDeliveryRow(id int, row []string) (*domain.Delivery, error) {
	date, err := parseDate(row[0])
	if err != nil {
		return nil, err
	}

	department := strings.TrimSpace(row[4])
	if department == "" {
		return nil, fmt.Errorf("parse delivery: department must not be empty")
	}

	reason := strings.TrimSpace(row[5])
	if reason == "" {
		reason = domain.NoDelayReason
	}

	stockout, err := parseStockoutFlag(row[6])
	if err != nil {
		return nil, err
	}

	arrival := parseTimeOrNil(row[1])
	unloading := parseTimeOrNil(row[2])
	shelfStock := parseTimeOrNil(row[3])

	return &domain.Delivery{
		DeliveryID:     id,
		Date:           date,
		TruckArrival:   arrival,
		UnloadingStart: unloading,
		ShelfStock:     shelfStock,
		Department:     department,
		DelayReason:    reason,
		Stockout:       stockout,
		DelayMinutes:   domain.ComputeDelayMinutes(arrival, shelfStock),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse delivery: invalid date %q", s)
}

// parseTimeOrNil recovers from bad time cells with a missing marker.
func parseTimeOrNil(s string) *domain.TimeOfDay {
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return nil
	}
	return &t
}

func parseStockoutFlag(s string) (string, error) {
	switch strings.TrimSpace(s) {
	case domain.StockoutYes:
		return domain.StockoutYes, nil
	case domain.StockoutNo:
		return domain.StockoutNo, nil
	}
	return "", fmt.Errorf("parse delivery: stockout observed must be Yes or No, got %q", s)
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}
