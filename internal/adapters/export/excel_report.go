package export

import (
	"context"
	"fmt"
	"io"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/platform/obs"
	"restock-cycle-analyser/internal/services"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	deliveriesSheet = "Deliveries"
)

var deliveriesHeader = []string{
	"Date",
	"Truck Arrival Time",
	"Unloading Start Time",
	"Shelf Stock Time",
	"Department",
	"Delay Reason",
	"Stockout Observed",
	"Delay Minutes",
}

// WriteReport renders a dashboard result as an .xlsx workbook: a
// summary sheet with the KPI bundle and a sheet with the filtered rows
// (same column layout as the source dataset, plus the derived delay).
func WriteReport(ctx context.Context, w io.Writer, dash *services.Dashboard) (err error) {
	defer obs.Time(ctx, "export.WriteReport")(&err)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("write report: rename summary sheet: %w", err)
	}
	if err := writeSummary(f, dash.Metrics); err != nil {
		return err
	}

	if _, err := f.NewSheet(deliveriesSheet); err != nil {
		return fmt.Errorf("write report: create deliveries sheet: %w", err)
	}
	if err := writeDeliveries(f, dash.Deliveries); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write report: write workbook: %w", err)
	}

	return nil
}

func writeSummary(f *excelize.File, m services.Metrics) error {
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Deliveries", m.TotalDeliveries},
		{"Delayed Deliveries", m.DelayedDeliveries},
		{"Deliveries Delayed (%)", m.DelayedPct},
		{"Stockouts Observed", m.Stockouts},
		{"Stockouts Observed (%)", m.StockoutPct},
		{"Avg. Delay (minutes)", m.AvgDelayMinutes},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("write report: summary cell name: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write report: summary row %d: %w", i+1, err)
		}
	}

	return nil
}

func writeDeliveries(f *excelize.File, deliveries []*domain.Delivery) error {
	header := make([]any, len(deliveriesHeader))
	for i, h := range deliveriesHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(deliveriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write report: deliveries header: %w", err)
	}

	for i, d := range deliveries {
		row := []any{
			d.Date.Format("2006-01-02"),
			timeCell(d.TruckArrival),
			timeCell(d.UnloadingStart),
			timeCell(d.ShelfStock),
			d.Department,
			d.DelayReason,
			d.Stockout,
			delayCell(d.DelayMinutes),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("write report: deliveries cell name: %w", err)
		}
		if err := f.SetSheetRow(deliveriesSheet, cell, &row); err != nil {
			return fmt.Errorf("write report: deliveries row %d: %w", i+2, err)
		}
	}

	return nil
}

func timeCell(t *domain.TimeOfDay) any {
	if t == nil {
		return ""
	}
	return t.String()
}

func delayCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}
