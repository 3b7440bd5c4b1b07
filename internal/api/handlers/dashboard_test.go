package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"restock-cycle-analyser/internal/api/dto"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/store"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()

	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}
	delay := func(v int) *int { return &v }

	s, err := store.New([]*domain.Delivery{
		{DeliveryID: 1, Date: day("2024-03-04"), Department: "Grocery", DelayReason: domain.NoDelayReason, Stockout: domain.StockoutNo, DelayMinutes: delay(40)},
		{DeliveryID: 2, Date: day("2024-03-04"), Department: "Produce", DelayReason: "Traffic", Stockout: domain.StockoutYes, DelayMinutes: delay(120)},
		{DeliveryID: 3, Date: day("2024-03-05"), Department: "Dairy", DelayReason: "Weather", Stockout: domain.StockoutNo, DelayMinutes: delay(80)},
	})
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	return s
}

func postDashboard(t *testing.T, h *DashboardHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/dashboard", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Build(rec, req)
	return rec
}

func TestDashboardBuild(t *testing.T) {
	h := &DashboardHandler{Store: testStore(t)}

	rec := postDashboard(t, h, `{"stockout":"All"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Empty {
		t.Fatal("expected a non-empty result")
	}
	if res.Metrics == nil || res.Metrics.TotalDeliveries != 3 {
		t.Errorf("metrics = %+v, want 3 total deliveries", res.Metrics)
	}
	if len(res.Charts) != 8 {
		t.Errorf("charts = %d, want 8", len(res.Charts))
	}
	if len(res.Deliveries) != 3 {
		t.Errorf("deliveries = %d rows, want 3", len(res.Deliveries))
	}
}

func TestDashboardBuildEmptyResultNotice(t *testing.T) {
	h := &DashboardHandler{Store: testStore(t)}

	rec := postDashboard(t, h, `{"departments":["Pharmacy"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Empty || res.Notice == "" {
		t.Fatalf("expected the empty-result notice, got %+v", res)
	}
	if res.Metrics != nil || len(res.Charts) != 0 {
		t.Fatal("empty result must short-circuit metrics and charts")
	}
}

func TestDashboardBuildBadRequests(t *testing.T) {
	h := &DashboardHandler{Store: testStore(t)}

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "unknown field", body: `{"departmnts":["Grocery"]}`},
		{name: "two objects", body: `{}{}`},
		{name: "bad date", body: `{"date_start":"03/04/2024"}`},
		{name: "inverted range", body: `{"date_start":"2024-03-05","date_end":"2024-03-04"}`},
		{name: "bad stockout mode", body: `{"stockout":"Sometimes"}`},
	}

	for _, tc := range tests {
		if rec := postDashboard(t, h, tc.body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestDashboardBuildMethodNotAllowed(t *testing.T) {
	h := &DashboardHandler{Store: testStore(t)}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Build(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestFilterOptions(t *testing.T) {
	h := &FilterHandler{Store: testStore(t)}

	req := httptest.NewRequest(http.MethodGet, "/filters", nil)
	rec := httptest.NewRecorder()
	h.Options(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res dto.FilterOptionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Departments) != 3 {
		t.Errorf("departments = %v, want 3 entries", res.Departments)
	}
	if res.DateMin != "2024-03-04" || res.DateMax != "2024-03-05" {
		t.Errorf("date bounds = %s..%s, want 2024-03-04..2024-03-05", res.DateMin, res.DateMax)
	}
	if len(res.StockoutModes) != 3 {
		t.Errorf("stockout modes = %v, want 3 entries", res.StockoutModes)
	}
}
