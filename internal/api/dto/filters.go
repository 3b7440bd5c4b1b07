package dto

// FilterOptionsResponse describes the dataset's filterable dimensions:
// the front end builds its widgets (and their defaults) from this.
type FilterOptionsResponse struct {
	Departments   []string `json:"departments"`
	DelayReasons  []string `json:"delay_reasons"`
	DateMin       string   `json:"date_min"`
	DateMax       string   `json:"date_max"`
	StockoutModes []string `json:"stockout_modes"`
}
