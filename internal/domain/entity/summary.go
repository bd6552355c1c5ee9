package entity

// SummaryRow represents one consolidated line of the inventory report.
// The csv tags define the report header and its column order.
type SummaryRow struct {
	ServiceTag             string `json:"service_tag" csv:"serviceTag"`
	ProductLineDescription string `json:"product_line_description" csv:"productLineDescription"`
	ShipDate               string `json:"ship_date" csv:"shipDate"`
	ActiveWarranties       string `json:"active_warranties" csv:"Active_Warranties"`
	AllComponents          string `json:"all_components" csv:"All_Components"`
}

// RunSummary agrega os números finais de uma execução.
type RunSummary struct {
	TotalTags     int      `json:"total_tags"`
	Processed     int      `json:"processed"`
	Skipped       int      `json:"skipped"`
	SkippedTags   []string `json:"skipped_tags,omitempty"`
	ReportPath    string   `json:"report_path"`
	FailedLogPath string   `json:"failed_log_path"`
	ExportedPaths []string `json:"exported_paths,omitempty"`
}
