package excel

// Config holds column mapping for a population workbook or CSV file
type Config struct {
	FilePath      string `json:"file_path"`
	SheetName     string `json:"sheet_name"`
	IDColumn      string `json:"id_column"`
	StratumColumn string `json:"stratum_column"`
	CostColumn    string `json:"cost_column"`
}

// DefaultConfig returns the conventional column mapping
func DefaultConfig(filePath string) Config {
	return Config{
		FilePath:      filePath,
		SheetName:     "Sheet1",
		IDColumn:      "id",
		StratumColumn: "stratum",
		CostColumn:    "cost",
	}
}
