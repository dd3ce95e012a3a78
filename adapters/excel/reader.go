package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"stratasample/domain/population"
	"stratasample/ports"

	"github.com/xuri/excelize/v2"
)

// DataReader ingests population records from Excel and CSV files
type DataReader struct {
	config   Config
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(config Config) *DataReader {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if config.SheetName == "" {
		config.SheetName = "Sheet1"
	}
	return &DataReader{config: config, fileType: fileType}
}

// ReadEntries reads raw population entries in file order. Validation is the
// population store's job; this stage only maps columns to fields.
func (r *DataReader) ReadEntries() ([]population.RawEntry, error) {
	if _, err := os.Stat(r.config.FilePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.config.FilePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	return r.mapRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.config.SheetName, err)
	}
	log.Printf("[DataReader] %s read (%d rows)", r.config.SheetName, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[DataReader] CSV file read (%d rows)", len(rows))
	return rows, nil
}

// mapRows converts header-keyed string rows into raw population entries.
// Columns beyond id/stratum/cost are carried as attributes, opaque to the core.
func (r *DataReader) mapRows(rows [][]string) ([]population.RawEntry, error) {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	idIdx, err := r.columnIndex(headers, r.config.IDColumn)
	if err != nil {
		return nil, err
	}
	stratumIdx, err := r.columnIndex(headers, r.config.StratumColumn)
	if err != nil {
		return nil, err
	}
	costIdx, err := r.columnIndex(headers, r.config.CostColumn)
	if err != nil {
		return nil, err
	}

	entries := make([]population.RawEntry, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		// Skip fully blank rows (trailing rows are common in workbooks).
		if allBlank(row) {
			continue
		}

		costStr := cell(costIdx)
		cost := 0.0
		if costStr != "" {
			cost, err = strconv.ParseFloat(costStr, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: cost %q is not numeric", i+1, costStr)
			}
		}

		entry := population.RawEntry{
			ID:      cell(idIdx),
			Stratum: cell(stratumIdx),
			Cost:    cost,
		}

		for j, header := range headers {
			if j == idIdx || j == stratumIdx || j == costIdx || header == "" {
				continue
			}
			if v := cell(j); v != "" {
				if entry.Attributes == nil {
					entry.Attributes = make(map[string]string)
				}
				entry.Attributes[header] = v
			}
		}

		entries = append(entries, entry)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d entries)",
		strings.ToUpper(r.fileType), len(headers), len(entries))
	return entries, nil
}

func (r *DataReader) columnIndex(headers []string, name string) (int, error) {
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header row", name)
}

func allBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var _ ports.RecordReaderPort = (*DataReader)(nil)
