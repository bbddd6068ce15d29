package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gohappy/domain/happiness"
	"gohappy/internal"
	"gohappy/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Column positions fixed by the World Happiness Report layout: the two
// leading string columns, then numeric indicators.
const (
	countryHeader = "Country name"
	regionHeader  = "Regional indicator"
)

// DataReader loads a happiness dataset from a CSV or Excel file.
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
	logger   *internal.Logger
}

// NewDataReader creates a reader that picks the format from the file extension.
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger,
	}
}

// Read loads the file once and returns the immutable Dataset.
func (r *DataReader) Read() (*happiness.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.FileNotFound(r.filePath)
	}

	start := time.Now()
	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}

	ds, err := r.buildDataset(rows)
	if err != nil {
		return nil, err
	}

	r.logger.Info("[DataReader] loaded %s (%d countries, %d columns) in %.2fms",
		r.filePath, ds.Len(), ds.ColumnCount(), float64(time.Since(start).Nanoseconds())/1e6)
	return ds, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Field-count mismatches are reported per-row by buildDataset instead.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.MalformedDataf("failed to parse CSV file %s: %v", r.filePath, err)
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.MalformedDataf("failed to open Excel file %s: %v", r.filePath, err)
	}
	defer f.Close()

	// Always use Sheet1, matching the published workbook layout.
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.MalformedDataf("failed to read Sheet1 of %s: %v", r.filePath, err)
	}
	return rows, nil
}

// buildDataset converts raw string rows into a Dataset: header row first,
// country and region as the two leading columns, floats everywhere else.
func (r *DataReader) buildDataset(rows [][]string) (*happiness.Dataset, error) {
	if len(rows) < 2 {
		return nil, errors.MalformedData("dataset must have a header row and at least one data row")
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) < 3 {
		return nil, errors.MalformedDataf("header has %d columns, need %q, %q and at least one numeric column", len(header), countryHeader, regionHeader)
	}
	if header[0] != countryHeader || header[1] != regionHeader {
		return nil, errors.MalformedDataf("header must start with %q, %q; got %q, %q", countryHeader, regionHeader, header[0], header[1])
	}

	columnNames := header[2:]
	var countries, regions []string
	columns := make([][]float64, len(columnNames))

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue // blank line
		}
		if len(row) != len(header) {
			return nil, errors.MalformedDataf("row %d has %d fields, expected %d", i+1, len(row), len(header))
		}

		countries = append(countries, strings.TrimSpace(row[0]))
		regions = append(regions, strings.TrimSpace(row[1]))
		for j, cell := range row[2:] {
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.MalformedDataf("row %d, column %q: cannot parse %q as a number", i+1, columnNames[j], cell)
			}
			columns[j] = append(columns[j], value)
		}
	}

	if len(countries) == 0 {
		return nil, errors.MalformedData("dataset has no data rows")
	}

	return happiness.NewDataset(r.filePath, countries, regions, columnNames, columns)
}
