package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"effsample/domain/core"
	"effsample/domain/sample"
	"effsample/ports"

	"github.com/xuri/excelize/v2"
)

var _ ports.VariableReader = (*DataReader)(nil)

// DataReader loads variable columns from Excel and CSV study files. The
// first row names the variables; every later row is one observation
// unit. The present-vs-missing decision for each cell happens here, once:
// a blank cell becomes an absent observation, a numeric cell (including
// "NaN") becomes a numeric observation, anything else stays categorical.
//
// Sentinel values like -999 or "NA" pass through as present values so
// the counters can be given a missing indicator explicitly.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given xlsx or csv file
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadVariables reads the file into named sequences, preserving column order
func (r *DataReader) ReadVariables() ([]core.VariableKey, map[core.VariableKey]sample.Sequence, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, nil, err
	}

	return buildSequences(rows)
}

// readExcelRows reads all rows from Sheet1
func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

// readCSVRows reads all records from the CSV file
func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows handled below
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}
	return rows, nil
}

// buildSequences turns header + data rows into fixed-length sequences.
// Short rows are padded with absent observations so every variable in
// one file has the same length.
func buildSequences(rows [][]string) ([]core.VariableKey, map[core.VariableKey]sample.Sequence, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("file has no header row")
	}

	header := rows[0]
	keys := make([]core.VariableKey, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		keys = append(keys, core.VariableKey(name))
	}

	dataRows := rows[1:]
	sequences := make(map[core.VariableKey]sample.Sequence, len(keys))
	for col, key := range keys {
		seq := make(sample.Sequence, len(dataRows))
		for row, record := range dataRows {
			if col >= len(record) {
				seq[row] = sample.Missing()
				continue
			}
			seq[row] = coerceCell(record[col])
		}
		sequences[key] = seq
	}

	return keys, sequences, nil
}

// coerceCell decides a single cell's observation
func coerceCell(raw string) sample.Observation {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sample.Missing()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return sample.Number(n)
	}
	return sample.String(trimmed)
}
