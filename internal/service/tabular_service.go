package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TabularService reads and writes positional tabular resources. CSV and
// Excel files are supported, chosen by file extension.
type TabularService struct{}

func NewTabularService() *TabularService {
	return &TabularService{}
}

// ReadRows returns every row of the resource at path, header included.
// A missing resource surfaces the underlying open error unmodified.
func (s *TabularService) ReadRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return s.readExcelRows(path)
	default:
		return s.readCSVRows(path)
	}
}

func (s *TabularService) readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

func (s *TabularService) readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return rows, nil
}

// WriteRows writes a header row followed by the data rows to path, creating
// parent directories as needed.
func (s *TabularService) WriteRows(path string, header []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return s.writeExcelRows(path, header, rows)
	default:
		return s.writeCSVRows(path, header, rows)
	}
}

func (s *TabularService) writeCSVRows(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	return nil
}

func (s *TabularService) writeExcelRows(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	for i, col := range header {
		cell := fmt.Sprintf("%s1", getColumnName(i))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", getColumnName(len(header)-1)), headerStyle)

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", getColumnName(colIdx), rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// getColumnName converts a zero-based column index to an Excel column name.
func getColumnName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
