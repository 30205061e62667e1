package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const outputDir = "./testdata"

func main() {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	writeRegistrationCSV()
	writeRegistrationExcel()
	writeDedupeCSV()
	writeRosterCSV()
}

// Registration batch with valid rows, a duplicate social ID, a numeric name
// and a short phone number.
var registrationRows = [][]string{
	{"First Name", "Middle Name", "Last Name", "Phone Number", "Social ID"},
	{"Jane", "Q", "Doe", "1234567890", "123456789"},
	{"John", "", "Smith", "0987654321", "987654321"},
	{"Alice", "M", "Brown", "1112223334", "123456789"}, // duplicate social ID
	{"12345", "", "Jones", "2223334445", "222333444"},  // numeric first name
	{"Carol", "", "White", "12345", "555666777"},       // short phone number
}

func writeRegistrationCSV() {
	path := filepath.Join(outputDir, "registrations.csv")
	if err := writeCSV(path, registrationRows); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeRegistrationExcel() {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := f.GetSheetName(0)

	for rowIdx, row := range registrationRows {
		for colIdx, value := range row {
			cell := fmt.Sprintf("%s%d", columnName(colIdx), rowIdx+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", columnName(len(registrationRows[0])-1)), headerStyle)

	path := filepath.Join(outputDir, "registrations.xlsx")
	if err := f.SaveAs(path); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeDedupeCSV() {
	rows := [][]string{
		{"ID", "First Name", "Last Name", "DOB"},
		{"7", "Jane", "Doe", "31011990"},
		{"7", "Janet", "Doe", "01021991"},
		{"7", "Janis", "Doe", "15121985"},
		{"1", "John", "Smith", "28021979"},
		{"2", "Alice", "Brown", "notadate"},
	}

	path := filepath.Join(outputDir, "accounts_dedupe.csv")
	if err := writeCSV(path, rows); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeRosterCSV() {
	rows := [][]string{
		{"First Name", "Last Name", "IP Address"},
		{"Jane", "Doe", "10.0.0.1"},
		{"John", "Smith", ""},
		{"Alice", "Brown", "192.168.1.20"},
	}

	path := filepath.Join(outputDir, "roster.csv")
	if err := writeCSV(path, rows); err != nil {
		fmt.Printf("Error writing %s: %v\n", path, err)
		return
	}
	fmt.Printf("Wrote %s\n", path)
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// columnName converts a zero-based column index to an Excel column name.
func columnName(index int) string {
	name := ""
	for index >= 0 {
		name = string(rune('A'+index%26)) + name
		index = index/26 - 1
	}
	return name
}
