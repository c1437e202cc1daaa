package workbook

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestPrintAreas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$3,Sheet1!$D$1:$E$2",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	got := PrintAreas(openBook(t, f))
	want := map[string][]Region{
		"Sheet1": {
			{R1: 1, C1: 1, R2: 3, C2: 2},
			{R1: 1, C1: 4, R2: 2, C2: 5},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrintAreas() = %v, want %v", got, want)
	}
}

func TestReadTableHonoursPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Month")
	f.SetCellValue(sheetName, "B1", "Sales")
	f.SetCellValue(sheetName, "A2", "Jan")
	f.SetCellValue(sheetName, "B2", 10)
	f.SetCellValue(sheetName, "A3", "Feb")
	f.SetCellValue(sheetName, "B3", 12)
	// Notes outside the print area.
	f.SetCellValue(sheetName, "H10", "scratch")

	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$3",
		Scope:    sheetName,
	}); err != nil {
		t.Fatalf("SetDefinedName failed: %v", err)
	}

	table, err := ReadTable(openBook(t, f), sheetName, DefaultTableParams())
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table == nil {
		t.Fatal("Expected a table, got nil")
	}
	if got := table.Region.String(); got != "A1:B3" {
		t.Errorf("Region = %s, want A1:B3", got)
	}
}

func TestClipRows(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d", "e", "f"},
		{"g", "h", "i"},
	}
	got := clipRows(rows, Region{R1: 2, C1: 2, R2: 3, C2: 3})
	want := [][]string{
		nil,
		{"", "e", "f"},
		{"", "h", "i"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clipRows() = %v, want %v", got, want)
	}
	if rows[0][0] != "a" {
		t.Error("clipRows modified its input")
	}
}
