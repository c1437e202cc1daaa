package workbook

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// PrintAreas returns the print areas defined in f, by sheet name.
func PrintAreas(f *excelize.File) map[string][]Region {
	result := make(map[string][]Region)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		// Several areas are separated by commas.
		for _, part := range strings.Split(dn.RefersTo, ",") {
			sheet, region, err := ParseReference(part)
			if err != nil {
				continue
			}
			result[sheet] = append(result[sheet], region)
		}
	}

	return result
}

// clipRows returns a copy of rows with every cell outside r emptied.
func clipRows(rows [][]string, r Region) [][]string {
	clipped := make([][]string, len(rows))
	for rowIdx, row := range rows {
		if rowIdx+1 < r.R1 || rowIdx+1 > r.R2 {
			continue
		}
		clipped[rowIdx] = make([]string, len(row))
		for colIdx, cell := range row {
			if colIdx+1 >= r.C1 && colIdx+1 <= r.C2 {
				clipped[rowIdx][colIdx] = cell
			}
		}
	}
	return clipped
}
