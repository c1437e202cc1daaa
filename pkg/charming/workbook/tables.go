package workbook

// TableDetectionParams holds parameters for locating the data region of a sheet.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
	// MinRows and MinCols include the header row and category column.
	MinRows int
	MinCols int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
		MinRows:          2,
		MinCols:          2,
	}
}

// DetectRegion finds the table-like region of a sheet's rows, as returned by
// excelize's GetRows. It reports false when the sheet is empty or too sparse.
func DetectRegion(rows [][]string, params TableDetectionParams) (Region, bool) {
	if len(rows) == 0 {
		return Region{}, false
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Region{}, false
	}

	region := Region{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}
	if region.Rows() < params.MinRows || region.Cols() < params.MinCols {
		return Region{}, false
	}

	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return Region{}, false
	}

	totalCells := region.Rows() * region.Cols()
	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return Region{}, false
	}

	return region, true
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
