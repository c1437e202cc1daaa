package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/xuri/excelize/v2"
)

// ErrBadReference is returned for a reference that is not Sheet!A1 or Sheet!A1:B2.
var ErrBadReference = errors.New("bad cell reference")

// ParseReference splits a chart formula reference such as 'My Sheet'!$B$2:$B$8
// into its sheet name and region. A single cell yields a one-cell region.
func ParseReference(ref string) (string, Region, error) {
	ref = strings.TrimSpace(ref)
	ref = strings.TrimPrefix(ref, "(")
	ref = strings.TrimSuffix(ref, ")")

	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return "", Region{}, fmt.Errorf("%w: %q", ErrBadReference, ref)
	}
	sheet := strings.Trim(ref[:idx], "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")

	area := parseRangeToArea(ref[idx+1:])
	if area == nil {
		return "", Region{}, fmt.Errorf("%w: %q", ErrBadReference, ref)
	}
	return sheet, *area, nil
}

// parseRangeToArea parses $A$1:$D$10 or $A$1.
func parseRangeToArea(rangeStr string) *Region {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &Region{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}

// ResolveLabels reads the formatted text of every cell in ref, row-major.
func ResolveLabels(f *excelize.File, ref string) ([]string, error) {
	return readCells(f, ref)
}

// readCells reads every cell in ref, row-major, passing opts to GetCellValue.
func readCells(f *excelize.File, ref string, opts ...excelize.Options) ([]string, error) {
	sheet, region, err := ParseReference(ref)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, region.Rows()*region.Cols())
	for row := region.R1; row <= region.R2; row++ {
		for col := region.C1; col <= region.C2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			v, err := f.GetCellValue(sheet, cell, opts...)
			if err != nil {
				return nil, err
			}
			labels = append(labels, v)
		}
	}
	return labels, nil
}

// ResolveValues reads every cell in ref as a data point, row-major.
// Cells are read without their number format; numeric text becomes a Number,
// empty cells become Null.
func ResolveValues(f *excelize.File, ref string) (datatype.DataFrame, error) {
	labels, err := readCells(f, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	frame := make(datatype.DataFrame, 0, len(labels))
	for _, l := range labels {
		frame = append(frame, ParseCell(l))
	}
	return frame, nil
}

// ResolveName returns the text of the first cell of ref, or fallback when
// ref is empty or cannot be read.
func ResolveName(f *excelize.File, ref, fallback string) string {
	if ref == "" {
		return fallback
	}
	labels, err := ResolveLabels(f, ref)
	if err != nil || len(labels) == 0 || labels[0] == "" {
		return fallback
	}
	return labels[0]
}
