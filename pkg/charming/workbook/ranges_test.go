package workbook

import (
	"errors"
	"testing"

	"github.com/ukaji3/charming-go/pkg/charming/datatype"
	"github.com/xuri/excelize/v2"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		want      Region
		wantErr   bool
	}{
		{"Sheet1!$B$2:$B$8", "Sheet1", Region{R1: 2, C1: 2, R2: 8, C2: 2}, false},
		{"'My Sheet'!$A$1:$C$3", "My Sheet", Region{R1: 1, C1: 1, R2: 3, C2: 3}, false},
		{"'Bob''s'!A1", "Bob's", Region{R1: 1, C1: 1, R2: 1, C2: 1}, false},
		{"(Sheet1!$D$4:$A$1)", "Sheet1", Region{R1: 1, C1: 1, R2: 4, C2: 4}, false},
		{"$A$1:$B$2", "", Region{}, true},
		{"Sheet1!garbage", "", Region{}, true},
		{"", "", Region{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, region, err := ParseReference(tt.ref)
			if tt.wantErr {
				if !errors.Is(err, ErrBadReference) {
					t.Fatalf("ParseReference(%q) error = %v, want ErrBadReference", tt.ref, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseReference(%q) failed: %v", tt.ref, err)
			}
			if sheet != tt.wantSheet {
				t.Errorf("sheet = %q, want %q", sheet, tt.wantSheet)
			}
			if region != tt.want {
				t.Errorf("region = %+v, want %+v", region, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Revenue")
	f.SetCellValue("Sheet1", "A2", "Q1")
	f.SetCellValue("Sheet1", "A3", "Q2")
	f.SetCellValue("Sheet1", "B2", 100)
	f.SetCellValue("Sheet1", "C2", 2.5)

	book := openBook(t, f)

	labels, err := ResolveLabels(book, "Sheet1!$A$2:$A$3")
	if err != nil {
		t.Fatalf("ResolveLabels failed: %v", err)
	}
	if len(labels) != 2 || labels[0] != "Q1" || labels[1] != "Q2" {
		t.Errorf("labels = %v", labels)
	}

	values, err := ResolveValues(book, "Sheet1!$B$2:$B$3")
	if err != nil {
		t.Fatalf("ResolveValues failed: %v", err)
	}
	if len(values) != 2 || values[0] != datatype.Number(100) || values[1] != datatype.Null {
		t.Errorf("values = %v", values)
	}

	// Row-major across a 2D range.
	values, err = ResolveValues(book, "Sheet1!$B$2:$C$2")
	if err != nil {
		t.Fatalf("ResolveValues failed: %v", err)
	}
	if len(values) != 2 || values[1] != datatype.Number(2.5) {
		t.Errorf("values = %v", values)
	}

	if name := ResolveName(book, "Sheet1!$A$1", "fallback"); name != "Revenue" {
		t.Errorf("ResolveName = %q, want Revenue", name)
	}
	if name := ResolveName(book, "", "fallback"); name != "fallback" {
		t.Errorf("ResolveName = %q, want fallback", name)
	}
	if name := ResolveName(book, "Sheet1!$Z$9", "fallback"); name != "fallback" {
		t.Errorf("ResolveName on empty cell = %q, want fallback", name)
	}

	if _, err := ResolveValues(book, "bogus"); !errors.Is(err, ErrBadReference) {
		t.Errorf("ResolveValues(bogus) error = %v", err)
	}
}

func TestResolveValuesNumberFormats(t *testing.T) {
	book := numberFormatBook(t)

	tests := []struct {
		ref  string
		want datatype.DataFrame
	}{
		{"Sheet1!$B$2:$B$3", datatype.DataFrame{datatype.Number(1234.5), datatype.Number(2345.75)}},
		{"Sheet1!$C$2:$C$3", datatype.DataFrame{datatype.Number(0.25), datatype.Number(0.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ResolveValues(book, tt.ref)
			if err != nil {
				t.Fatalf("ResolveValues(%q) failed: %v", tt.ref, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveValues(%q) = %v, want %v", tt.ref, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("value %d = %v (%T), want %v", i, got[i], got[i], tt.want[i])
				}
			}
		})
	}

	// Labels keep the displayed text.
	labels, err := ResolveLabels(book, "Sheet1!$B$2")
	if err != nil {
		t.Fatalf("ResolveLabels failed: %v", err)
	}
	if len(labels) != 1 || labels[0] != "1,234.50" {
		t.Errorf("ResolveLabels = %v, want [1,234.50]", labels)
	}
}
