package workbook

import "testing"

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]string
		want   Region
		wantOK bool
	}{
		{
			name:   "empty",
			rows:   nil,
			wantOK: false,
		},
		{
			name: "offset table",
			rows: [][]string{
				{},
				{"", "Month", "Sales"},
				{"", "Jan", "10"},
				{"", "Feb", "12"},
			},
			want:   Region{R1: 2, C1: 2, R2: 4, C2: 3},
			wantOK: true,
		},
		{
			name:   "single row",
			rows:   [][]string{{"a", "b", "c"}},
			wantOK: false,
		},
		{
			name:   "single column",
			rows:   [][]string{{"a"}, {"b"}, {"c"}},
			wantOK: false,
		},
		{
			name:   "too few cells",
			rows:   [][]string{{"a", ""}, {"", "b"}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectRegion(tt.rows, DefaultTableParams())
			if ok != tt.wantOK {
				t.Fatalf("DetectRegion() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DetectRegion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDetectRegionDensity(t *testing.T) {
	rows := make([][]string, 20)
	rows[0] = []string{"a"}
	rows[19] = make([]string, 20)
	rows[19][19] = "b"
	rows[10] = []string{"", "", "", "c"}

	params := DefaultTableParams()
	if _, ok := DetectRegion(rows, params); ok {
		t.Error("Expected a sparse sheet to be rejected")
	}

	params.DensityMin = 0
	if _, ok := DetectRegion(rows, params); !ok {
		t.Error("Expected the sheet to pass with no density floor")
	}
}

func TestRegion(t *testing.T) {
	r := Region{R1: 1, C1: 1, R2: 10, C2: 4}
	if r.String() != "A1:D10" {
		t.Errorf("String() = %s, want A1:D10", r.String())
	}
	if r.Rows() != 10 || r.Cols() != 4 {
		t.Errorf("Rows/Cols = %d/%d, want 10/4", r.Rows(), r.Cols())
	}
}
