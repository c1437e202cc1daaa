package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// execute runs the CLI with fresh flag state in an empty working directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	outputPath, pretty, mode, kind, sheet, chartsDir, listDemos = "", false, "", "", "", "", false
	t.Setenv("CHARMING_LOG_LEVEL", "off")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeBook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Month", "North", "South"},
		{"Jan", 10, 20},
		{"Feb", 15, 25},
		{"Mar", 12, 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestDemoList(t *testing.T) {
	out, err := execute(t, "demo", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "distribution-of-electricity\n")
	assert.Contains(t, out, "smoothed-line\n")
}

func TestDemoPrintsChart(t *testing.T) {
	out, err := execute(t, "demo", "smoothed-line")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "series")
	assert.Contains(t, doc, "xAxis")
}

func TestDemoUnknown(t *testing.T) {
	_, err := execute(t, "demo", "nope")
	assert.ErrorContains(t, err, "unknown demo")
}

func TestImportTable(t *testing.T) {
	book := writeBook(t)

	out, err := execute(t, "import", book, "--kind", "bar")
	require.NoError(t, err)

	var doc struct {
		BookName string `json:"book_name"`
		Charts   []struct {
			Sheet  string `json:"sheet"`
			Option struct {
				Series []struct {
					Type string    `json:"type"`
					Name string    `json:"name"`
					Data []float64 `json:"data"`
				} `json:"series"`
			} `json:"option"`
		} `json:"charts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "sales.xlsx", doc.BookName)
	require.Len(t, doc.Charts, 1)
	assert.Equal(t, "Sheet1", doc.Charts[0].Sheet)
	require.Len(t, doc.Charts[0].Option.Series, 2)
	assert.Equal(t, "bar", doc.Charts[0].Option.Series[0].Type)
	assert.Equal(t, "North", doc.Charts[0].Option.Series[0].Name)
	assert.Equal(t, []float64{20, 25, 30}, doc.Charts[0].Option.Series[1].Data)
}

func TestImportChartsDir(t *testing.T) {
	book := writeBook(t)
	dir := filepath.Join(t.TempDir(), "charts")

	out, err := execute(t, "import", book, "--charts-dir", dir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "Sheet1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"line"`)
}

func TestImportInvalidMode(t *testing.T) {
	book := writeBook(t)
	_, err := execute(t, "import", book, "--mode", "pictures")
	assert.ErrorContains(t, err, "invalid mode")
}

func TestImportMissingFile(t *testing.T) {
	_, err := execute(t, "import", "missing.xlsx")
	assert.ErrorContains(t, err, "file not found")
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Q1_Chart_1", sanitizeFilename("Q1 Chart 1"))
	assert.Equal(t, "a_b_c", sanitizeFilename("a/b:c"))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
