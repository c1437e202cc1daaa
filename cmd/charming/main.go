// Package main provides the CLI entry point for charming-go.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/charming-go/internal/config"
	"github.com/ukaji3/charming-go/internal/gallery"
	"github.com/ukaji3/charming-go/internal/logger"
	"github.com/ukaji3/charming-go/pkg/charming"
	"github.com/ukaji3/charming-go/pkg/charming/output"
	"github.com/ukaji3/charming-go/pkg/charming/series"
)

var (
	outputPath string
	pretty     bool
	mode       string
	kind       string
	sheet      string
	chartsDir  string
	listDemos  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charming",
		Short: "Build chart documents for ECharts",
		Long: `charming-go builds ECharts option documents from Excel workbooks
or from the built-in demo gallery, and outputs JSON.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Build charts from an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVar(&mode, "mode", "", "Import mode: table, charts")
	importCmd.Flags().StringVar(&kind, "kind", "", "Series kind in table mode: "+strings.Join(series.Kinds(), ", "))
	importCmd.Flags().StringVar(&sheet, "sheet", "", "Only import this sheet")
	importCmd.Flags().StringVar(&chartsDir, "charts-dir", "", "Directory for per-chart output files")

	demoCmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Print a demo chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDemo,
	}
	demoCmd.Flags().BoolVar(&listDemos, "list", false, "List demo names")

	rootCmd.AddCommand(importCmd, demoCmd)
	return rootCmd
}

// setup loads configuration and applies flags on top of it.
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("pretty") {
		cfg.Output.Pretty = pretty
	}
	if mode != "" {
		cfg.Import.Mode = mode
	}
	if kind != "" {
		cfg.Import.Kind = kind
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	inputPath := args[0]

	var importMode charming.Mode
	switch cfg.Import.Mode {
	case "table":
		importMode = charming.ModeTable
	case "charts":
		importMode = charming.ModeCharts
	default:
		return fmt.Errorf("invalid mode: %s (must be table or charts)", cfg.Import.Mode)
	}

	log := logger.Get("import")
	opts := charming.ImportOptions{
		Mode:   importMode,
		Kind:   cfg.Import.Kind,
		Sheet:  sheet,
		Logger: &log,
	}

	wb, err := charming.Import(inputPath, opts)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	log.Info().Str("book", wb.BookName).Int("charts", len(wb.Charts)).Msg("import complete")

	if outputPath != "" || chartsDir == "" {
		if err := emit(cmd.OutOrStdout(), wb, cfg.Output.Pretty); err != nil {
			return err
		}
	}

	if chartsDir != "" {
		if err := writeChartFiles(wb, chartsDir, cfg.Output.Pretty); err != nil {
			return fmt.Errorf("failed to write chart files: %w", err)
		}
	}

	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	if listDemos || len(args) == 0 {
		for _, name := range gallery.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}

	chart, ok := gallery.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown demo: %s (see --list)", args[0])
	}
	return emit(cmd.OutOrStdout(), chart, cfg.Output.Pretty)
}

// emit writes v to --output, or w when unset.
func emit(w io.Writer, v any, pretty bool) error {
	if outputPath != "" {
		if err := output.WriteFile(outputPath, v, pretty); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// writeChartFiles writes one option document per chart, named after the
// sheet and, in charts mode, the chart.
func writeChartFiles(wb *charming.Workbook, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	seen := make(map[string]int)
	for _, sc := range wb.Charts {
		base := sc.Sheet
		if sc.Name != "" {
			base += "_" + sc.Name
		}
		base = sanitizeFilename(base)

		seen[base]++
		if n := seen[base]; n > 1 {
			base = fmt.Sprintf("%s_%d", base, n)
		}

		if err := output.WriteFile(filepath.Join(dir, base+".json"), sc.Chart, pretty); err != nil {
			return err
		}
	}

	return nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, name)
}
