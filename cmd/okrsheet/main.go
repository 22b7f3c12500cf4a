// Package main provides the CLI entry point for okrsheet.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/config"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/inspect"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	outputPath   string
	configPath   string
	strict       bool
	verify       bool
	manifestPath string
	verbose      bool

	logger *zap.Logger
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00897B"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "okrsheet",
		Short: "Render the annual action plan to an Excel workbook",
		Long: `okrsheet writes the MotionVii SAAP 2026 plan (OKR summary, key results,
initiatives, structure guide and support tasks) to a formatted xlsx file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         o.run,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if o.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			o.logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
	}

	cmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: "+config.DefaultOutput+")")
	cmd.Flags().StringVar(&o.configPath, "config", "", "YAML configuration file")
	cmd.Flags().BoolVar(&o.strict, "strict", false, "Reject status and priority values without a color mapping")
	cmd.Flags().BoolVar(&o.verify, "verify", false, "Re-open the written file and check its layout")
	cmd.Flags().StringVar(&o.manifestPath, "manifest", "", "Write a JSON run manifest to this path")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	// Flags win over the configuration file.
	if cmd.Flags().Changed("output") {
		cfg.Output = o.outputPath
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = o.strict
	}

	opts := okrsheet.FromConfig(cfg)
	opts.Logger = o.logger

	report, err := okrsheet.Generate(opts)
	if err != nil {
		return err
	}

	manifest := &output.Manifest{Report: report}
	if o.verify {
		result, err := inspect.Verify(report.Path, report)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		manifest.Verified = result
		o.logger.Info("workbook verified", zap.String("path", report.Path), zap.Int("sheets", len(result.Sheets)))
	}

	if o.manifestPath != "" {
		if err := output.WriteFile(o.manifestPath, manifest); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), summary(report))
	return nil
}

// summary renders the confirmation printed after a successful run.
func summary(r *models.Report) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Sheet", "Rows", "Merges").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range r.Sheets {
		t.Row(s.Name, strconv.Itoa(s.BodyRows), strconv.Itoa(s.Merges))
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("Saved to: "+r.Path)+dimStyle.Render(" ("+humanize.Bytes(uint64(r.Size))+")"))
	fmt.Fprintf(&b, "  Objectives: %d\n", r.Objectives)
	fmt.Fprintf(&b, "  Key Results: %d\n", r.KeyResults)
	fmt.Fprintf(&b, "  Initiatives: %d\n", r.Initiatives)
	fmt.Fprintf(&b, "  Support Tasks: %d\n", r.SupportTasks)
	fmt.Fprintln(&b, t.Render())
	return b.String()
}
