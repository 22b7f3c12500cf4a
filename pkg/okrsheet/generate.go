package okrsheet

import (
	"fmt"
	"reflect"

	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/config"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/builder"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/okr"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/writer"
	"go.uber.org/zap"
)

// Generate lays out the plan and writes it to opts.OutputPath.
// Filesystem errors from the write are returned unmodified.
func Generate(opts Options) (*models.Report, error) {
	if opts.OutputPath == "" {
		return nil, ErrNoOutput
	}
	log := opts.logger()

	wb, err := Build(opts)
	if err != nil {
		return nil, err
	}

	report, err := writer.Write(wb)
	if err != nil {
		return nil, err
	}
	c := okr.Count()
	report.Objectives = c.Objectives
	report.KeyResults = c.KeyResults
	report.Initiatives = c.Initiatives
	report.SupportTasks = c.SupportTasks

	log.Info("workbook written",
		zap.String("path", report.Path),
		zap.Int64("bytes", report.Size),
		zap.Int("sheets", len(report.Sheets)))
	return report, nil
}

// Build lays out every sheet of the plan without writing anything.
// A non-zero opts.Theme must pass config.ValidateTheme.
func Build(opts Options) (*models.Workbook, error) {
	log := opts.logger()
	theme := opts.Theme
	if reflect.ValueOf(theme).IsZero() {
		theme = styles.DefaultTheme()
	} else if err := config.ValidateTheme(theme); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	reg := styles.NewRegistry(theme)

	bopts := []builder.Option{builder.WithLogger(log)}
	if opts.Strict {
		bopts = append(bopts, builder.WithStrict())
	}

	wb := &models.Workbook{
		Title:  opts.Title,
		Author: opts.Author,
		Path:   opts.OutputPath,
	}
	for _, l := range okr.Layouts() {
		s, err := l.Build(reg, bopts...)
		if err != nil {
			return nil, NewRenderError(l.Name, "layout", err)
		}
		log.Debug("sheet laid out",
			zap.String("sheet", s.Name),
			zap.Int("rows", len(s.Rows)),
			zap.Int("body_rows", s.BodyRows()),
			zap.Int("merges", len(s.Merges)))
		wb.Sheets = append(wb.Sheets, s)
	}
	return wb, nil
}
