// Package okrsheet renders the annual action plan into a formatted xlsx workbook.
package okrsheet

import (
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/config"
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/styles"
	"go.uber.org/zap"
)

// Options configures a run.
type Options struct {
	// OutputPath is the xlsx file to write.
	OutputPath string
	// Strict rejects status and priority values outside their palettes.
	// When false such values render with the default body style.
	Strict bool
	// Theme is the report palette. The zero Theme selects styles.DefaultTheme;
	// any other theme must be complete, with every color set.
	Theme styles.Theme
	// Title and Author are stored in the document properties.
	Title  string
	Author string
	// Logger receives progress and fallback messages. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options of the built-in configuration.
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig converts a loaded configuration to options.
func FromConfig(cfg *config.Config) Options {
	return Options{
		OutputPath: cfg.Output,
		Strict:     cfg.Strict,
		Theme:      cfg.Theme,
		Title:      cfg.Title,
		Author:     cfg.Author,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
