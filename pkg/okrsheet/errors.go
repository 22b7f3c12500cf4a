package okrsheet

import (
	"errors"
	"fmt"
)

// ErrNoOutput indicates a run without an output path.
var ErrNoOutput = errors.New("no output path")

// ErrInvalidTheme indicates an incomplete or malformed theme.
var ErrInvalidTheme = errors.New("invalid theme")

// RenderError represents a failure while laying out a sheet.
type RenderError struct {
	SheetName string
	Component string // "layout"
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, component string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
