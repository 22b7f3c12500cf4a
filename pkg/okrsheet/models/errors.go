package models

import "errors"

// ErrMergeOverlap indicates a merged range intersects an existing one.
var ErrMergeOverlap = errors.New("merged ranges overlap")

// ErrInvalidRange indicates a merged range that is empty, inverted or a single cell.
var ErrInvalidRange = errors.New("invalid merge range")
