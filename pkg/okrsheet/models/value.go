package models

import (
	"fmt"
	"time"
)

// ValueKind identifies the type held by a Value.
type ValueKind int

const (
	// KindNull is an empty cell.
	KindNull ValueKind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindDate is a date cell.
	KindDate
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a typed cell value.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Date   time.Time
}

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// Int returns a numeric value from an int.
func Int(i int) Value { return Number(float64(i)) }

// Date returns a date value.
func Date(t time.Time) Value { return Value{Kind: KindDate, Date: t} }

// Null returns an empty value.
func Null() Value { return Value{} }

// IsNull reports whether v is empty.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IsNumeric reports whether a number format applies to v.
func (v Value) IsNumeric() bool { return v.Kind == KindNumber || v.Kind == KindDate }

// Equal reports whether two values hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindNumber:
		return v.Number == o.Number
	case KindDate:
		return v.Date.Equal(o.Date)
	}
	return true
}

// Interface returns the value in the form accepted by excelize SetCellValue.
// Null returns nil.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	case KindDate:
		return v.Date
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return fmt.Sprintf("%g", v.Number)
	case KindDate:
		return v.Date.Format("2006-01-02")
	}
	return ""
}
