package models

import (
	"testing"
	"time"
)

func TestValueEqual(t *testing.T) {
	d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"text", Text("A"), Text("A"), true},
		{"text differs", Text("A"), Text("B"), false},
		{"int and number", Int(1), Number(1), true},
		{"number and text", Number(1), Text("1"), false},
		{"dates", Date(d), Date(d.In(time.FixedZone("MYT", 8*3600))), true},
		{"nulls", Null(), Null(), true},
		{"null and empty text", Null(), Text(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueInterface(t *testing.T) {
	if v := Null().Interface(); v != nil {
		t.Errorf("Null().Interface() = %v, want nil", v)
	}
	if v := Int(800000).Interface(); v != float64(800000) {
		t.Errorf("Int(800000).Interface() = %v (%T)", v, v)
	}
	if !Date(time.Now()).IsNumeric() || !Number(0).IsNumeric() || Text("x").IsNumeric() {
		t.Error("IsNumeric mismatch")
	}
}
