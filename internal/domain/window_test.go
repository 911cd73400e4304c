package domain

import (
	"testing"
	"time"
)

func TestWindow_Contains(t *testing.T) {
	w := window("2024-01-01", "2024-01-31")

	tests := []struct {
		day  string
		want bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true},
		{"2024-01-15", true},
		{"2024-01-31", true},
		{"2024-02-01", false},
	}

	for _, tt := range tests {
		if got := w.Contains(day(tt.day)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestWindow_OpenBounds(t *testing.T) {
	open := Window{}
	if !open.Contains(day("1999-01-01")) || !open.Contains(day("2099-12-31")) {
		t.Error("open window must contain every day")
	}

	fromOnly := window("2024-01-01", "")
	if fromOnly.Contains(day("2023-12-31")) {
		t.Error("day before start must be excluded")
	}
	if !fromOnly.Contains(day("2099-01-01")) {
		t.Error("open end must not exclude future days")
	}
}

func TestWindow_BeforeStart(t *testing.T) {
	w := window("2024-01-01", "")

	if !w.BeforeStart(day("2023-12-31")) {
		t.Error("expected day before start")
	}
	if w.BeforeStart(day("2024-01-01")) {
		t.Error("start day itself is not before start")
	}
	if (Window{}).BeforeStart(day("1999-01-01")) {
		t.Error("open start has no opening range")
	}
}

func TestWindow_Valid(t *testing.T) {
	if !window("2024-01-01", "2024-01-31").Valid() {
		t.Error("ordered bounds must be valid")
	}
	if window("2024-02-01", "2024-01-31").Valid() {
		t.Error("inverted bounds must be invalid")
	}
	if !window("2024-01-01", "").Valid() || !(Window{}).Valid() {
		t.Error("open bounds are always valid")
	}
}

func TestNewWindow_NormalizesToDay(t *testing.T) {
	from := time.Date(2024, 1, 5, 13, 30, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)

	w := NewWindow(&from, &to)

	if !w.From.Equal(day("2024-01-05")) {
		t.Errorf("from not normalized: %s", w.From)
	}
	if !w.To.Equal(day("2024-01-10")) {
		t.Errorf("to not normalized: %s", w.To)
	}
}
