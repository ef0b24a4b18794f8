package utils_test

import (
	"testing"
	"time"

	"github.com/parthsh/billify-api/pkg/utils"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"monday is its own week start", "2024-06-10", "2024-06-10"},
		{"tuesday", "2024-06-11", "2024-06-10"},
		{"sunday rolls back to monday", "2024-06-16", "2024-06-10"},
		{"saturday", "2024-06-15", "2024-06-10"},
		{"week spanning a month boundary", "2024-06-01", "2024-05-27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatDate(utils.StartOfWeek(utils.ParseDate(tt.in)))
			if got != tt.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDayAndWeekBounds(t *testing.T) {
	noon := time.Date(2024, 6, 12, 12, 30, 0, 0, time.Local) // Wednesday

	if got := utils.FormatDate(utils.StartOfDay(noon)); got != "2024-06-12" {
		t.Errorf("StartOfDay = %s", got)
	}
	if got := utils.EndOfDay(noon); got.Day() != 12 || got.Hour() != 23 {
		t.Errorf("EndOfDay = %v, want last instant of the same day", got)
	}
	if got := utils.FormatDate(utils.EndOfWeek(noon)); got != "2024-06-16" {
		t.Errorf("EndOfWeek = %s, want the Sunday 2024-06-16", got)
	}
}

func TestMonthBounds(t *testing.T) {
	leapFeb := time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local)

	if got := utils.FormatDate(utils.StartOfMonth(leapFeb)); got != "2024-02-01" {
		t.Errorf("StartOfMonth = %s", got)
	}
	if got := utils.FormatDate(utils.EndOfMonth(leapFeb)); got != "2024-02-29" {
		t.Errorf("EndOfMonth = %s, want the leap day", got)
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	const day = "2024-06-03"
	if got := utils.FormatDate(utils.ParseDate(day)); got != day {
		t.Errorf("round trip gave %s, want %s", got, day)
	}
}
