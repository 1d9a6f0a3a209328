package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalcFine(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		dueDate    time.Time
		returnedAt time.Time
		perDay     int
		want       int
	}{
		{name: "five days late", dueDate: day(10, 0), returnedAt: day(15, 12), perDay: 5, want: 25},
		{name: "returned early", dueDate: day(10, 0), returnedAt: day(8, 9), perDay: 5, want: 0},
		{name: "returned on due date", dueDate: day(10, 0), returnedAt: day(10, 23), perDay: 5, want: 0},
		{name: "one minute past midnight counts a full day", dueDate: day(10, 0), returnedAt: time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC), perDay: 7, want: 7},
		{name: "late but zero rate", dueDate: day(1, 0), returnedAt: day(20, 0), perDay: 0, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CalcFine(tt.dueDate, tt.returnedAt, tt.perDay))
		})
	}
}
