package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatEventDate(t *testing.T) {
	assert.Equal(t, "sábado, 21 de fevereiro de 2026", FormatEventDate(EventTime()))
}

func TestFormatEventHour(t *testing.T) {
	assert.Equal(t, "13:00", FormatEventHour(EventTime()))
}

func TestDaysUntil(t *testing.T) {
	event := time.Date(2026, 2, 21, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"ten days before", event.AddDate(0, 0, -10), 10},
		{"under one day", event.Add(-12 * time.Hour), 0},
		{"moments before", event.Add(-time.Minute), 0},
		{"after the event", event.Add(time.Hour), 0},
		{"well after", event.AddDate(0, 1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(event, tt.now))
		})
	}
}
