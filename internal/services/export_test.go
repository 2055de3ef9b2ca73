package services

import (
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{date(2024, time.January, 5), "05.01.2024"},
		{date(2024, time.December, 31), "31.12.2024"},
		{date(987, time.June, 9), "09.06.0987"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in))
	}
}

func TestEventsCSV(t *testing.T) {
	got := EventsCSV(fixtureEvents())
	want := "10.01.2024,Berlin,planned,2\n" +
		"05.02.2024,Berlin,completed,0\n" +
		"01.01.2024,Hamburg,planned,5"
	assert.Equal(t, want, got)
}

func TestEventsCSV_Empty(t *testing.T) {
	assert.Equal(t, "", EventsCSV(nil))
	assert.Equal(t, "", EventsCSV([]domain.Event{}))
}
