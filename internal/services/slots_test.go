package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 29, hour, minute, 0, 0, time.UTC)
}

func TestAvailableSlotsFutureDate(t *testing.T) {
	slots, err := AvailableSlots("2026-09-01", at(18, 0))
	require.NoError(t, err)
	assert.Equal(t, TimeSlots, slots)
}

func TestAvailableSlotsTodayFiltersPassed(t *testing.T) {
	// 10:30: 09:00 and 10:00 are gone
	slots, err := AvailableSlots("2026-08-29", at(10, 30))
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00 AM", "12:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM"}, slots)
}

func TestAvailableSlotsExactSlotTimeExcluded(t *testing.T) {
	// strictly-after rule: at exactly 11:00 the 11:00 AM slot is gone
	slots, err := AvailableSlots("2026-08-29", at(11, 0))
	require.NoError(t, err)
	assert.NotContains(t, slots, "11:00 AM")
	assert.Contains(t, slots, "12:00 PM")
}

func TestAvailableSlotsNoonBoundary(t *testing.T) {
	// 12:00 PM is hour 12, not hour 0
	slots, err := AvailableSlots("2026-08-29", at(11, 30))
	require.NoError(t, err)
	assert.Contains(t, slots, "12:00 PM")

	slots, err = AvailableSlots("2026-08-29", at(12, 30))
	require.NoError(t, err)
	assert.NotContains(t, slots, "12:00 PM")
	assert.Contains(t, slots, "02:00 PM")
}

func TestAvailableSlotsAllPassed(t *testing.T) {
	slots, err := AvailableSlots("2026-08-29", at(18, 0))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsErrors(t *testing.T) {
	_, err := AvailableSlots("29-08-2026", at(9, 0))
	assert.ErrorIs(t, err, ErrBadDate)

	_, err = AvailableSlots("2026-08-28", at(9, 0))
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestValidateSlot(t *testing.T) {
	now := at(10, 30)

	assert.NoError(t, ValidateSlot("2026-08-29", "11:00 AM", now))
	assert.NoError(t, ValidateSlot("2026-09-01", "09:00 AM", now))

	assert.ErrorIs(t, ValidateSlot("2026-08-29", "01:00 PM", now), ErrUnknownSlot)
	assert.ErrorIs(t, ValidateSlot("2026-08-29", "09:00 AM", now), ErrSlotPassed)
	assert.ErrorIs(t, ValidateSlot("2026-08-29", "09:00 AM", at(18, 0)), ErrNoSlotsLeft)
	assert.ErrorIs(t, ValidateSlot("2026-08-28", "09:00 AM", now), ErrPastDate)
}

func TestParse12Hour(t *testing.T) {
	cases := []struct {
		label  string
		hour   int
		minute int
	}{
		{"09:00 AM", 9, 0},
		{"12:00 PM", 12, 0},
		{"12:30 AM", 0, 30},
		{"05:00 PM", 17, 0},
	}
	for _, c := range cases {
		h, m, err := parse12Hour(c.label)
		require.NoError(t, err, c.label)
		assert.Equal(t, c.hour, h, c.label)
		assert.Equal(t, c.minute, m, c.label)
	}

	_, _, err := parse12Hour("0900")
	assert.Error(t, err)
}
