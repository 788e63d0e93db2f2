package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The bookable slots of a business day, in order. The gap after 12:00 PM is
// the lunch break.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

const dateLayout = "2006-01-02"

// parse12Hour converts a slot label like "09:00 AM" to 24-hour parts.
// 12:xx PM stays hour 12; 12:xx AM becomes hour 0.
func parse12Hour(label string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(label), " ", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed slot %q", label)
	}
	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("malformed slot %q", label)
	}
	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed slot %q", label)
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed slot %q", label)
	}
	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, fmt.Errorf("malformed slot %q", label)
	}
	return hour, minute, nil
}

func isKnownSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AvailableSlots returns the bookable slots for a date. Any day other than
// today gets the full list; for today only slots strictly later than now
// survive. Past dates are a validation error.
func AvailableSlots(date string, now time.Time) ([]string, error) {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return nil, ErrBadDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return nil, ErrPastDate
	}
	if !sameDay(day, now) {
		out := make([]string, len(TimeSlots))
		copy(out, TimeSlots)
		return out, nil
	}

	out := make([]string, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		h, m, err := parse12Hour(slot)
		if err != nil {
			return nil, err
		}
		slotTime := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
		if slotTime.After(now) {
			out = append(out, slot)
		}
	}
	return out, nil
}

// ValidateSlot re-checks a submitted (date, slot) pair at write time. The
// slot must belong to the fixed enumeration and, for same-day bookings, lie
// strictly in the future. A same-day submission when every slot has passed
// is reported as ErrNoSlotsLeft so the caller can surface the distinct
// "nothing left today" state instead of a generic rejection.
func ValidateSlot(date, slot string, now time.Time) error {
	if !isKnownSlot(slot) {
		return ErrUnknownSlot
	}
	avail, err := AvailableSlots(date, now)
	if err != nil {
		return err
	}
	day, _ := time.ParseInLocation(dateLayout, date, now.Location())
	if sameDay(day, now) && len(avail) == 0 {
		return ErrNoSlotsLeft
	}
	for _, s := range avail {
		if s == slot {
			return nil
		}
	}
	return ErrSlotPassed
}
