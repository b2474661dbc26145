package domain

import (
	"strings"
	"time"
)

// Single-character trip day codes. Thursday is H, not R.
// Sunday has no code: there are no Sunday deliveries.
var dayCodes = map[time.Weekday]byte{
	time.Monday:    'M',
	time.Tuesday:   'T',
	time.Wednesday: 'W',
	time.Thursday:  'H',
	time.Friday:    'F',
	time.Saturday:  'S',
}

var codeDays = func() map[byte]time.Weekday {
	m := make(map[byte]time.Weekday, len(dayCodes))
	for d, c := range dayCodes {
		m[c] = d
	}
	return m
}()

// DeliveryDays lists the days that carry a trip code, Monday first.
var DeliveryDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// DayCode returns the trip code for d. ok is false for Sunday.
func DayCode(d time.Weekday) (code byte, ok bool) {
	code, ok = dayCodes[d]
	return code, ok
}

// DayForCode is the inverse of DayCode.
func DayForCode(code byte) (time.Weekday, bool) {
	d, ok := codeDays[code]
	return d, ok
}

// ParseDay accepts a full day name in any case ("Wednesday", "wednesday")
// or a trip code ("W", "w"). Sunday parses as a day but has no code.
func ParseDay(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return DayForCode(strings.ToUpper(s)[0])
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return 0, false
}

// ParseDayCode resolves s to a trip code in one step.
func ParseDayCode(s string) (byte, bool) {
	d, ok := ParseDay(s)
	if !ok {
		return 0, false
	}
	return DayCode(d)
}
