package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDate(t *testing.T) {
	d := NewDate(2026, time.January, 1)
	assert.Equal(t, Date{Year: 2026, Month: time.January, Day: 1}, d)
	assert.False(t, d.IsZero())
}

func TestNewDate_Normalises(t *testing.T) {
	assert.Equal(t, NewDate(2026, time.March, 2), NewDate(2026, time.February, 30))
}

func TestDateOf_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	ts := time.Date(2026, time.June, 30, 23, 59, 59, 0, loc)

	assert.Equal(t, NewDate(2026, time.June, 30), DateOf(ts))
}

func TestDate_Time(t *testing.T) {
	d := NewDate(2025, time.December, 31)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), d.Time())
	assert.Equal(t, d, DateOf(d.Time()))
}

func TestDate_String(t *testing.T) {
	assert.Equal(t, "2026-06-30", NewDate(2026, time.June, 30).String())
	assert.Equal(t, "0099-01-05", Date{Year: 99, Month: time.January, Day: 5}.String())
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
}
