package relclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	msk     = time.FixedZone("MSK", 3*60*60)
	nowTime = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	now     = nowTime.UnixMilli()
)

func TestFormat_English(t *testing.T) {
	f := NewFormatter(English, time.UTC, nil)

	tests := []struct {
		name    string
		elapsed int64
		want    string
	}{
		{"same instant", 0, "just now"},
		{"future", -5_000, "just now"},
		{"59s", 59_999, "just now"},
		{"one minute", 60_000, "1 minute ago"},
		{"90s floors to one minute", 90_000, "1 minute ago"},
		{"two minutes", 120_000, "2 minutes ago"},
		{"59 minutes", 59 * msMinute, "59 minutes ago"},
		{"one hour", msHour, "1 hour ago"},
		{"five hours", 5 * msHour, "5 hours ago"},
		{"one day", msDay, "1 day ago"},
		{"six days", 6*msDay + msHour, "6 days ago"},
		{"eight days", 8 * msDay, "October 10, 2026"},
		{"exactly a week", 7 * msDay, "October 11, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(now-tt.elapsed, now))
		})
	}
}

func TestFormat_RussianPluralClasses(t *testing.T) {
	f := NewFormatter(Russian, msk, nil)

	tests := []struct {
		elapsed int64
		want    string
	}{
		{0, "только что"},
		{msMinute, "1 минуту назад"},
		{3 * msMinute, "3 минуты назад"},
		{5 * msMinute, "5 минут назад"},
		{11 * msMinute, "11 минут назад"},
		{msHour, "1 час назад"},
		{2 * msHour, "2 часа назад"},
		{4 * msHour, "4 часа назад"},
		{5 * msHour, "5 часов назад"},
		{12 * msHour, "12 часов назад"},
		{21 * msHour, "21 час назад"},
		{22 * msHour, "22 часа назад"},
		{msDay, "1 день назад"},
		{3 * msDay, "3 дня назад"},
		{5 * msDay, "5 дней назад"},
		{8 * msDay, "10 октября 2026 г."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(now-tt.elapsed, now))
		})
	}
}

func TestDate_UsesLocation(t *testing.T) {
	// 22:30 UTC on Jan 31 is already Feb 1 in Moscow
	ts := time.Date(2025, time.January, 31, 22, 30, 0, 0, time.UTC).UnixMilli()

	assert.Equal(t, "1 февраля 2025 г.", NewFormatter(Russian, msk, nil).Date(ts))
	assert.Equal(t, "January 31, 2025", NewFormatter(English, nil, nil).Date(ts))
}

func TestSince_UsesInjectedClock(t *testing.T) {
	clock := NewFixedClock(nowTime)
	f := NewFormatter(English, time.UTC, clock)
	ts := nowTime.Add(-30 * time.Second).UnixMilli()

	assert.Equal(t, "just now", f.Since(ts))

	clock.Advance(3 * time.Hour)
	assert.Equal(t, "3 hours ago", f.Since(ts))
	assert.Equal(t, nowTime.Add(3*time.Hour).UnixMilli(), f.Now())
}

func TestFormat_IsPure(t *testing.T) {
	f := NewFormatter(Russian, msk, nil)
	ts := now - 5*msHour
	assert.Equal(t, f.Format(ts, now), f.Format(ts, now))
}

func TestLocaleByName(t *testing.T) {
	l, err := LocaleByName("ru-RU")
	require.NoError(t, err)
	assert.Equal(t, "только что", l.JustNow)

	l, err = LocaleByName("en")
	require.NoError(t, err)
	assert.Equal(t, "just now", l.JustNow)

	_, err = LocaleByName("de")
	assert.Error(t, err)
}
