package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Yangon"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Not/AZone"))
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestTodayTomorrow(t *testing.T) {
	today := Today()
	tomorrow := Tomorrow()

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, today)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, tomorrow)
	assert.NotEqual(t, today, tomorrow)
}

func TestFormatMM(t *testing.T) {
	assert.Equal(t, "10 မတ် 2025", FormatMM("2025-03-10"))
	assert.Equal(t, "1 ဇန်နဝါရီ 2026", FormatMM("2026-01-01"))
	assert.Equal(t, "31 ဒီဇင်ဘာ 2025", FormatMM("2025-12-31"))
}

func TestFormatMM_UnparseableInputPassesThrough(t *testing.T) {
	assert.Equal(t, "not-a-date", FormatMM("not-a-date"))
	assert.Equal(t, "", FormatMM(""))
}
