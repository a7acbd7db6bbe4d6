package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingDate(t *testing.T) {
	d, ok := MeetingDate("2025-07")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC), d)

	// 2025 年 8 月无会议
	_, ok = MeetingDate("2025-08")
	assert.False(t, ok)

	_, ok = MeetingDate("2030-01")
	assert.False(t, ok)

	_, ok = MeetingDate("not-a-period")
	assert.False(t, ok)
}

func TestMeetingPeriods(t *testing.T) {
	periods := MeetingPeriods(2025)
	require.Len(t, periods, 8)
	assert.Equal(t, "2025-01", periods[0])
	assert.Equal(t, "2025-12", periods[7])
	assert.True(t, IsMeetingMonth(periods[3]))

	assert.Empty(t, MeetingPeriods(1999))
}

func TestNextMeeting(t *testing.T) {
	period, d, ok := NextMeeting(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2025-09", period)
	assert.Equal(t, 17, d.Day())

	// 会议当天不算，取下一次
	period, _, ok = NextMeeting(time.Date(2026, 12, 16, 0, 0, 0, 0, time.UTC))
	require.False(t, ok, "日历之外应返回未命中: %s", period)
}

func TestYears(t *testing.T) {
	assert.Equal(t, []int{2023, 2024, 2025, 2026}, Years())
}
