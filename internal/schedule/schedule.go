package schedule

import (
	"fmt"
	"sort"
	"time"
)

// 中文说明：
// FOMC 议息会议日历。日期为公布决议的会议第二天，来源为美联储官网。

var meetingDates = map[int][]string{
	2023: {
		"2023-02-01", "2023-03-22", "2023-05-03", "2023-06-14",
		"2023-07-26", "2023-09-20", "2023-11-01", "2023-12-13",
	},
	2024: {
		"2024-01-31", "2024-03-20", "2024-05-01", "2024-06-12",
		"2024-07-31", "2024-09-18", "2024-11-07", "2024-12-18",
	},
	2025: {
		"2025-01-29", "2025-03-19", "2025-05-07", "2025-06-18",
		"2025-07-30", "2025-09-17", "2025-11-05", "2025-12-17",
	},
	2026: {
		"2026-01-28", "2026-03-18", "2026-05-06", "2026-06-17",
		"2026-07-29", "2026-09-16", "2026-11-04", "2026-12-16",
	},
}

func parseDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("日历中存在非法日期 %q: %v", s, err))
	}
	return d
}

// MeetingDate 返回某会期（YYYY-MM）的会议日期，该月无会议时 ok 为 false。
func MeetingDate(period string) (time.Time, bool) {
	var year, month int
	if _, err := fmt.Sscanf(period, "%4d-%2d", &year, &month); err != nil {
		return time.Time{}, false
	}
	for _, s := range meetingDates[year] {
		d := parseDate(s)
		if int(d.Month()) == month {
			return d, true
		}
	}
	return time.Time{}, false
}

// IsMeetingMonth 判断某会期是否有议息会议。
func IsMeetingMonth(period string) bool {
	_, ok := MeetingDate(period)
	return ok
}

// MeetingPeriods 返回某年所有会期（YYYY-MM），按时间先后排列。
func MeetingPeriods(year int) []string {
	dates := meetingDates[year]
	periods := make([]string, 0, len(dates))
	for _, s := range dates {
		periods = append(periods, parseDate(s).Format("2006-01"))
	}
	return periods
}

// MeetingDates 返回某年所有会议日期。
func MeetingDates(year int) []time.Time {
	dates := meetingDates[year]
	out := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		out = append(out, parseDate(s))
	}
	return out
}

// NextMeeting 返回 from 之后最近的一次会议，两年内没有则 ok 为 false。
func NextMeeting(from time.Time) (period string, date time.Time, ok bool) {
	for year := from.Year(); year <= from.Year()+1; year++ {
		for _, s := range meetingDates[year] {
			d := parseDate(s)
			if d.After(from) {
				return d.Format("2006-01"), d, true
			}
		}
	}
	return "", time.Time{}, false
}

// Years 返回日历覆盖的年份，升序。
func Years() []int {
	years := make([]int, 0, len(meetingDates))
	for y := range meetingDates {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
