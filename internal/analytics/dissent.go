package analytics

import (
	"sort"

	"fedboard/internal/meeting"
)

// DissentGroup 某位委员的历史异议汇总，Periods 按会期升序。
type DissentGroup struct {
	MemberID string   `json:"memberId"`
	Count    int      `json:"count"`
	Periods  []string `json:"periods"`
}

// DissentsByMember 汇总所有记录里的异议，按次数降序、同次数按 memberId 升序。
func DissentsByMember(records []meeting.MeetingRecord) []DissentGroup {
	byMember := make(map[string][]string)
	for _, rec := range records {
		for _, id := range rec.Dissenters {
			byMember[id] = append(byMember[id], rec.Period)
		}
	}
	out := make([]DissentGroup, 0, len(byMember))
	for id, periods := range byMember {
		sort.Strings(periods)
		out = append(out, DissentGroup{MemberID: id, Count: len(periods), Periods: periods})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}

// DissentRate 全部记录里出现过异议的会议占比，无记录时为 0。
func DissentRate(records []meeting.MeetingRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	n := 0
	for _, rec := range records {
		if len(rec.Dissenters) > 0 {
			n++
		}
	}
	return float64(n) / float64(len(records))
}
