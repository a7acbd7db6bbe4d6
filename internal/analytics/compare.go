package analytics

import (
	"fedboard/internal/engine"
	"fedboard/internal/meeting"
)

// Comparison 模拟结果与真实决议的对照。
type Comparison struct {
	Period          string        `json:"period"`
	SimulatedAction engine.Action `json:"simulatedAction"`
	SimulatedBps    int           `json:"simulatedBps"`
	ActualAction    engine.Action `json:"actualAction"`
	ActualBps       int           `json:"actualBps"`
	ActionMatch     bool          `json:"actionMatch"`
	MagnitudeMatch  bool          `json:"magnitudeMatch"`
}

// Compare 把一条模拟记录与真实决议对照。MagnitudeMatch 要求动作与幅度都一致。
func Compare(rec meeting.MeetingRecord, actualAction engine.Action, actualBps int) Comparison {
	c := Comparison{
		Period:          rec.Period,
		SimulatedAction: rec.FinalAction,
		SimulatedBps:    rec.MagnitudeBps,
		ActualAction:    actualAction,
		ActualBps:       actualBps,
	}
	c.ActionMatch = c.SimulatedAction == c.ActualAction
	c.MagnitudeMatch = c.ActionMatch && c.SimulatedBps == c.ActualBps
	return c
}

// Accuracy 动作命中率，无对照时为 0。
func Accuracy(comparisons []Comparison) float64 {
	if len(comparisons) == 0 {
		return 0
	}
	hit := 0
	for _, c := range comparisons {
		if c.ActionMatch {
			hit++
		}
	}
	return float64(hit) / float64(len(comparisons))
}
