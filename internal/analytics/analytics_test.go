package analytics

import (
	"testing"

	"fedboard/internal/config"
	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWeights() config.StanceConfig {
	return config.StanceConfig{AlignedWeight: 50, NeutralHoldWeight: 25, NeutralMoveWeight: 25}
}

func record(period string, dissenters []string, votes ...engine.VoteDecision) meeting.MeetingRecord {
	return meeting.MeetingRecord{Period: period, Votes: votes, Dissenters: dissenters}
}

func v(id string, action engine.Action, bps int) engine.VoteDecision {
	return engine.VoteDecision{MemberID: id, Action: action, MagnitudeBps: bps, Confidence: 0.8, Reasoning: "r"}
}

func TestStanceScoresAlignment(t *testing.T) {
	roster := []member.Member{
		{ID: "hawk", Stance: member.StanceHawk},
		{ID: "dove", Stance: member.StanceDove},
		{ID: "mid", Stance: member.StanceNeutral},
	}
	records := []meeting.MeetingRecord{
		record("2025-01", nil,
			v("hawk", engine.ActionRaise, 25),
			v("dove", engine.ActionCut, 25),
			v("mid", engine.ActionHold, 0),
		),
		record("2025-03", nil,
			v("hawk", engine.ActionRaise, 50),
			v("dove", engine.ActionRaise, 25),
			v("mid", engine.ActionCut, 25),
		),
	}

	scores := StanceScores(records, roster, testWeights())
	require.Len(t, scores, 3)
	byID := make(map[string]StanceScore)
	for _, s := range scores {
		byID[s.MemberID] = s
	}

	// hawk: (+50 + +100) / 2 = 75
	assert.Equal(t, 75, byID["hawk"].Score)
	assert.Equal(t, 2, byID["hawk"].Votes)
	// dove: (+50 - 50) / 2 = 0
	assert.Equal(t, 0, byID["dove"].Score)
	// neutral: (+25 - 25) / 2 = 0
	assert.Equal(t, 0, byID["mid"].Score)

	// 降序排列，hawk 在首位
	assert.Equal(t, "hawk", scores[0].MemberID)
}

func TestStanceScoresClamped(t *testing.T) {
	roster := []member.Member{{ID: "hawk", Stance: member.StanceHawk}}
	records := []meeting.MeetingRecord{
		record("2025-01", nil, v("hawk", engine.ActionRaise, 100)),
	}
	scores := StanceScores(records, roster, testWeights())
	require.Len(t, scores, 1)
	// 单票 +200 被钳制到 100
	assert.Equal(t, 100, scores[0].Score)
}

func TestStanceScoresUnknownMemberDefaultsNeutral(t *testing.T) {
	records := []meeting.MeetingRecord{
		record("2025-01", nil, v("ghost", engine.ActionHold, 0)),
	}
	scores := StanceScores(records, nil, testWeights())
	require.Len(t, scores, 1)
	assert.Equal(t, member.StanceNeutral, scores[0].Baseline)
	assert.Equal(t, 25, scores[0].Score)
}

func TestDissentsByMember(t *testing.T) {
	records := []meeting.MeetingRecord{
		record("2025-03", []string{"bowman"}),
		record("2025-01", []string{"bowman", "kashkari"}),
		record("2025-05", nil),
	}
	groups := DissentsByMember(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "bowman", groups[0].MemberID)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, []string{"2025-01", "2025-03"}, groups[0].Periods)
	assert.Equal(t, "kashkari", groups[1].MemberID)

	assert.InDelta(t, 2.0/3.0, DissentRate(records), 1e-9)
	assert.Zero(t, DissentRate(nil))
}

func TestEstimateImpact(t *testing.T) {
	cfg := config.ImpactConfig{
		Treasury2YPerBps:  0.5,
		Treasury10YPerBps: 1.0 / 3.0,
		SP500PctPerBps:    -0.01,
		DXYPctPerBps:      0.02,
	}

	cut := EstimateImpact(engine.ActionCut, 25, cfg)
	assert.Equal(t, -13, cut.Treasury2YBps)
	assert.Equal(t, -8, cut.Treasury10YBps)
	assert.InDelta(t, 0.25, cut.SP500Pct, 1e-9)
	assert.InDelta(t, -0.5, cut.DXYPct, 1e-9)

	raise := EstimateImpact(engine.ActionRaise, 50, cfg)
	assert.Equal(t, 25, raise.Treasury2YBps)
	assert.Equal(t, 17, raise.Treasury10YBps)
	assert.InDelta(t, -0.5, raise.SP500Pct, 1e-9)

	assert.Equal(t, ImpactEstimate{}, EstimateImpact(engine.ActionHold, 0, cfg))
}

func TestCompareAndAccuracy(t *testing.T) {
	rec := meeting.MeetingRecord{Period: "2025-07", FinalAction: engine.ActionCut, MagnitudeBps: 25}

	exact := Compare(rec, engine.ActionCut, 25)
	assert.True(t, exact.ActionMatch)
	assert.True(t, exact.MagnitudeMatch)

	wrongBps := Compare(rec, engine.ActionCut, 50)
	assert.True(t, wrongBps.ActionMatch)
	assert.False(t, wrongBps.MagnitudeMatch)

	miss := Compare(rec, engine.ActionHold, 0)
	assert.False(t, miss.ActionMatch)
	assert.False(t, miss.MagnitudeMatch)

	assert.InDelta(t, 2.0/3.0, Accuracy([]Comparison{exact, wrongBps, miss}), 1e-9)
	assert.Zero(t, Accuracy(nil))
}
