package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
)

func sampleRecord() meeting.MeetingRecord {
	prev := meeting.RateRange{Lower: decimal.RequireFromString("4.25"), Upper: decimal.RequireFromString("4.50")}
	core := 2.6
	unemp := 4.2
	rec := meeting.MeetingRecord{
		Period:        "2025-07",
		FinalAction:   engine.ActionCut,
		MagnitudeBps:  25,
		PreviousRange: prev,
		FinalRange:    prev.Shift(-25),
		Tally:         meeting.Tally{For: 2, Against: 1},
		Votes: []engine.VoteDecision{
			{MemberID: "powell", Action: engine.ActionCut, MagnitudeBps: 25, Confidence: 0.8, Reasoning: "r"},
			{MemberID: "williams", Action: engine.ActionCut, MagnitudeBps: 25, Confidence: 0.7, Reasoning: "r"},
			{MemberID: "bowman", Action: engine.ActionCut, MagnitudeBps: 50, Confidence: 0.9, Reasoning: "r"},
		},
		Dissenters: []string{"bowman"},
	}
	rec.Snapshot.Inflation.CorePCEYoY = &core
	rec.Snapshot.Employment.UnemploymentRate = &unemp
	return rec
}

func sampleRoster() []member.Member {
	return []member.Member{
		{ID: "powell", Name: "Jerome Powell"},
		{ID: "williams", Name: "John Williams"},
		{ID: "bowman", Name: "Michelle Bowman"},
	}
}

func TestMinutesContent(t *testing.T) {
	text := Minutes(sampleRecord(), sampleRoster())

	assert.Contains(t, text, "# FOMC Meeting Minutes: July 2025")
	assert.Contains(t, text, "lower the target range for the federal funds rate by 25 basis points, to 4.00-4.25%")
	assert.Contains(t, text, "core PCE inflation was running at 2.6 percent")
	assert.Contains(t, text, "**Voting for this action:** Jerome Powell; John Williams.")
	assert.Contains(t, text, "Michelle Bowman, who preferred a larger reduction in the target range")
	assert.Contains(t, text, "The vote was 2 to 1.")
	// 无预测数据时不渲染点阵表
	assert.NotContains(t, text, "Summary of Economic Projections")
}

func TestMinutesHoldAndUnknownMember(t *testing.T) {
	rec := sampleRecord()
	rec.FinalAction = engine.ActionHold
	rec.MagnitudeBps = 0
	rec.FinalRange = rec.PreviousRange
	rec.Votes = []engine.VoteDecision{
		{MemberID: "ghost", Action: engine.ActionHold, Confidence: 0.5, Reasoning: "r"},
	}
	rec.Dissenters = nil
	rec.Tally = meeting.Tally{For: 1}

	text := Minutes(rec, nil)
	assert.Contains(t, text, "maintain the target range for the federal funds rate, to 4.25-4.50%")
	// 名册查不到就退回成员 ID
	assert.Contains(t, text, "**Voting for this action:** ghost.")
}

func TestMinutesProjectionTable(t *testing.T) {
	rec := sampleRecord()
	rec.Projections = []engine.Projection{
		{MemberID: "powell", Rates: map[string]float64{"2025": 4.1, "2026": 3.6, "2027": 3.1, "longer_run": 2.9}},
		{MemberID: "bowman", Rates: map[string]float64{"2025": 4.4, "2026": 3.9, "2027": 3.4, "longer_run": 3.0}},
	}
	text := Minutes(rec, sampleRoster())
	assert.Contains(t, text, "## Summary of Economic Projections")
	assert.Contains(t, text, "| 2025 | 4.25% | 4.10-4.40% |")
	assert.Contains(t, text, "| Longer Run | 2.95% | 2.90-3.00% |")
}

func TestDotPlotHTML(t *testing.T) {
	projections := []engine.Projection{
		{MemberID: "a", Rates: map[string]float64{"2025": 4.1, "2026": 3.6, "longer_run": 2.9}},
		{MemberID: "b", Rates: map[string]float64{"2025": 4.4, "2026": 3.9, "longer_run": 3.0}},
	}
	html, err := DotPlotHTML(projections, "2025-07")
	require.NoError(t, err)
	page := string(html)
	assert.Contains(t, page, "Assessments of Appropriate Monetary Policy")
	assert.Contains(t, page, "Longer Run")

	_, err = DotPlotHTML(nil, "2025-07")
	require.Error(t, err)
}

func TestSummaryStats(t *testing.T) {
	projections := []engine.Projection{
		{MemberID: "a", Rates: map[string]float64{"2025": 4.0, "longer_run": 2.8}},
		{MemberID: "b", Rates: map[string]float64{"2025": 4.5, "longer_run": 3.0}},
		{MemberID: "c", Rates: map[string]float64{"2025": 4.25}},
	}
	stats := SummaryStats(projections)

	require.Contains(t, stats, "2025")
	assert.Equal(t, 3, stats["2025"].Count)
	assert.InDelta(t, 4.25, stats["2025"].Median, 1e-9)
	assert.InDelta(t, 4.0, stats["2025"].Min, 1e-9)
	assert.InDelta(t, 4.5, stats["2025"].Max, 1e-9)

	require.Contains(t, stats, "longer_run")
	assert.InDelta(t, 2.9, stats["longer_run"].Median, 1e-9)
	// 没有任何委员给出 2027 预测
	assert.NotContains(t, stats, "2027")
}

func TestImageResultDataURI(t *testing.T) {
	r := &ImageResult{Base64: "aGk=", Filename: "dotplot_2025-07.png"}
	assert.Equal(t, "data:image/png;base64,aGk=", r.DataURI())

	var nilResult *ImageResult
	assert.Empty(t, nilResult.DataURI())
}
