package meeting

import (
	"testing"

	"fedboard/internal/engine"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(lower, upper string) RateRange {
	return RateRange{
		Lower: decimal.RequireFromString(lower),
		Upper: decimal.RequireFromString(upper),
	}
}

func vote(id string, action engine.Action, bps int) engine.VoteDecision {
	return engine.VoteDecision{MemberID: id, Action: action, MagnitudeBps: bps, Confidence: 0.8, Reasoning: "r"}
}

func TestAggregateMajorityCut(t *testing.T) {
	votes := []engine.VoteDecision{
		vote("a", engine.ActionCut, 25),
		vote("b", engine.ActionCut, 25),
		vote("c", engine.ActionCut, 25),
		vote("d", engine.ActionHold, 0),
		vote("e", engine.ActionRaise, 25),
	}
	out := Aggregate(votes, rng("4.25", "4.50"))

	assert.Equal(t, engine.ActionCut, out.Action)
	assert.Equal(t, 25, out.MagnitudeBps)
	assert.Equal(t, "4.00-4.25%", out.FinalRange.String())
	assert.Equal(t, Tally{For: 3, Against: 2, Abstain: 0}, out.Tally)
	assert.Equal(t, []string{"d", "e"}, out.Dissenters)
}

func TestAggregateTieFallsToHold(t *testing.T) {
	// 两方并列
	votes := []engine.VoteDecision{
		vote("a", engine.ActionCut, 25),
		vote("b", engine.ActionCut, 25),
		vote("c", engine.ActionRaise, 25),
		vote("d", engine.ActionRaise, 25),
	}
	out := Aggregate(votes, rng("4.25", "4.50"))
	assert.Equal(t, engine.ActionHold, out.Action)
	assert.Zero(t, out.MagnitudeBps)
	assert.Equal(t, "4.25-4.50%", out.FinalRange.String())
	assert.Equal(t, Tally{For: 0, Against: 4}, out.Tally)
	assert.Len(t, out.Dissenters, 4)

	// 三方并列
	votes = []engine.VoteDecision{
		vote("a", engine.ActionCut, 25),
		vote("b", engine.ActionHold, 0),
		vote("c", engine.ActionRaise, 25),
	}
	out = Aggregate(votes, rng("4.25", "4.50"))
	assert.Equal(t, engine.ActionHold, out.Action)
	assert.Equal(t, Tally{For: 1, Against: 2}, out.Tally)
	assert.Equal(t, []string{"a", "c"}, out.Dissenters)
}

func TestAggregateMagnitudeMode(t *testing.T) {
	votes := []engine.VoteDecision{
		vote("a", engine.ActionCut, 50),
		vote("b", engine.ActionCut, 50),
		vote("c", engine.ActionCut, 25),
		vote("d", engine.ActionHold, 0),
	}
	out := Aggregate(votes, rng("4.25", "4.50"))
	assert.Equal(t, engine.ActionCut, out.Action)
	assert.Equal(t, 50, out.MagnitudeBps)
	assert.Equal(t, "3.75-4.00%", out.FinalRange.String())
}

func TestAggregateMagnitudeTieTakesSmaller(t *testing.T) {
	votes := []engine.VoteDecision{
		vote("a", engine.ActionRaise, 25),
		vote("b", engine.ActionRaise, 50),
		vote("c", engine.ActionRaise, 50),
		vote("d", engine.ActionRaise, 25),
	}
	out := Aggregate(votes, rng("4.25", "4.50"))
	assert.Equal(t, engine.ActionRaise, out.Action)
	assert.Equal(t, 25, out.MagnitudeBps)
	assert.Equal(t, "4.50-4.75%", out.FinalRange.String())
}

func TestAggregateUnanimousHold(t *testing.T) {
	votes := []engine.VoteDecision{
		vote("a", engine.ActionHold, 0),
		vote("b", engine.ActionHold, 0),
	}
	out := Aggregate(votes, rng("5.25", "5.50"))
	assert.Equal(t, engine.ActionHold, out.Action)
	assert.Equal(t, Tally{For: 2}, out.Tally)
	assert.Empty(t, out.Dissenters)
}

func TestParsePeriod(t *testing.T) {
	year, month, err := ParsePeriod("2025-07")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 7, month)

	for _, bad := range []string{"2025-13", "2025-00", "25-07", "2025/07", "2025-7", ""} {
		_, _, err := ParsePeriod(bad)
		assert.Error(t, err, bad)
	}
}

func TestRateRangeShift(t *testing.T) {
	r := rng("4.25", "4.50")
	assert.Equal(t, "4.00-4.25%", r.Shift(-25).String())
	assert.Equal(t, "4.75-5.00%", r.Shift(50).String())
	assert.Equal(t, "4.25-4.50%", r.Shift(0).String())
}
