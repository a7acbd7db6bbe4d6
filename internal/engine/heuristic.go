package engine

import (
	"context"
	"fmt"

	"fedboard/internal/member"
)

// Heuristic 离线决策引擎：不访问模型，按委员倾向与通胀/就业缺口出票。
// 用于 --offline 演练和没有 API key 的环境，结果确定可复现。
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

const inflationTarget = 2.0

func (h *Heuristic) DecideVote(ctx context.Context, req Request) (VoteDecision, error) {
	if err := ctx.Err(); err != nil {
		return VoteDecision{}, err
	}
	gap := inflationGap(req)
	unemployment := 4.0
	if u := req.Snapshot.Employment.UnemploymentRate; u != nil {
		unemployment = *u
	}

	action := ActionHold
	magnitude := 0
	switch {
	case gap > 1.0:
		action, magnitude = ActionRaise, 25
		if req.Member.Stance == member.StanceHawk {
			magnitude = 50
		}
		if req.Member.Stance == member.StanceDove {
			action, magnitude = ActionHold, 0
		}
	case gap > 0.3 && req.Member.Stance == member.StanceHawk:
		action, magnitude = ActionRaise, 25
	case gap < -0.2 || unemployment > 4.5:
		action, magnitude = ActionCut, 25
		if req.Member.Stance == member.StanceDove && unemployment > 4.5 {
			magnitude = 50
		}
		if req.Member.Stance == member.StanceHawk && gap >= 0 {
			action, magnitude = ActionHold, 0
		}
	case unemployment > 4.2 && req.Member.Stance == member.StanceDove:
		action, magnitude = ActionCut, 25
	}

	vd := VoteDecision{
		MemberID:     req.Member.ID,
		Action:       action,
		MagnitudeBps: magnitude,
		Confidence:   0.6,
		KeyFactors:   []string{"inflation gap", "labor market"},
		Reasoning: fmt.Sprintf("Offline heuristic for %s stance: inflation gap %.1fpp, unemployment %.1f%%.",
			req.Member.Stance, gap, unemployment),
	}
	return vd, vd.CheckInvariants()
}

func (h *Heuristic) ProjectRates(ctx context.Context, req Request) (Projection, error) {
	if err := ctx.Err(); err != nil {
		return Projection{}, err
	}
	current, _ := req.RateUpper.Float64()
	var steps [3]float64
	longerRun := 2.75
	switch req.Member.Stance {
	case member.StanceHawk:
		steps = [3]float64{0, -0.25, -0.5}
		longerRun = 3.0
	case member.StanceDove:
		steps = [3]float64{-0.5, -1.0, -1.5}
		longerRun = 2.5
	default:
		steps = [3]float64{-0.25, -0.75, -1.0}
	}
	return Projection{
		MemberID: req.Member.ID,
		Rates: map[string]float64{
			"2025":       current + steps[0],
			"2026":       current + steps[1],
			"2027":       current + steps[2],
			"longer_run": longerRun,
		},
	}, nil
}

func inflationGap(req Request) float64 {
	if v := req.Snapshot.Inflation.CorePCEYoY; v != nil {
		return *v - inflationTarget
	}
	if v := req.Snapshot.Inflation.CPIYoY; v != nil {
		return *v - inflationTarget
	}
	return 0
}
