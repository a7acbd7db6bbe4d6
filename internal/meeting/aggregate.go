package meeting

// 中文说明：
// 聚票规则（成文即法）：
//   1. 动作按简单多数取胜；最高票并列（含三方并列）一律落到 hold。
//   2. 幅度取获胜动作选票里的众数；众数并列取较小幅度。
//   3. 终局区间 = 上一区间按带符号 bps 平移，cut 为负、raise 为正。
//   4. for = 与终局动作一致的票数，其余计 against；abstain 恒为 0。
//   5. 与终局动作不一致的委员记为 dissenter，保持名册顺序。

import (
	"sort"

	"fedboard/internal/engine"
)

// Outcome 聚票结果。
type Outcome struct {
	Action       engine.Action
	MagnitudeBps int
	FinalRange   RateRange
	Tally        Tally
	Dissenters   []string
}

// Aggregate 把名册顺序的选票折成一个委员会决定。
func Aggregate(votes []engine.VoteDecision, previous RateRange) Outcome {
	counts := make(map[engine.Action]int)
	for _, v := range votes {
		counts[v.Action]++
	}

	action := winningAction(counts)
	magnitude := 0
	if action != engine.ActionHold {
		magnitude = modeMagnitude(votes, action)
	}

	out := Outcome{
		Action:       action,
		MagnitudeBps: magnitude,
		FinalRange:   previous,
	}
	switch action {
	case engine.ActionCut:
		out.FinalRange = previous.Shift(-magnitude)
	case engine.ActionRaise:
		out.FinalRange = previous.Shift(magnitude)
	}
	for _, v := range votes {
		if v.Action == action {
			out.Tally.For++
			continue
		}
		out.Tally.Against++
		out.Dissenters = append(out.Dissenters, v.MemberID)
	}
	return out
}

// winningAction 返回票数唯一最高的动作，任何并列都回落到 hold。
func winningAction(counts map[engine.Action]int) engine.Action {
	best := engine.ActionHold
	bestCount := -1
	tied := false
	for _, a := range []engine.Action{engine.ActionCut, engine.ActionHold, engine.ActionRaise} {
		c := counts[a]
		if c > bestCount {
			best, bestCount, tied = a, c, false
		} else if c == bestCount {
			tied = true
		}
	}
	if tied {
		return engine.ActionHold
	}
	return best
}

// modeMagnitude 获胜动作选票里幅度的众数，并列取较小值。
func modeMagnitude(votes []engine.VoteDecision, action engine.Action) int {
	freq := make(map[int]int)
	for _, v := range votes {
		if v.Action == action {
			freq[v.MagnitudeBps]++
		}
	}
	mags := make([]int, 0, len(freq))
	for m := range freq {
		mags = append(mags, m)
	}
	sort.Ints(mags)
	best, bestCount := 0, 0
	for _, m := range mags {
		if freq[m] > bestCount {
			best, bestCount = m, freq[m]
		}
	}
	return best
}
