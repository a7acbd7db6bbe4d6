package analytics

// 中文说明：
// 立场一致性评分：把每位委员的历史投票与其基线倾向对照，折成 [-100,100] 的分值。
// 与基线一致记正分、相反记负分，cut/raise 按 25bp 一档缩放，中立派以 hold 为基准。

import (
	"math"
	"sort"

	"fedboard/internal/config"
	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
)

// StanceScore 单个委员的立场评分。
type StanceScore struct {
	MemberID string        `json:"memberId"`
	Baseline member.Stance `json:"baseline"`
	Votes    int           `json:"votes"`
	// Score 已按票数归一并钳制在 [-100,100]。
	Score int `json:"score"`
}

// StanceScores 汇总历史记录，按分值降序、同分按 memberId 升序返回。
// 没有任何投票记录的委员不出现在结果里。
func StanceScores(records []meeting.MeetingRecord, roster []member.Member, weights config.StanceConfig) []StanceScore {
	baseline := make(map[string]member.Stance, len(roster))
	for _, m := range roster {
		baseline[m.ID] = m.Stance
	}

	total := make(map[string]float64)
	count := make(map[string]int)
	for _, rec := range records {
		for _, v := range rec.Votes {
			stance, ok := baseline[v.MemberID]
			if !ok {
				stance = member.StanceNeutral
			}
			total[v.MemberID] += voteWeight(stance, v, weights)
			count[v.MemberID]++
		}
	}

	out := make([]StanceScore, 0, len(total))
	for id, sum := range total {
		n := count[id]
		score := clampScore(sum / float64(n))
		stance, ok := baseline[id]
		if !ok {
			stance = member.StanceNeutral
		}
		out = append(out, StanceScore{MemberID: id, Baseline: stance, Votes: n, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out
}

func voteWeight(stance member.Stance, v engine.VoteDecision, weights config.StanceConfig) float64 {
	scale := float64(v.MagnitudeBps) / 25
	switch stance {
	case member.StanceHawk:
		switch v.Action {
		case engine.ActionRaise:
			return float64(weights.AlignedWeight) * scale
		case engine.ActionCut:
			return -float64(weights.AlignedWeight) * scale
		}
		return 0
	case member.StanceDove:
		switch v.Action {
		case engine.ActionCut:
			return float64(weights.AlignedWeight) * scale
		case engine.ActionRaise:
			return -float64(weights.AlignedWeight) * scale
		}
		return 0
	default:
		if v.Action == engine.ActionHold {
			return float64(weights.NeutralHoldWeight)
		}
		return -float64(weights.NeutralMoveWeight) * scale
	}
}

func clampScore(v float64) int {
	if v > 100 {
		return 100
	}
	if v < -100 {
		return -100
	}
	return int(math.Round(v))
}
