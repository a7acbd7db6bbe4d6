package analytics

import (
	"math"

	"fedboard/internal/config"
	"fedboard/internal/engine"
)

// ImpactEstimate 政策动作的市场冲击估算。系数是查表启发式，不是模型输出。
type ImpactEstimate struct {
	Treasury2YBps  int     `json:"treasury2yBps"`
	Treasury10YBps int     `json:"treasury10yBps"`
	SP500Pct       float64 `json:"sp500Pct"`
	DXYPct         float64 `json:"dxyPct"`
}

// EstimateImpact 按带符号 bps 估算市场反应。cut 取负、raise 取正、hold 全零。
// 收益率同向移动，股指反向，美元同向。
func EstimateImpact(action engine.Action, magnitudeBps int, cfg config.ImpactConfig) ImpactEstimate {
	signed := 0
	switch action {
	case engine.ActionCut:
		signed = -magnitudeBps
	case engine.ActionRaise:
		signed = magnitudeBps
	}
	if signed == 0 {
		return ImpactEstimate{}
	}
	bps := float64(signed)
	return ImpactEstimate{
		Treasury2YBps:  roundHalfAway(bps * cfg.Treasury2YPerBps),
		Treasury10YBps: roundHalfAway(bps * cfg.Treasury10YPerBps),
		SP500Pct:       round2(bps * cfg.SP500PctPerBps),
		DXYPct:         round2(bps * cfg.DXYPctPerBps),
	}
}

func roundHalfAway(v float64) int {
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
