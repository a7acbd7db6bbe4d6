package meeting

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"fedboard/internal/engine"
	"fedboard/internal/indicator"

	"github.com/shopspring/decimal"
)

// 会期以 "YYYY-MM" 为键，一个会期至多一条正式记录。

var periodPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParsePeriod 解析 "YYYY-MM" 会期串。
func ParsePeriod(period string) (year, month int, err error) {
	m := periodPattern.FindStringSubmatch(period)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid period %q, want YYYY-MM", period)
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid period %q: month out of range", period)
	}
	return year, month, nil
}

// RateRange 联邦基金目标区间，边界用 decimal 保证 25bp 步进无精度损失。
type RateRange struct {
	Lower decimal.Decimal `json:"lower"`
	Upper decimal.Decimal `json:"upper"`
}

func (r RateRange) String() string {
	return r.Lower.StringFixed(2) + "-" + r.Upper.StringFixed(2) + "%"
}

// Shift 按带符号的 bps 平移区间。
func (r RateRange) Shift(bps int) RateRange {
	delta := decimal.New(int64(bps), -2)
	return RateRange{
		Lower: r.Lower.Add(delta),
		Upper: r.Upper.Add(delta),
	}
}

// Tally 票数统计。Abstain 恒为 0：动作枚举里没有弃权，保留字段只为导出格式稳定。
type Tally struct {
	For     int `json:"for"`
	Against int `json:"against"`
	Abstain int `json:"abstain"`
}

// MeetingRecord 一次会议模拟的正式记录。Votes 保持名册顺序。
type MeetingRecord struct {
	ID            string                `json:"id"`
	Period        string                `json:"period"`
	FinalAction   engine.Action         `json:"finalAction"`
	MagnitudeBps  int                   `json:"magnitudeBps"`
	PreviousRange RateRange             `json:"previousRange"`
	FinalRange    RateRange             `json:"finalRange"`
	Tally         Tally                 `json:"tally"`
	Votes         []engine.VoteDecision `json:"votes"`
	Dissenters    []string              `json:"dissenters,omitempty"`
	Projections   []engine.Projection   `json:"projections,omitempty"`
	Snapshot      indicator.Snapshot    `json:"snapshot"`
	// Model 产出本次选票的引擎标识（模型名或 heuristic）。
	Model     string    `json:"model,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Year 会期所在年份，名册轮换按它判定。
func (r MeetingRecord) Year() int {
	y, _, _ := ParsePeriod(r.Period)
	return y
}
