package engine

import (
	"context"
	"errors"
	"fmt"

	"fedboard/internal/indicator"
	"fedboard/internal/member"

	"github.com/shopspring/decimal"
)

// Action 单票的政策动作。
type Action string

const (
	ActionCut   Action = "cut"
	ActionHold  Action = "hold"
	ActionRaise Action = "raise"
)

func (a Action) Valid() bool {
	switch a {
	case ActionCut, ActionHold, ActionRaise:
		return true
	}
	return false
}

// VoteDecision 一位委员对本次会议的投票。
// MagnitudeBps 仅在 action 为 cut/raise 时出现，取 25 的正整数倍。
type VoteDecision struct {
	MemberID     string   `json:"memberId"`
	Action       Action   `json:"action"`
	MagnitudeBps int      `json:"magnitudeBps,omitempty"`
	Confidence   float64  `json:"confidence"`
	KeyFactors   []string `json:"keyFactors"`
	Reasoning    string   `json:"reasoning"`
}

// Projection 点阵图用的利率预测，key 为 "2025"/"2026"/"2027"/"longer_run"。
type Projection struct {
	MemberID string             `json:"memberId"`
	Rates    map[string]float64 `json:"rates"`
}

// Request 对单个委员的一次决策请求。
type Request struct {
	TraceID    string
	Member     member.Member
	Period     string
	Snapshot   indicator.Snapshot
	RateLower  decimal.Decimal
	RateUpper  decimal.Decimal
}

// Engine 把一位委员的人设与经济简报变成一张结构化选票。
type Engine interface {
	DecideVote(ctx context.Context, req Request) (VoteDecision, error)
	ProjectRates(ctx context.Context, req Request) (Projection, error)
}

// 错误分类：Transient 允许编排层重试，Invalid 表示响应不可用且重试无意义由调用方决定。
var (
	ErrTransient = errors.New("transient engine failure")
	ErrInvalid   = errors.New("invalid engine response")
)

func transientf(format string, v ...any) error {
	return fmt.Errorf(format+": %w", append(v, ErrTransient)...)
}

func invalidf(format string, v ...any) error {
	return fmt.Errorf(format+": %w", append(v, ErrInvalid)...)
}

// IsTransient 判断错误是否值得重试。
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
