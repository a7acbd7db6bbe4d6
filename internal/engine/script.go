package engine

import (
	"context"
	"sync"
)

// Scripted 按预设脚本回放结果，测试与演练用。
// 每个委员的结果按顺序消费，末项耗尽后重复返回最后一项。
type Scripted struct {
	mu          sync.Mutex
	votes       map[string][]VoteOutcome
	projections map[string]Projection
	calls       map[string]int
}

// VoteOutcome 脚本中的一次投票结果。
type VoteOutcome struct {
	Decision VoteDecision
	Err      error
}

func NewScripted() *Scripted {
	return &Scripted{
		votes:       make(map[string][]VoteOutcome),
		projections: make(map[string]Projection),
		calls:       make(map[string]int),
	}
}

// ScriptVote 追加一个委员的投票结果。
func (s *Scripted) ScriptVote(memberID string, outcomes ...VoteOutcome) {
	s.mu.Lock()
	s.votes[memberID] = append(s.votes[memberID], outcomes...)
	s.mu.Unlock()
}

// ScriptProjection 设置委员的利率预测。
func (s *Scripted) ScriptProjection(p Projection) {
	s.mu.Lock()
	s.projections[p.MemberID] = p
	s.mu.Unlock()
}

// Calls 返回某委员的投票调用次数。
func (s *Scripted) Calls(memberID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[memberID]
}

func (s *Scripted) DecideVote(ctx context.Context, req Request) (VoteDecision, error) {
	if err := ctx.Err(); err != nil {
		return VoteDecision{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := req.Member.ID
	s.calls[id]++
	script := s.votes[id]
	if len(script) == 0 {
		return VoteDecision{}, invalidf("no scripted vote for %s", id)
	}
	idx := s.calls[id] - 1
	if idx >= len(script) {
		idx = len(script) - 1
	}
	out := script[idx]
	if out.Err != nil {
		return VoteDecision{}, out.Err
	}
	d := out.Decision
	if d.MemberID == "" {
		d.MemberID = id
	}
	return d, nil
}

func (s *Scripted) ProjectRates(ctx context.Context, req Request) (Projection, error) {
	if err := ctx.Err(); err != nil {
		return Projection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projections[req.Member.ID]
	if !ok {
		return Projection{}, invalidf("no scripted projection for %s", req.Member.ID)
	}
	return p, nil
}
