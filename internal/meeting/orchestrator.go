package meeting

import (
	"context"
	"fmt"
	"time"

	"fedboard/internal/engine"
	"fedboard/internal/indicator"
	"fedboard/internal/logger"
	"fedboard/internal/member"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Options 控制一次会议模拟的执行策略。
type Options struct {
	// Concurrency <= 1 表示顺序征票。
	Concurrency int
	// MaxAttempts 单个委员的总尝试次数（含首次）。
	MaxAttempts int
	// BackoffBase 首次重试前的等待，之后按指数翻倍。
	BackoffBase time.Duration
	// CollectProjections 开启时在投票后追加点阵图预测，失败不影响会议结果。
	CollectProjections bool
}

func (o Options) normalized() Options {
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = 3
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = 500 * time.Millisecond
	}
	return o
}

// PartialFailureError 某位委员在重试预算内仍未出票，本次会议整体作废。
type PartialFailureError struct {
	MemberID string
	Attempts int
	Err      error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("member %s failed after %d attempt(s): %v", e.MemberID, e.Attempts, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// RunParams 一次会议模拟的输入。
type RunParams struct {
	Period   string
	Snapshot indicator.Snapshot
	// PreviousRange 缺省时从快照的目标区间推导。
	PreviousRange *RateRange
}

// Orchestrator 驱动一次完整的会议：征票、聚票、成录。
type Orchestrator struct {
	engine engine.Engine
	roster *member.Registry
	opts   Options
}

func NewOrchestrator(e engine.Engine, roster *member.Registry, opts Options) *Orchestrator {
	return &Orchestrator{engine: e, roster: roster, opts: opts.normalized()}
}

// Run 执行一次会议模拟。任何一位委员最终失败都会取消其余调用并返回
// PartialFailureError，不产出任何记录。
func (o *Orchestrator) Run(ctx context.Context, params RunParams) (MeetingRecord, error) {
	year, _, err := ParsePeriod(params.Period)
	if err != nil {
		return MeetingRecord{}, err
	}
	eligible := o.roster.Eligible(year)
	if len(eligible) == 0 {
		return MeetingRecord{}, fmt.Errorf("no eligible voters for %s", params.Period)
	}
	previous, err := resolvePreviousRange(params)
	if err != nil {
		return MeetingRecord{}, err
	}
	logger.Infof("Meeting %s: %d eligible voters, range %s, concurrency=%d",
		params.Period, len(eligible), previous.String(), o.opts.Concurrency)

	votes := make([]engine.VoteDecision, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)
	for i, m := range eligible {
		i, m := i, m
		g.Go(func() error {
			req := engine.Request{
				TraceID:   uuid.NewString(),
				Member:    m,
				Period:    params.Period,
				Snapshot:  params.Snapshot,
				RateLower: previous.Lower,
				RateUpper: previous.Upper,
			}
			vd, err := o.decideWithRetry(gctx, req)
			if err != nil {
				return err
			}
			vd.MemberID = m.ID
			votes[i] = vd
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return MeetingRecord{}, err
	}

	outcome := Aggregate(votes, previous)
	record := MeetingRecord{
		ID:            uuid.NewString(),
		Period:        params.Period,
		FinalAction:   outcome.Action,
		MagnitudeBps:  outcome.MagnitudeBps,
		PreviousRange: previous,
		FinalRange:    outcome.FinalRange,
		Tally:         outcome.Tally,
		Votes:         votes,
		Dissenters:    outcome.Dissenters,
		Snapshot:      params.Snapshot,
		CreatedAt:     time.Now().UTC(),
	}
	logger.Infof("Meeting %s decided: %s %dbps, tally %d-%d, %d dissenter(s)",
		params.Period, record.FinalAction, record.MagnitudeBps,
		record.Tally.For, record.Tally.Against, len(record.Dissenters))

	if o.opts.CollectProjections {
		record.Projections = o.collectProjections(ctx, eligible, params, previous)
	}
	return record, nil
}

func (o *Orchestrator) decideWithRetry(ctx context.Context, req engine.Request) (engine.VoteDecision, error) {
	var lastErr error
	for attempt := 1; attempt <= o.opts.MaxAttempts; attempt++ {
		vd, err := o.engine.DecideVote(ctx, req)
		if err == nil {
			return vd, nil
		}
		lastErr = err
		if !engine.IsTransient(err) {
			return engine.VoteDecision{}, &PartialFailureError{MemberID: req.Member.ID, Attempts: attempt, Err: err}
		}
		if attempt == o.opts.MaxAttempts {
			break
		}
		delay := o.opts.BackoffBase << (attempt - 1)
		logger.Warnf("Vote attempt %d/%d failed for %s, retrying in %s: %v",
			attempt, o.opts.MaxAttempts, req.Member.ID, delay, err)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return engine.VoteDecision{}, &PartialFailureError{MemberID: req.Member.ID, Attempts: attempt, Err: ctx.Err()}
		case <-timer.C:
		}
	}
	return engine.VoteDecision{}, &PartialFailureError{MemberID: req.Member.ID, Attempts: o.opts.MaxAttempts, Err: lastErr}
}

// collectProjections 尽力收集点阵图预测，单个失败只记日志。
func (o *Orchestrator) collectProjections(ctx context.Context, eligible []member.Member, params RunParams, previous RateRange) []engine.Projection {
	results := make([]*engine.Projection, len(eligible))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.Concurrency)
	for i, m := range eligible {
		i, m := i, m
		g.Go(func() error {
			req := engine.Request{
				TraceID:   uuid.NewString(),
				Member:    m,
				Period:    params.Period,
				Snapshot:  params.Snapshot,
				RateLower: previous.Lower,
				RateUpper: previous.Upper,
			}
			p, err := o.engine.ProjectRates(gctx, req)
			if err != nil {
				logger.Warnf("Projection failed for %s, skipping: %v", m.ID, err)
				return nil
			}
			p.MemberID = m.ID
			results[i] = &p
			return nil
		})
	}
	_ = g.Wait()
	out := make([]engine.Projection, 0, len(eligible))
	for _, p := range results {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func resolvePreviousRange(params RunParams) (RateRange, error) {
	if params.PreviousRange != nil {
		return *params.PreviousRange, nil
	}
	lower := params.Snapshot.Markets.FedFundsTargetLower
	upper := params.Snapshot.Markets.FedFundsTargetUpper
	if lower == nil || upper == nil {
		return RateRange{}, fmt.Errorf("previous rate range unavailable for %s", params.Period)
	}
	return RateRange{
		Lower: decimal.NewFromFloat(*lower),
		Upper: decimal.NewFromFloat(*upper),
	}, nil
}
