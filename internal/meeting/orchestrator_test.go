package meeting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fedboard/internal/engine"
	"fedboard/internal/indicator"
	"fedboard/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster(t *testing.T, n int) *member.Registry {
	t.Helper()
	body := "replace: true\nmembers:\n"
	for i := 0; i < n; i++ {
		body += fmt.Sprintf("  - id: m%d\n    name: Member %d\n    role: Governor\n    bank: Board of Governors\n    stance: neutral\n    style: measured\n", i, i)
	}
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	r, err := member.NewRegistry(path)
	require.NoError(t, err)
	return r
}

func testSnapshot() indicator.Snapshot {
	lower, upper := 4.25, 4.5
	return indicator.Snapshot{
		AsOfDate: time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC),
		Markets: indicator.Markets{
			FedFundsTargetLower: &lower,
			FedFundsTargetUpper: &upper,
		},
	}
}

func testOpts() Options {
	return Options{Concurrency: 4, MaxAttempts: 3, BackoffBase: time.Millisecond}
}

func TestRunProducesRecordInRosterOrder(t *testing.T) {
	roster := testRoster(t, 5)
	eng := engine.NewScripted()
	eng.ScriptVote("m0", engine.VoteOutcome{Decision: vote("", engine.ActionCut, 25)})
	eng.ScriptVote("m1", engine.VoteOutcome{Decision: vote("", engine.ActionCut, 25)})
	eng.ScriptVote("m2", engine.VoteOutcome{Decision: vote("", engine.ActionCut, 50)})
	eng.ScriptVote("m3", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})
	eng.ScriptVote("m4", engine.VoteOutcome{Decision: vote("", engine.ActionRaise, 25)})

	o := NewOrchestrator(eng, roster, testOpts())
	rec, err := o.Run(context.Background(), RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2025-07", rec.Period)
	assert.Equal(t, engine.ActionCut, rec.FinalAction)
	assert.Equal(t, 25, rec.MagnitudeBps)
	assert.Equal(t, "4.25-4.50%", rec.PreviousRange.String())
	assert.Equal(t, "4.00-4.25%", rec.FinalRange.String())
	assert.Equal(t, Tally{For: 3, Against: 2}, rec.Tally)
	assert.Equal(t, []string{"m3", "m4"}, rec.Dissenters)
	assert.False(t, rec.CreatedAt.IsZero())

	ids := make([]string, 0, len(rec.Votes))
	for _, v := range rec.Votes {
		ids = append(ids, v.MemberID)
	}
	assert.Equal(t, []string{"m0", "m1", "m2", "m3", "m4"}, ids)
}

func TestRunRetriesTransientThenSucceeds(t *testing.T) {
	roster := testRoster(t, 2)
	eng := engine.NewScripted()
	transient := fmt.Errorf("rate limited: %w", engine.ErrTransient)
	eng.ScriptVote("m0",
		engine.VoteOutcome{Err: transient},
		engine.VoteOutcome{Err: transient},
		engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)},
	)
	eng.ScriptVote("m1", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})

	o := NewOrchestrator(eng, roster, testOpts())
	rec, err := o.Run(context.Background(), RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.NoError(t, err)
	assert.Equal(t, engine.ActionHold, rec.FinalAction)
	assert.Equal(t, 3, eng.Calls("m0"))
}

func TestRunPartialFailureAfterRetryBudget(t *testing.T) {
	roster := testRoster(t, 2)
	eng := engine.NewScripted()
	transient := fmt.Errorf("rate limited: %w", engine.ErrTransient)
	eng.ScriptVote("m0", engine.VoteOutcome{Err: transient})
	eng.ScriptVote("m1", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})

	o := NewOrchestrator(eng, roster, testOpts())
	_, err := o.Run(context.Background(), RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.Error(t, err)

	var pf *PartialFailureError
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, "m0", pf.MemberID)
	assert.Equal(t, 3, pf.Attempts)
	assert.Equal(t, 3, eng.Calls("m0"))
}

func TestRunInvalidResponseFailsFast(t *testing.T) {
	roster := testRoster(t, 2)
	eng := engine.NewScripted()
	eng.ScriptVote("m0", engine.VoteOutcome{Err: fmt.Errorf("garbage: %w", engine.ErrInvalid)})
	eng.ScriptVote("m1", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})

	o := NewOrchestrator(eng, roster, testOpts())
	_, err := o.Run(context.Background(), RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.Error(t, err)

	var pf *PartialFailureError
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, 1, pf.Attempts)
	assert.Equal(t, 1, eng.Calls("m0"))
}

func TestRunCancelledContext(t *testing.T) {
	roster := testRoster(t, 3)
	eng := engine.NewScripted()
	for i := 0; i < 3; i++ {
		eng.ScriptVote(fmt.Sprintf("m%d", i), engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(eng, roster, testOpts())
	_, err := o.Run(ctx, RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.Error(t, err)
}

func TestRunMissingRange(t *testing.T) {
	roster := testRoster(t, 1)
	o := NewOrchestrator(engine.NewScripted(), roster, testOpts())
	_, err := o.Run(context.Background(), RunParams{Period: "2025-07"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate range")
}

func TestRunProjectionsBestEffort(t *testing.T) {
	roster := testRoster(t, 2)
	eng := engine.NewScripted()
	eng.ScriptVote("m0", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})
	eng.ScriptVote("m1", engine.VoteOutcome{Decision: vote("", engine.ActionHold, 0)})
	eng.ScriptProjection(engine.Projection{MemberID: "m1", Rates: map[string]float64{"2025": 4.0}})
	// m0 没有脚本，投影失败应被跳过

	opts := testOpts()
	opts.CollectProjections = true
	o := NewOrchestrator(eng, roster, opts)
	rec, err := o.Run(context.Background(), RunParams{Period: "2025-07", Snapshot: testSnapshot()})
	require.NoError(t, err)
	require.Len(t, rec.Projections, 1)
	assert.Equal(t, "m1", rec.Projections[0].MemberID)
}
