package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedboard/internal/app"
	"fedboard/internal/config"
)

// 假 FRED：只提供失业率与目标区间，其余序列返回错误，
// 离线引擎据此应当倾向降息。
func fakeFredServer(t *testing.T) *httptest.Server {
	t.Helper()
	responses := map[string]string{
		"UNRATE":   `{"observations":[{"date":"2025-08-01","value":"4.6"},{"date":"2025-07-01","value":"4.5"},{"date":"2025-06-01","value":"4.4"}]}`,
		"DFEDTARU": `{"observations":[{"date":"2025-09-16","value":"4.50"}]}`,
		"DFEDTARL": `{"observations":[{"date":"2025-09-16","value":"4.25"}]}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Query().Get("series_id")]
		if !ok {
			fmt.Fprint(w, `{"error_message":"series does not exist"}`)
			return
		}
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testApp(t *testing.T) *app.App {
	t.Helper()
	srv := fakeFredServer(t)
	tmp := t.TempDir()

	cfg := &config.Config{}
	cfg.App.HTTPAddr = ":0"
	cfg.App.LogLevel = "error"
	cfg.Data.Dir = tmp
	cfg.Data.StorePath = filepath.Join(tmp, "meetings.db")
	cfg.FRED.BaseURL = srv.URL
	cfg.FRED.APIKey = "test-key"
	cfg.FRED.CacheDir = filepath.Join(tmp, "fred_cache")
	cfg.FRED.CacheTTLMonthlyS = 3600
	cfg.FRED.CacheTTLDailyS = 3600
	cfg.FRED.RequestTimeoutSec = 5
	cfg.Meeting.Concurrency = 4
	cfg.Meeting.MaxAttempts = 1
	cfg.Meeting.BackoffBaseMs = 1
	cfg.Engine.APIURL = "http://127.0.0.1:1/v1"
	cfg.Impact = config.ImpactConfig{Treasury2YPerBps: 0.5, Treasury10YPerBps: 1.0 / 3.0, SP500PctPerBps: -0.01, DXYPctPerBps: 0.02}
	cfg.Stance = config.StanceConfig{AlignedWeight: 50, NeutralHoldWeight: 25, NeutralMoveWeight: 25}

	a, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func runCommand(t *testing.T, a *app.App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestSimulateOfflineEndToEnd(t *testing.T) {
	a := testApp(t)

	out, err := runCommand(t, a, "simulate", "--offline", "--period", "2025-09", "--projections")
	require.NoError(t, err)
	assert.Contains(t, out, "Meeting 2025-09:")
	assert.Contains(t, out, "Unemployment Rate: 4.6%")

	// 同会期重跑必须显式 overwrite
	_, err = runCommand(t, a, "simulate", "--offline", "--period", "2025-09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--overwrite")

	_, err = runCommand(t, a, "simulate", "--offline", "--period", "2025-09", "--overwrite")
	require.NoError(t, err)

	out, err = runCommand(t, a, "history", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-09")

	out, err = runCommand(t, a, "minutes", "--period", "2025-09")
	require.NoError(t, err)
	assert.Contains(t, out, "FOMC Meeting Minutes: September 2025")

	out, err = runCommand(t, a, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "period,final_action")
	assert.Contains(t, out, "2025-09")

	out, err = runCommand(t, a, "stance")
	require.NoError(t, err)
	assert.Contains(t, out, "MEMBER")
}

func TestSimulateRejectsBadPeriod(t *testing.T) {
	a := testApp(t)
	_, err := runCommand(t, a, "simulate", "--offline", "--period", "2025/09")
	require.Error(t, err)
}

func TestMembersCommand(t *testing.T) {
	a := testApp(t)

	out, err := runCommand(t, a, "members")
	require.NoError(t, err)
	assert.Contains(t, out, "Jerome H. Powell")

	out, err = runCommand(t, a, "members", "--year", "2025", "--stance", "hawk")
	require.NoError(t, err)
	assert.NotContains(t, out, "Jerome H. Powell")

	_, err = runCommand(t, a, "members", "--stance", "raptor")
	require.Error(t, err)
}

func TestImpactCommand(t *testing.T) {
	a := testApp(t)

	out, err := runCommand(t, a, "impact", "--action", "cut", "--bps", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "2Y Treasury:  -13bps")
	assert.Contains(t, out, "S&P 500:      +0.25%")

	_, err = runCommand(t, a, "impact", "--action", "cut", "--bps", "30")
	require.Error(t, err)
}

func TestHistoryEmpty(t *testing.T) {
	a := testApp(t)
	out, err := runCommand(t, a, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "no meeting records")
}
