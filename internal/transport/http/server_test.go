package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedboard/internal/config"
	"fedboard/internal/engine"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
	"fedboard/internal/store"
)

type memStore struct {
	records map[string]meeting.MeetingRecord
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]meeting.MeetingRecord)}
}

func (m *memStore) Save(_ context.Context, rec meeting.MeetingRecord) error {
	if _, ok := m.records[rec.Period]; ok {
		return store.ErrDuplicatePeriod
	}
	m.records[rec.Period] = rec
	return nil
}

func (m *memStore) SaveOverwrite(_ context.Context, rec meeting.MeetingRecord) error {
	m.records[rec.Period] = rec
	return nil
}

func (m *memStore) Load(_ context.Context, period string) (meeting.MeetingRecord, error) {
	rec, ok := m.records[period]
	if !ok {
		return meeting.MeetingRecord{}, store.ErrNotFound
	}
	return rec, nil
}

func (m *memStore) List(_ context.Context, year int) ([]meeting.MeetingRecord, error) {
	var out []meeting.MeetingRecord
	for _, rec := range m.records {
		if year == 0 || rec.Year() == year {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

func (m *memStore) ExportCSV(_ context.Context, _ io.Writer, _ int) error { return nil }
func (m *memStore) Close() error                                          { return nil }

func testServer(t *testing.T, st store.Store) *httptest.Server {
	t.Helper()
	registry, err := member.NewRegistry("")
	require.NoError(t, err)
	cfg := &config.Config{
		Impact: config.ImpactConfig{Treasury2YPerBps: 0.5, Treasury10YPerBps: 1.0 / 3.0, SP500PctPerBps: -0.01, DXYPctPerBps: 0.02},
		Stance: config.StanceConfig{AlignedWeight: 50, NeutralHoldWeight: 25, NeutralMoveWeight: 25},
	}
	s, err := NewServer(ServerConfig{Store: st, Registry: registry, Config: cfg})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func seedRecord(t *testing.T, st store.Store, period string) meeting.MeetingRecord {
	t.Helper()
	prev := meeting.RateRange{Lower: decimal.RequireFromString("4.25"), Upper: decimal.RequireFromString("4.50")}
	rec := meeting.MeetingRecord{
		ID:            "rec-" + period,
		Period:        period,
		FinalAction:   engine.ActionCut,
		MagnitudeBps:  25,
		PreviousRange: prev,
		FinalRange:    prev.Shift(-25),
		Tally:         meeting.Tally{For: 2, Against: 1},
		Votes: []engine.VoteDecision{
			{MemberID: "powell", Action: engine.ActionCut, MagnitudeBps: 25, Confidence: 0.8, Reasoning: "r"},
			{MemberID: "williams", Action: engine.ActionCut, MagnitudeBps: 25, Confidence: 0.7, Reasoning: "r"},
			{MemberID: "bowman", Action: engine.ActionHold, Confidence: 0.9, Reasoning: "r"},
		},
		Dissenters: []string{"bowman"},
	}
	require.NoError(t, st.Save(context.Background(), rec))
	return rec
}

func getJSON(t *testing.T, url string, status int) map[string]json.RawMessage {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, status, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHealthz(t *testing.T) {
	srv := testServer(t, newMemStore())
	out := getJSON(t, srv.URL+"/healthz", http.StatusOK)
	assert.JSONEq(t, `"ok"`, string(out["status"]))
}

func TestMeetingListAndDetail(t *testing.T) {
	st := newMemStore()
	seedRecord(t, st, "2025-07")
	seedRecord(t, st, "2024-12")
	srv := testServer(t, st)

	out := getJSON(t, srv.URL+"/api/v1/meetings", http.StatusOK)
	var records []meeting.MeetingRecord
	require.NoError(t, json.Unmarshal(out["meetings"], &records))
	require.Len(t, records, 2)
	assert.Equal(t, "2024-12", records[0].Period)

	out = getJSON(t, srv.URL+"/api/v1/meetings?year=2025", http.StatusOK)
	require.NoError(t, json.Unmarshal(out["meetings"], &records))
	require.Len(t, records, 1)

	out = getJSON(t, srv.URL+"/api/v1/meetings/2025-07", http.StatusOK)
	var rec meeting.MeetingRecord
	require.NoError(t, json.Unmarshal(out["meeting"], &rec))
	assert.Equal(t, engine.ActionCut, rec.FinalAction)

	getJSON(t, srv.URL+"/api/v1/meetings/2025-09", http.StatusNotFound)
	getJSON(t, srv.URL+"/api/v1/meetings/bogus", http.StatusBadRequest)
}

func TestMeetingMinutes(t *testing.T) {
	st := newMemStore()
	seedRecord(t, st, "2025-07")
	srv := testServer(t, st)

	resp, err := http.Get(srv.URL + "/api/v1/meetings/2025-07/minutes")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// 内置名册能把成员 ID 解析成姓名
	assert.Contains(t, string(body), "Jerome H. Powell")
	assert.Contains(t, string(body), "July 2025")
}

func TestMembersEndpoint(t *testing.T) {
	srv := testServer(t, newMemStore())

	out := getJSON(t, srv.URL+"/api/v1/members", http.StatusOK)
	var all []member.Member
	require.NoError(t, json.Unmarshal(out["members"], &all))
	assert.Len(t, all, 19)

	out = getJSON(t, srv.URL+"/api/v1/members?year=2025", http.StatusOK)
	var eligible []member.Member
	require.NoError(t, json.Unmarshal(out["members"], &eligible))
	assert.Len(t, eligible, 12)

	getJSON(t, srv.URL+"/api/v1/members?year=abc", http.StatusBadRequest)
}

func TestScheduleEndpoint(t *testing.T) {
	srv := testServer(t, newMemStore())
	out := getJSON(t, srv.URL+"/api/v1/schedule/2025", http.StatusOK)
	var periods []string
	require.NoError(t, json.Unmarshal(out["periods"], &periods))
	assert.Len(t, periods, 8)
	assert.Equal(t, "2025-07", periods[4])
}

func TestAnalyticsEndpoints(t *testing.T) {
	st := newMemStore()
	seedRecord(t, st, "2025-07")
	srv := testServer(t, st)

	out := getJSON(t, srv.URL+"/api/v1/analytics/stance", http.StatusOK)
	assert.NotEmpty(t, out["scores"])

	out = getJSON(t, srv.URL+"/api/v1/analytics/dissents", http.StatusOK)
	var rate float64
	require.NoError(t, json.Unmarshal(out["dissentRate"], &rate))
	assert.InDelta(t, 1.0, rate, 1e-9)

	out = getJSON(t, srv.URL+"/api/v1/analytics/impact?action=cut&bps=25", http.StatusOK)
	var impact struct {
		Treasury2YBps int `json:"treasury2yBps"`
	}
	require.NoError(t, json.Unmarshal(out["impact"], &impact))
	assert.Equal(t, -13, impact.Treasury2YBps)

	getJSON(t, srv.URL+"/api/v1/analytics/impact?action=nuke", http.StatusBadRequest)
}
