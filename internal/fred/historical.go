package fred

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"fedboard/internal/engine"
)

// 中文说明：
// 从目标区间上下沿序列（DFEDTARU/DFEDTARL）还原某次会议的真实决议。
// 取会议日前 7 天到后 5 天的窗口：窗口内最后一个早于会议日的观测是会前区间，
// 第一个不早于会议日的观测是会后区间，中值变化折算成 bps。

// ActualDecision 某次会议的真实利率决议。
type ActualDecision struct {
	MeetingDate   time.Time       `json:"meetingDate"`
	RateLower     decimal.Decimal `json:"rateLower"`
	RateUpper     decimal.Decimal `json:"rateUpper"`
	PreviousLower decimal.Decimal `json:"previousLower"`
	PreviousUpper decimal.Decimal `json:"previousUpper"`
	ChangeBps     int             `json:"changeBps"`
	Action        engine.Action   `json:"action"`
}

// ActualDecisionAt 查询给定会议日附近的真实决议。
func (c *Client) ActualDecisionAt(ctx context.Context, meetingDate time.Time) (*ActualDecision, error) {
	start := meetingDate.AddDate(0, 0, -7)
	end := meetingDate.AddDate(0, 0, 5)

	upper, err := c.seriesWindow(ctx, Series["fed_funds_target_upper"], start, end)
	if err != nil {
		return nil, err
	}
	lower, err := c.seriesWindow(ctx, Series["fed_funds_target_lower"], start, end)
	if err != nil {
		return nil, err
	}

	prevUpper, newUpper, err := splitAround(upper, meetingDate)
	if err != nil {
		return nil, fmt.Errorf("目标区间上沿: %w", err)
	}
	prevLower, newLower, err := splitAround(lower, meetingDate)
	if err != nil {
		return nil, fmt.Errorf("目标区间下沿: %w", err)
	}

	prevMid := (prevUpper.Value + prevLower.Value) / 2
	newMid := (newUpper.Value + newLower.Value) / 2
	changeBps := int(math.Round((newMid - prevMid) * 100))

	action := engine.ActionHold
	switch {
	case changeBps > 0:
		action = engine.ActionRaise
	case changeBps < 0:
		action = engine.ActionCut
	}

	return &ActualDecision{
		MeetingDate:   meetingDate,
		RateLower:     decimal.NewFromFloat(newLower.Value),
		RateUpper:     decimal.NewFromFloat(newUpper.Value),
		PreviousLower: decimal.NewFromFloat(prevLower.Value),
		PreviousUpper: decimal.NewFromFloat(prevUpper.Value),
		ChangeBps:     changeBps,
		Action:        action,
	}, nil
}

// splitAround 在升序观测里找会议日前后各一条观测。
func splitAround(obs []Observation, meetingDate time.Time) (prev, next Observation, err error) {
	day := meetingDate.Truncate(24 * time.Hour)
	hasPrev, hasNext := false, false
	for _, o := range obs {
		if o.Date.Before(day) {
			prev, hasPrev = o, true
			continue
		}
		if !hasNext {
			next, hasNext = o, true
		}
	}
	if !hasPrev || !hasNext {
		return prev, next, fmt.Errorf("窗口内观测不足（%d 条）", len(obs))
	}
	return prev, next, nil
}

// seriesWindow 拉取日期窗口内的观测，升序，不走缓存。
func (c *Client) seriesWindow(ctx context.Context, seriesID string, start, end time.Time) ([]Observation, error) {
	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")
	params.Set("sort_order", "asc")
	params.Set("observation_start", start.Format("2006-01-02"))
	params.Set("observation_end", end.Format("2006-01-02"))

	endpoint := fmt.Sprintf("%s/series/observations?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("fred request %s: %w", seriesID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fred read %s: %w", seriesID, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error_message").String()
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("fred %s: %s", seriesID, msg)
	}

	var out []Observation
	gjson.GetBytes(body, "observations").ForEach(func(_, obs gjson.Result) bool {
		raw := obs.Get("value").String()
		if raw == "." || raw == "" {
			return true
		}
		date, err := time.Parse("2006-01-02", obs.Get("date").String())
		if err != nil {
			return true
		}
		out = append(out, Observation{Date: date, Value: obs.Get("value").Float()})
		return true
	})
	return out, nil
}
