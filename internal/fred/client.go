package fred

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"fedboard/internal/logger"
)

// 中文说明：
// FRED 观测数据客户端。observations 按日期倒序取（最新在前），
// 值为 "." 的占位观测直接跳过。命中缓存不发请求。

// Observation 单条观测值，Value 已解析为数值。
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type Client struct {
	baseURL string
	apiKey  string
	cache   *Cache
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string, cache *Cache, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		cache:   cache,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// GetSeries 拉取某序列最近 limit 条观测，最新在前。
func (c *Client) GetSeries(ctx context.Context, seriesID string, limit int) ([]Observation, error) {
	if limit <= 0 {
		limit = 24
	}
	if c.cache != nil {
		if cached := c.cache.Get(seriesID); len(cached) >= limit {
			return cached[:limit], nil
		}
	}

	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", c.apiKey)
	params.Set("file_type", "json")
	params.Set("sort_order", "desc")
	params.Set("limit", fmt.Sprintf("%d", limit))

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
	if msg := gjson.GetBytes(body, "error_message"); msg.Exists() {
		return nil, fmt.Errorf("fred %s: %s", seriesID, msg.String())
	}

	observations := gjson.GetBytes(body, "observations")
	if !observations.IsArray() {
		return nil, fmt.Errorf("fred %s: 响应缺少 observations", seriesID)
	}
	out := make([]Observation, 0, limit)
	observations.ForEach(func(_, obs gjson.Result) bool {
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
	if len(out) == 0 {
		return nil, fmt.Errorf("fred %s: 无有效观测值", seriesID)
	}

	if c.cache != nil {
		if err := c.cache.Set(seriesID, out, frequencyOf(seriesID)); err != nil {
			logger.Warnf("fred 缓存写入失败 %s: %v", seriesID, err)
		}
	}
	return out, nil
}

// LatestValue 最新一条观测值及其日期。
func (c *Client) LatestValue(ctx context.Context, seriesID string) (float64, time.Time, error) {
	obs, err := c.GetSeries(ctx, seriesID, 1)
	if err != nil {
		return 0, time.Time{}, err
	}
	return obs[0].Value, obs[0].Date, nil
}

// YoYChange 同比变化率（最新值对 12 个月前），需要至少 13 条月度观测。
func (c *Client) YoYChange(ctx context.Context, seriesID string) (float64, time.Time, error) {
	obs, err := c.GetSeries(ctx, seriesID, 14)
	if err != nil {
		return 0, time.Time{}, err
	}
	if len(obs) < 13 {
		return 0, time.Time{}, fmt.Errorf("fred %s: 观测不足以计算同比", seriesID)
	}
	latest, yearAgo := obs[0], obs[12]
	if yearAgo.Value == 0 {
		return 0, time.Time{}, fmt.Errorf("fred %s: 基期值为零", seriesID)
	}
	pct := (latest.Value - yearAgo.Value) / yearAgo.Value * 100
	return pct, latest.Date, nil
}

// MoMChange 环比变化率（最新值对上月）。
func (c *Client) MoMChange(ctx context.Context, seriesID string) (float64, time.Time, error) {
	obs, err := c.GetSeries(ctx, seriesID, 3)
	if err != nil {
		return 0, time.Time{}, err
	}
	if len(obs) < 2 {
		return 0, time.Time{}, fmt.Errorf("fred %s: 观测不足以计算环比", seriesID)
	}
	if obs[1].Value == 0 {
		return 0, time.Time{}, fmt.Errorf("fred %s: 基期值为零", seriesID)
	}
	pct := (obs[0].Value - obs[1].Value) / obs[1].Value * 100
	return pct, obs[0].Date, nil
}

// History 最近 n 条观测的数值与日期，最新在前，供趋势判定使用。
func (c *Client) History(ctx context.Context, seriesID string, n int) ([]float64, []time.Time, error) {
	obs, err := c.GetSeries(ctx, seriesID, n)
	if err != nil {
		return nil, nil, err
	}
	values := make([]float64, len(obs))
	dates := make([]time.Time, len(obs))
	for i, o := range obs {
		values[i] = o.Value
		dates[i] = o.Date
	}
	return values, dates, nil
}

// YoYHistory 最近三个月的同比变化序列，最新在前。需要 15 条以上月度观测。
func (c *Client) YoYHistory(ctx context.Context, seriesID string) ([]float64, []time.Time, error) {
	obs, err := c.GetSeries(ctx, seriesID, 18)
	if err != nil {
		return nil, nil, err
	}
	if len(obs) < 15 {
		return nil, nil, fmt.Errorf("fred %s: 观测不足以计算同比序列", seriesID)
	}
	values := make([]float64, 0, 3)
	dates := make([]time.Time, 0, 3)
	for i := 0; i < 3; i++ {
		base := obs[i+12]
		if base.Value == 0 {
			return nil, nil, fmt.Errorf("fred %s: 基期值为零", seriesID)
		}
		values = append(values, (obs[i].Value-base.Value)/base.Value*100)
		dates = append(dates, obs[i].Date)
	}
	return values, dates, nil
}
