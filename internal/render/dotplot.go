package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fedboard/internal/engine"
)

// 中文说明：
// 仿联储点阵图：横轴为预测期，纵轴为联邦基金利率中值，每个点是一位委员的预测，
// 红色虚线连接各期中位数。图表先渲染成 HTML，再用无头浏览器截成 PNG。

const (
	dotplotWidthPx  = 1000
	dotplotHeightPx = 620

	colorDot    = "#004B87"
	colorMedian = "#c0392b"
)

var projectionKeys = []struct {
	key   string
	label string
}{
	{"2025", "2025"},
	{"2026", "2026"},
	{"2027", "2027"},
	{"longer_run", "Longer Run"},
}

// ImageResult 渲染好的图像及其 base64 形式。
type ImageResult struct {
	Bytes    []byte `json:"-"`
	Base64   string `json:"base64"`
	Filename string `json:"filename"`
}

func (r *ImageResult) DataURI() string {
	if r == nil || r.Base64 == "" {
		return ""
	}
	return "data:image/png;base64," + r.Base64
}

// DotPlotHTML 把利率预测渲染成图表 HTML。
func DotPlotHTML(projections []engine.Projection, period string) ([]byte, error) {
	if len(projections) == 0 {
		return nil, fmt.Errorf("no projections to plot")
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", dotplotWidthPx),
			Height:          fmt.Sprintf("%dpx", dotplotHeightPx),
			BackgroundColor: "#ffffff",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "FOMC Participants' Assessments of Appropriate Monetary Policy",
			Subtitle: fmt.Sprintf("Midpoint of Target Range for the Federal Funds Rate, %s simulation", period),
			Left:     "center",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "40"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Federal Funds Rate (%)",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	labels := make([]string, 0, len(projectionKeys))
	dots := make([]opts.ScatterData, 0, len(projections)*len(projectionKeys))
	medians := make([]opts.ScatterData, 0, len(projectionKeys))
	for _, pk := range projectionKeys {
		labels = append(labels, pk.label)
		rates := collectRates(projections, pk.key)
		for _, r := range rates {
			dots = append(dots, opts.ScatterData{
				Value:      []interface{}{pk.label, r},
				SymbolSize: 14,
			})
		}
		if len(rates) > 0 {
			medians = append(medians, opts.ScatterData{
				Value:      []interface{}{pk.label, median(rates)},
				Symbol:     "diamond",
				SymbolSize: 18,
			})
		}
	}

	scatter.SetXAxis(labels)
	scatter.AddSeries("Participants", dots,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorDot, Opacity: opts.Float(0.7)}))
	scatter.AddSeries("Median", medians,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorMedian}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderDotPlot 渲染点阵图并截成 PNG。
func RenderDotPlot(ctx context.Context, projections []engine.Projection, period string) (ImageResult, error) {
	if err := EnsureHeadlessAvailable(ctx); err != nil {
		return ImageResult{}, err
	}
	html, err := DotPlotHTML(projections, period)
	if err != nil {
		return ImageResult{}, err
	}
	png, err := renderHTMLToPNG(ctx, html, dotplotWidthPx, dotplotHeightPx)
	if err != nil {
		return ImageResult{}, err
	}
	return ImageResult{
		Bytes:    png,
		Base64:   base64.StdEncoding.EncodeToString(png),
		Filename: fmt.Sprintf("dotplot_%s.png", period),
	}, nil
}

// ProjectionStats 单个预测期的汇总统计。
type ProjectionStats struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// SummaryStats 各预测期的统计汇总，键为 2025/2026/2027/longer_run。
func SummaryStats(projections []engine.Projection) map[string]ProjectionStats {
	stats := make(map[string]ProjectionStats)
	for _, pk := range projectionKeys {
		rates := collectRates(projections, pk.key)
		if len(rates) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range rates {
			sum += r
		}
		stats[pk.key] = ProjectionStats{
			Median: median(rates),
			Mean:   sum / float64(len(rates)),
			Min:    minOf(rates),
			Max:    maxOf(rates),
			Count:  len(rates),
		}
	}
	return stats
}

func collectRates(projections []engine.Projection, key string) []float64 {
	rates := make([]float64, 0, len(projections))
	for _, p := range projections {
		if r, ok := p.Rates[key]; ok {
			rates = append(rates, r)
		}
	}
	return rates
}

func median(rates []float64) float64 {
	sorted := append([]float64(nil), rates...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(rates []float64) float64 {
	m := rates[0]
	for _, r := range rates[1:] {
		if r < m {
			m = r
		}
	}
	return m
}

func maxOf(rates []float64) float64 {
	m := rates[0]
	for _, r := range rates[1:] {
		if r > m {
			m = r
		}
	}
	return m
}

var (
	headlessOnce sync.Once
	headlessErr  error
)

// EnsureHeadlessAvailable 探测无头浏览器是否可用，整个进程只探测一次。
func EnsureHeadlessAvailable(ctx context.Context) error {
	headlessOnce.Do(func() {
		targetCtx := ctx
		if targetCtx == nil {
			targetCtx = context.Background()
		}
		parent, cancel := chromedp.NewContext(targetCtx)
		if cancel != nil {
			defer cancel()
		}
		headlessErr = chromedp.Run(parent)
	})
	return headlessErr
}

func renderHTMLToPNG(ctx context.Context, html []byte, width, height int) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeoutCtx, cancelTimeout := context.WithTimeout(parent, 20*time.Second)
	defer cancelTimeout()

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500 * time.Millisecond),
		chromedp.FullScreenshot(&screenshot, 0),
	}
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return nil, err
	}
	return screenshot, nil
}
