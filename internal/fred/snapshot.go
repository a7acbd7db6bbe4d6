package fred

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fedboard/internal/indicator"
	"fedboard/internal/logger"
)

// 中文说明：
// 并发拉取全部指标并组装经济数据快照。单个指标失败只告警并留空，
// 全部失败才算组装失败。走向序列取最近三期观测。

const snapshotFetchLimit = 8

type snapshotBuilder struct {
	client *Client
	mu     sync.Mutex
	snap   indicator.Snapshot
	filled int
}

// Snapshot 组装一份完整的经济数据快照。
func (c *Client) Snapshot(ctx context.Context, asOf time.Time) (*indicator.Snapshot, error) {
	b := &snapshotBuilder{client: c}
	b.snap.AsOfDate = asOf
	b.snap.Trends = make(map[string]indicator.Value)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(snapshotFetchLimit)

	// 同比类指标
	b.fetchYoY(gctx, g, "cpi_yoy", func(v *float64) { b.snap.Inflation.CPIYoY = v })
	b.fetchYoY(gctx, g, "core_cpi_yoy", func(v *float64) { b.snap.Inflation.CoreCPIYoY = v })
	b.fetchYoY(gctx, g, "pce_yoy", func(v *float64) { b.snap.Inflation.PCEYoY = v })
	b.fetchYoY(gctx, g, "core_pce_yoy", func(v *float64) { b.snap.Inflation.CorePCEYoY = v })
	b.fetchYoY(gctx, g, "wage_growth_yoy", func(v *float64) { b.snap.Employment.WageGrowthYoY = v })
	b.fetchYoY(gctx, g, "industrial_production_yoy", func(v *float64) { b.snap.Activity.IndustrialProductionYoY = v })

	// 水平值类指标，带三期走向
	b.fetchLevel(gctx, g, "unemployment_rate", func(v *float64) { b.snap.Employment.UnemploymentRate = v })
	b.fetchLevel(gctx, g, "labor_force_participation", func(v *float64) { b.snap.Employment.LaborForceParticipation = v })
	b.fetchLevel(gctx, g, "job_openings", func(v *float64) { b.snap.Employment.JobOpenings = v })
	b.fetchLevel(gctx, g, "initial_claims", func(v *float64) { b.snap.Employment.InitialClaims = v })
	b.fetchLevel(gctx, g, "gdp_growth", func(v *float64) { b.snap.Activity.GDPGrowth = v })
	b.fetchLevel(gctx, g, "capacity_utilization", func(v *float64) { b.snap.Activity.CapacityUtilization = v })
	b.fetchLevel(gctx, g, "housing_starts", func(v *float64) { b.snap.Activity.HousingStarts = v })
	b.fetchLevel(gctx, g, "fed_funds_rate", func(v *float64) { b.snap.Markets.FedFundsRate = v })
	b.fetchLevel(gctx, g, "treasury_10y", func(v *float64) { b.snap.Markets.Treasury10Y = v })
	b.fetchLevel(gctx, g, "treasury_2y", func(v *float64) { b.snap.Markets.Treasury2Y = v })
	b.fetchLevel(gctx, g, "treasury_3m", func(v *float64) { b.snap.Markets.Treasury3M = v })
	b.fetchLevel(gctx, g, "michigan_sentiment", func(v *float64) { b.snap.Expectations.MichiganSentiment = v })
	b.fetchLevel(gctx, g, "breakeven_5y", func(v *float64) { b.snap.Expectations.Breakeven5Y = v })
	b.fetchLevel(gctx, g, "breakeven_10y", func(v *float64) { b.snap.Expectations.Breakeven10Y = v })

	// 目标区间上下沿只取最新值
	g.Go(func() error {
		if v, _, err := c.LatestValue(gctx, Series["fed_funds_target_upper"]); err == nil {
			b.set(func() { b.snap.Markets.FedFundsTargetUpper = &v })
		} else {
			logger.Warnf("指标拉取失败 fed_funds_target_upper: %v", err)
		}
		return nil
	})
	g.Go(func() error {
		if v, _, err := c.LatestValue(gctx, Series["fed_funds_target_lower"]); err == nil {
			b.set(func() { b.snap.Markets.FedFundsTargetLower = &v })
		} else {
			logger.Warnf("指标拉取失败 fed_funds_target_lower: %v", err)
		}
		return nil
	})

	// 非农：水平值加上月增量（千人）
	g.Go(func() error {
		values, dates, err := c.History(gctx, Series["nonfarm_payrolls"], 4)
		if err != nil {
			logger.Warnf("指标拉取失败 nonfarm_payrolls: %v", err)
			return nil
		}
		level := values[0]
		b.set(func() {
			b.snap.Employment.NonfarmPayrolls = &level
			if len(values) > 1 {
				change := values[0] - values[1]
				b.snap.Employment.NonfarmPayrollsChange = &change
			}
			b.snap.Trends["nonfarm_payrolls"] = indicator.ValueFromSeries(values, dates)
		})
		return nil
	})

	// 零售环比：由四期水平值算三期环比序列
	g.Go(func() error {
		values, dates, err := c.History(gctx, Series["retail_sales_mom"], 5)
		if err != nil || len(values) < 2 {
			logger.Warnf("指标拉取失败 retail_sales_mom: %v", err)
			return nil
		}
		moms := make([]float64, 0, 3)
		for i := 0; i+1 < len(values) && i < 3; i++ {
			if values[i+1] == 0 {
				break
			}
			moms = append(moms, (values[i]-values[i+1])/values[i+1]*100)
		}
		if len(moms) == 0 {
			return nil
		}
		b.set(func() {
			b.snap.Activity.RetailSalesMoM = &moms[0]
			b.snap.Trends["retail_sales_mom"] = indicator.ValueFromSeries(moms, dates)
		})
		return nil
	})

	// 标普：最新值与年初至今涨幅
	g.Go(func() error {
		obs, err := c.GetSeries(gctx, Series["sp500"], 280)
		if err != nil {
			logger.Warnf("指标拉取失败 sp500: %v", err)
			return nil
		}
		latest := obs[0]
		var ytd *float64
		for _, o := range obs[1:] {
			if o.Date.Year() < latest.Date.Year() {
				if o.Value != 0 {
					pct := (latest.Value - o.Value) / o.Value * 100
					ytd = &pct
				}
				break
			}
		}
		b.set(func() {
			b.snap.Markets.SP500 = &latest.Value
			b.snap.Markets.SP500YTD = ytd
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if b.filled == 0 {
		return nil, fmt.Errorf("所有指标拉取均失败，无法组装快照")
	}
	return &b.snap, nil
}

func (b *snapshotBuilder) set(apply func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	apply()
	b.filled++
}

func (b *snapshotBuilder) fetchYoY(ctx context.Context, g *errgroup.Group, key string, assign func(*float64)) {
	seriesKey := key
	if seriesKey == "industrial_production_yoy" {
		seriesKey = "industrial_production"
	}
	sid := Series[seriesKey]
	g.Go(func() error {
		values, dates, err := b.client.YoYHistory(ctx, sid)
		if err != nil {
			logger.Warnf("指标拉取失败 %s: %v", key, err)
			return nil
		}
		b.set(func() {
			assign(&values[0])
			b.snap.Trends[key] = indicator.ValueFromSeries(values, dates)
		})
		return nil
	})
}

func (b *snapshotBuilder) fetchLevel(ctx context.Context, g *errgroup.Group, key string, assign func(*float64)) {
	sid := Series[key]
	g.Go(func() error {
		values, dates, err := b.client.History(ctx, sid, 3)
		if err != nil {
			logger.Warnf("指标拉取失败 %s: %v", key, err)
			return nil
		}
		b.set(func() {
			assign(&values[0])
			b.snap.Trends[key] = indicator.ValueFromSeries(values, dates)
		})
		return nil
	})
}
