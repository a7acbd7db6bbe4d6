package indicator

import "time"

// Trend 指标相对上一期的走向。
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
	TrendUnknown Trend = "unknown"
)

// Arrow 返回简报文本里使用的箭头符号。
func (t Trend) Arrow() string {
	switch t {
	case TrendRising:
		return "↑"
	case TrendFalling:
		return "↓"
	case TrendStable:
		return "→"
	default:
		return "?"
	}
}

// defaultTrendThreshold 判定 stable 与 rising/falling 的环比百分比阈值。
const defaultTrendThreshold = 0.5

// Value 单个指标的当前值、历史值与走向。
type Value struct {
	Current  *float64  `json:"current,omitempty"`
	Previous *float64  `json:"previous,omitempty"`
	TwoAgo   *float64  `json:"two_periods_ago,omitempty"`
	Trend    Trend     `json:"trend"`
	DataDate time.Time `json:"data_date,omitempty"`
}

// ValueFromSeries 由观测序列构建 Value，values 以最新值在前。
// 走向按环比百分比变化判定，超过阈值记 rising/falling，否则 stable。
func ValueFromSeries(values []float64, dates []time.Time) Value {
	v := Value{Trend: TrendUnknown}
	if len(values) == 0 {
		return v
	}
	v.Current = ptr(values[0])
	if len(dates) > 0 {
		v.DataDate = dates[0]
	}
	if len(values) > 1 {
		v.Previous = ptr(values[1])
	}
	if len(values) > 2 {
		v.TwoAgo = ptr(values[2])
	}
	if v.Previous == nil {
		return v
	}
	cur, prev := *v.Current, *v.Previous
	if prev == 0 {
		switch {
		case cur > prev:
			v.Trend = TrendRising
		case cur < prev:
			v.Trend = TrendFalling
		default:
			v.Trend = TrendStable
		}
		return v
	}
	pctChange := (cur - prev) / abs(prev) * 100
	switch {
	case pctChange > defaultTrendThreshold:
		v.Trend = TrendRising
	case pctChange < -defaultTrendThreshold:
		v.Trend = TrendFalling
	default:
		v.Trend = TrendStable
	}
	return v
}

type Inflation struct {
	CPIYoY     *float64 `json:"cpi_yoy,omitempty"`
	CoreCPIYoY *float64 `json:"core_cpi_yoy,omitempty"`
	PCEYoY     *float64 `json:"pce_yoy,omitempty"`
	CorePCEYoY *float64 `json:"core_pce_yoy,omitempty"`
}

type Employment struct {
	UnemploymentRate        *float64 `json:"unemployment_rate,omitempty"`
	NonfarmPayrolls         *float64 `json:"nonfarm_payrolls,omitempty"`
	NonfarmPayrollsChange   *float64 `json:"nonfarm_payrolls_change,omitempty"`
	LaborForceParticipation *float64 `json:"labor_force_participation,omitempty"`
	WageGrowthYoY           *float64 `json:"wage_growth_yoy,omitempty"`
	JobOpenings             *float64 `json:"job_openings,omitempty"`
	InitialClaims           *float64 `json:"initial_claims,omitempty"`
}

type Activity struct {
	GDPGrowth               *float64 `json:"gdp_growth,omitempty"`
	RetailSalesMoM          *float64 `json:"retail_sales_mom,omitempty"`
	IndustrialProductionYoY *float64 `json:"industrial_production_yoy,omitempty"`
	CapacityUtilization     *float64 `json:"capacity_utilization,omitempty"`
	HousingStarts           *float64 `json:"housing_starts,omitempty"`
}

type Markets struct {
	FedFundsRate        *float64 `json:"fed_funds_rate,omitempty"`
	FedFundsTargetUpper *float64 `json:"fed_funds_target_upper,omitempty"`
	FedFundsTargetLower *float64 `json:"fed_funds_target_lower,omitempty"`
	Treasury10Y         *float64 `json:"treasury_10y,omitempty"`
	Treasury2Y          *float64 `json:"treasury_2y,omitempty"`
	Treasury3M          *float64 `json:"treasury_3m,omitempty"`
	SP500               *float64 `json:"sp500,omitempty"`
	SP500YTD            *float64 `json:"sp500_ytd,omitempty"`
}

// YieldCurveSpread 返回 10Y-2Y 利差，负值表示倒挂。
func (m Markets) YieldCurveSpread() *float64 {
	if m.Treasury10Y == nil || m.Treasury2Y == nil {
		return nil
	}
	return ptr(*m.Treasury10Y - *m.Treasury2Y)
}

// RateRange 当前联邦基金目标区间的展示串，数据缺失时返回空串。
func (m Markets) RateRange() string {
	if m.FedFundsTargetLower == nil || m.FedFundsTargetUpper == nil {
		return ""
	}
	return fmtFloat(*m.FedFundsTargetLower, 2) + "-" + fmtFloat(*m.FedFundsTargetUpper, 2) + "%"
}

type Expectations struct {
	MichiganSentiment *float64 `json:"michigan_sentiment,omitempty"`
	Breakeven5Y       *float64 `json:"breakeven_5y,omitempty"`
	Breakeven10Y      *float64 `json:"breakeven_10y,omitempty"`
}

// Snapshot 某个会期使用的完整经济数据快照。
type Snapshot struct {
	AsOfDate     time.Time        `json:"as_of_date"`
	Inflation    Inflation        `json:"inflation"`
	Employment   Employment       `json:"employment"`
	Activity     Activity         `json:"activity"`
	Markets      Markets          `json:"markets"`
	Expectations Expectations     `json:"expectations"`
	Trends       map[string]Value `json:"trends,omitempty"`
}

func ptr(v float64) *float64 { return &v }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
