package indicator

import (
	"strconv"
	"strings"
)

// Briefing 渲染发给每位委员的经济简报（Markdown）。
func (s Snapshot) Briefing() string {
	var b strings.Builder
	b.WriteString("# Economic Briefing - As of " + s.AsOfDate.Format("January 2, 2006") + "\n\n")

	b.WriteString("## Inflation\n")
	s.line(&b, "Core PCE (Fed's preferred measure)", s.Inflation.CorePCEYoY, "%", false, "core_pce_yoy")
	s.line(&b, "Core CPI", s.Inflation.CoreCPIYoY, "%", false, "core_cpi_yoy")
	s.line(&b, "Headline CPI", s.Inflation.CPIYoY, "%", false, "cpi_yoy")
	s.line(&b, "PCE Price Index", s.Inflation.PCEYoY, "%", false, "pce_yoy")

	b.WriteString("\n## Labor Market\n")
	s.line(&b, "Unemployment Rate", s.Employment.UnemploymentRate, "%", false, "unemployment_rate")
	s.line(&b, "Nonfarm Payrolls Change", s.Employment.NonfarmPayrollsChange, "K", true, "")
	s.line(&b, "Labor Force Participation", s.Employment.LaborForceParticipation, "%", false, "labor_force_participation")
	s.line(&b, "Wage Growth (YoY)", s.Employment.WageGrowthYoY, "%", false, "wage_growth_yoy")
	s.line(&b, "Job Openings", s.Employment.JobOpenings, "K", false, "job_openings")

	b.WriteString("\n## Economic Activity\n")
	s.line(&b, "GDP Growth (QoQ annualized)", s.Activity.GDPGrowth, "%", true, "gdp_growth")
	s.line(&b, "Retail Sales (MoM)", s.Activity.RetailSalesMoM, "%", true, "retail_sales_mom")
	s.line(&b, "Industrial Production (YoY)", s.Activity.IndustrialProductionYoY, "%", true, "industrial_production_yoy")
	s.line(&b, "Capacity Utilization", s.Activity.CapacityUtilization, "%", false, "capacity_utilization")

	b.WriteString("\n## Financial Markets\n")
	rateRange := s.Markets.RateRange()
	if rateRange == "" {
		rateRange = "N/A"
	}
	b.WriteString("- Current Fed Funds Target: " + rateRange + "\n")
	s.line(&b, "10-Year Treasury", s.Markets.Treasury10Y, "%", false, "treasury_10y")
	s.line(&b, "2-Year Treasury", s.Markets.Treasury2Y, "%", false, "treasury_2y")
	if spread := s.Markets.YieldCurveSpread(); spread != nil {
		b.WriteString("- 10Y-2Y Spread: " + formatValue(*spread*100, "bps", true) + "\n")
	} else {
		b.WriteString("- 10Y-2Y Spread: N/A\n")
	}
	s.line(&b, "S&P 500 YTD", s.Markets.SP500YTD, "%", true, "")

	b.WriteString("\n## Expectations\n")
	s.line(&b, "Consumer Sentiment", s.Expectations.MichiganSentiment, "", false, "michigan_sentiment")
	s.line(&b, "5-Year Breakeven Inflation", s.Expectations.Breakeven5Y, "%", false, "breakeven_5y")
	s.line(&b, "10-Year Breakeven Inflation", s.Expectations.Breakeven10Y, "%", false, "breakeven_10y")

	return strings.TrimRight(b.String(), "\n")
}

func (s Snapshot) line(b *strings.Builder, label string, value *float64, suffix string, signed bool, trendKey string) {
	b.WriteString("- " + label + ": ")
	if value == nil {
		b.WriteString("N/A\n")
		return
	}
	b.WriteString(formatValue(*value, suffix, signed))
	if trendKey != "" {
		if tv, ok := s.Trends[trendKey]; ok && tv.Trend != TrendUnknown {
			b.WriteString(" " + tv.Trend.Arrow())
			if prev := tv.historyString(); prev != "" {
				b.WriteString(" (prev: " + prev + ")")
			}
		}
	}
	b.WriteString("\n")
}

func (v Value) historyString() string {
	var parts []string
	if v.Previous != nil {
		parts = append(parts, fmtFloat(*v.Previous, 1))
	}
	if v.TwoAgo != nil {
		parts = append(parts, fmtFloat(*v.TwoAgo, 1))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v float64, suffix string, signed bool) string {
	out := fmtFloat(v, 1)
	if signed && v >= 0 {
		out = "+" + out
	}
	return out + suffix
}

func fmtFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
