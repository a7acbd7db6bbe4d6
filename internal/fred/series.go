package fred

// 指标键到 FRED 序列 ID 的映射，以及各序列的更新频率（决定缓存 TTL）。

var Series = map[string]string{
	// 通胀
	"cpi_yoy":      "CPIAUCSL",
	"core_cpi_yoy": "CPILFESL",
	"pce_yoy":      "PCEPI",
	"core_pce_yoy": "PCEPILFE",
	// 就业
	"unemployment_rate":         "UNRATE",
	"nonfarm_payrolls":          "PAYEMS",
	"labor_force_participation": "CIVPART",
	"wage_growth_yoy":           "CES0500000003",
	"job_openings":              "JTSJOL",
	"initial_claims":            "ICSA",
	// 经济活动
	"gdp_growth":            "A191RL1Q225SBEA",
	"retail_sales_mom":      "RSXFS",
	"industrial_production": "INDPRO",
	"capacity_utilization":  "TCU",
	"housing_starts":        "HOUST",
	// 金融市场
	"fed_funds_rate":         "FEDFUNDS",
	"fed_funds_target_upper": "DFEDTARU",
	"fed_funds_target_lower": "DFEDTARL",
	"treasury_10y":           "DGS10",
	"treasury_2y":            "DGS2",
	"treasury_3m":            "DGS3MO",
	"sp500":                  "SP500",
	// 预期与情绪
	"michigan_sentiment": "UMCSENT",
	"breakeven_5y":       "T5YIE",
	"breakeven_10y":      "T10YIE",
}

var frequencies = map[string]string{
	"cpi_yoy":                   "monthly",
	"core_cpi_yoy":              "monthly",
	"pce_yoy":                   "monthly",
	"core_pce_yoy":              "monthly",
	"unemployment_rate":         "monthly",
	"nonfarm_payrolls":          "monthly",
	"labor_force_participation": "monthly",
	"wage_growth_yoy":           "monthly",
	"job_openings":              "monthly",
	"retail_sales_mom":          "monthly",
	"industrial_production":     "monthly",
	"capacity_utilization":      "monthly",
	"housing_starts":            "monthly",
	"michigan_sentiment":        "monthly",
	"gdp_growth":                "quarterly",
	"initial_claims":            "weekly",
	"fed_funds_rate":            "daily",
	"fed_funds_target_upper":    "daily",
	"fed_funds_target_lower":    "daily",
	"treasury_10y":              "daily",
	"treasury_2y":               "daily",
	"treasury_3m":               "daily",
	"sp500":                     "daily",
	"breakeven_5y":              "daily",
	"breakeven_10y":             "daily",
}

// frequencyOf 返回序列 ID 对应的更新频率，未知按 monthly 处理。
func frequencyOf(seriesID string) string {
	for key, sid := range Series {
		if sid == seriesID {
			if f, ok := frequencies[key]; ok {
				return f
			}
			break
		}
	}
	return "monthly"
}
