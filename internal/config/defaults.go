package config

// 中文说明：
// 缺省值填充。只在配置文件里没有显式写出对应 key 时生效，
// 显式写 0 / 空串 / false 的字段不会被覆盖。

const (
	defaultLogLevel       = "info"
	defaultHTTPAddr       = ":8087"
	defaultEngineTimeout  = 120
	defaultEngineModel    = "gpt-4o"
	defaultTemperature    = 0.7
	defaultMaxTokens      = 2048
	defaultConcurrency    = 4
	defaultMaxAttempts    = 3
	defaultBackoffBaseMs  = 500
	defaultDataDir        = "data"
	defaultFREDBaseURL    = "https://api.stlouisfed.org/fred"
	defaultFREDTimeout    = 30
	defaultTTLMonthly     = 6 * 3600
	defaultTTLDaily       = 3600
	defaultImpact2Y       = 0.5
	defaultImpact10Y      = 1.0 / 3.0
	defaultImpactSP500    = -0.01
	defaultImpactDXY      = 0.02
	defaultAlignedWeight  = 50
	defaultNeutralHold    = 25
	defaultNeutralMove    = 25
)

type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		if def.apply != nil {
			def.apply()
		}
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key:   key,
		need:  func() bool { return *target == "" },
		apply: func() { *target = def },
	}
}

func intFieldDefault(key string, target *int, def int) fieldDefault {
	return fieldDefault{
		key:   key,
		need:  func() bool { return *target == 0 },
		apply: func() { *target = def },
	}
}

func floatFieldDefault(key string, target *float64, def float64) fieldDefault {
	return fieldDefault{
		key:   key,
		need:  func() bool { return *target == 0 },
		apply: func() { *target = def },
	}
}

func (c *Config) applyDefaults(keys keySet) {
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &c.App.Env, "dev"),
		stringFieldDefault("app.log_level", &c.App.LogLevel, defaultLogLevel),
		stringFieldDefault("app.http_addr", &c.App.HTTPAddr, defaultHTTPAddr),

		stringFieldDefault("engine.model", &c.Engine.Model, defaultEngineModel),
		intFieldDefault("engine.timeout_seconds", &c.Engine.TimeoutSeconds, defaultEngineTimeout),
		floatFieldDefault("engine.temperature", &c.Engine.Temperature, defaultTemperature),
		intFieldDefault("engine.max_tokens", &c.Engine.MaxTokens, defaultMaxTokens),

		intFieldDefault("meeting.concurrency", &c.Meeting.Concurrency, defaultConcurrency),
		intFieldDefault("meeting.max_attempts", &c.Meeting.MaxAttempts, defaultMaxAttempts),
		intFieldDefault("meeting.backoff_base_ms", &c.Meeting.BackoffBaseMs, defaultBackoffBaseMs),

		stringFieldDefault("data.dir", &c.Data.Dir, defaultDataDir),
		fieldDefault{
			key:   "data.store_path",
			need:  func() bool { return c.Data.StorePath == "" },
			apply: func() { c.Data.StorePath = c.Data.Dir + "/meetings.db" },
		},

		stringFieldDefault("fred.base_url", &c.FRED.BaseURL, defaultFREDBaseURL),
		fieldDefault{
			key:   "fred.cache_dir",
			need:  func() bool { return c.FRED.CacheDir == "" },
			apply: func() { c.FRED.CacheDir = c.Data.Dir + "/fred_cache" },
		},
		intFieldDefault("fred.cache_ttl_monthly_seconds", &c.FRED.CacheTTLMonthlyS, defaultTTLMonthly),
		intFieldDefault("fred.cache_ttl_daily_seconds", &c.FRED.CacheTTLDailyS, defaultTTLDaily),
		intFieldDefault("fred.request_timeout_seconds", &c.FRED.RequestTimeoutSec, defaultFREDTimeout),

		floatFieldDefault("impact.treasury_2y_per_bps", &c.Impact.Treasury2YPerBps, defaultImpact2Y),
		floatFieldDefault("impact.treasury_10y_per_bps", &c.Impact.Treasury10YPerBps, defaultImpact10Y),
		floatFieldDefault("impact.sp500_pct_per_bps", &c.Impact.SP500PctPerBps, defaultImpactSP500),
		floatFieldDefault("impact.dxy_pct_per_bps", &c.Impact.DXYPctPerBps, defaultImpactDXY),

		intFieldDefault("stance.aligned_weight", &c.Stance.AlignedWeight, defaultAlignedWeight),
		intFieldDefault("stance.neutral_hold_weight", &c.Stance.NeutralHoldWeight, defaultNeutralHold),
		intFieldDefault("stance.neutral_move_weight", &c.Stance.NeutralMoveWeight, defaultNeutralMove),
	)
}
