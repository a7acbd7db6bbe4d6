package config

// 中文说明：
// fedboard 主配置载体。YAML 经 viper 读取，mapstructure 解码（TagName=toml）。

type Config struct {
	App     AppConfig     `toml:"app"`
	Engine  EngineConfig  `toml:"engine"`
	Meeting MeetingConfig `toml:"meeting"`
	Data    DataConfig    `toml:"data"`
	FRED    FREDConfig    `toml:"fred"`
	Impact  ImpactConfig  `toml:"impact"`
	Stance  StanceConfig  `toml:"stance"`
}

type AppConfig struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	HTTPAddr string `toml:"http_addr"`
	LogPath  string `toml:"log_path"`
	LLMLog   string `toml:"llm_log_path"`
	LLMDump  bool   `toml:"llm_dump_payload"`
}

// EngineConfig 描述决策引擎（chat-completions 兼容端点）的访问方式。
type EngineConfig struct {
	APIURL         string  `toml:"api_url"`
	APIKey         string  `toml:"api_key"`
	Model          string  `toml:"model"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	Temperature    float64 `toml:"temperature"`
	MaxTokens      int     `toml:"max_tokens"`
}

// MeetingConfig 控制一次会议模拟的并发与重试策略。
type MeetingConfig struct {
	// Concurrency <= 1 表示顺序执行；否则为有界并发池大小。
	Concurrency        int    `toml:"concurrency"`
	MaxAttempts        int    `toml:"max_attempts"`
	BackoffBaseMs      int    `toml:"backoff_base_ms"`
	CollectProjections bool   `toml:"collect_projections"`
	RosterPath         string `toml:"roster_path"`
}

type DataConfig struct {
	Dir       string `toml:"dir"`
	StorePath string `toml:"store_path"`
}

type FREDConfig struct {
	APIKey            string `toml:"api_key"`
	BaseURL           string `toml:"base_url"`
	CacheDir          string `toml:"cache_dir"`
	CacheTTLMonthlyS  int    `toml:"cache_ttl_monthly_seconds"`
	CacheTTLDailyS    int    `toml:"cache_ttl_daily_seconds"`
	RequestTimeoutSec int    `toml:"request_timeout_seconds"`
}

// ImpactConfig 市场冲击估算的固定系数表（查表，不是模型）。
// 单位：国债收益率为 bps/bps，SPX 与 DXY 为 百分比/bps。
type ImpactConfig struct {
	Treasury2YPerBps  float64 `toml:"treasury_2y_per_bps"`
	Treasury10YPerBps float64 `toml:"treasury_10y_per_bps"`
	SP500PctPerBps    float64 `toml:"sp500_pct_per_bps"`
	DXYPctPerBps      float64 `toml:"dxy_pct_per_bps"`
}

// StanceScale 立场评分权重：与基线立场一致记正、相反记负，幅度按 25bp 一档缩放。
type StanceConfig struct {
	AlignedWeight     int `toml:"aligned_weight"`
	NeutralHoldWeight int `toml:"neutral_hold_weight"`
	NeutralMoveWeight int `toml:"neutral_move_weight"`
}
