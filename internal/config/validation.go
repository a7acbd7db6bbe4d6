package config

import "fmt"

func validate(cfg *Config) error {
	if cfg.Engine.APIURL == "" {
		return fmt.Errorf("engine.api_url 不能为空")
	}
	if cfg.Engine.TimeoutSeconds <= 0 {
		return fmt.Errorf("engine.timeout_seconds 必须大于 0")
	}
	if cfg.Engine.Temperature < 0 || cfg.Engine.Temperature > 2 {
		return fmt.Errorf("engine.temperature 必须在 [0,2] 区间: %v", cfg.Engine.Temperature)
	}
	if cfg.Meeting.Concurrency < 1 {
		return fmt.Errorf("meeting.concurrency 必须 >= 1: %d", cfg.Meeting.Concurrency)
	}
	if cfg.Meeting.MaxAttempts < 1 {
		return fmt.Errorf("meeting.max_attempts 必须 >= 1: %d", cfg.Meeting.MaxAttempts)
	}
	if cfg.Meeting.BackoffBaseMs < 0 {
		return fmt.Errorf("meeting.backoff_base_ms 不能为负: %d", cfg.Meeting.BackoffBaseMs)
	}
	if cfg.Data.Dir == "" {
		return fmt.Errorf("data.dir 不能为空")
	}
	if cfg.Stance.AlignedWeight <= 0 {
		return fmt.Errorf("stance.aligned_weight 必须大于 0: %d", cfg.Stance.AlignedWeight)
	}
	return nil
}
