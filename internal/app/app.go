package app

import (
	"fmt"
	"time"

	"fedboard/internal/config"
	"fedboard/internal/engine"
	"fedboard/internal/fred"
	"fedboard/internal/logger"
	"fedboard/internal/meeting"
	"fedboard/internal/member"
	"fedboard/internal/store"
	"fedboard/internal/store/gormstore"
)

// 中文说明：
// 组件装配。配置 → 名册 → 决策引擎 → 数据源 → 存储，CLI 各命令共用一套实例。

type App struct {
	Cfg      *config.Config
	Registry *member.Registry
	Store    store.Store
	Fred     *fred.Client
}

func New(cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg}

	registry, err := member.NewRegistry(cfg.Meeting.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("加载委员名册失败: %w", err)
	}
	a.Registry = registry
	registry.OnChange(func(snap member.Snapshot) {
		logger.Infof("委员名册已热更新（版本 %d，共 %d 人）", snap.Version, len(snap.Members))
	})

	st, err := gormstore.New(cfg.Data.StorePath)
	if err != nil {
		return nil, fmt.Errorf("打开会议存储失败: %w", err)
	}
	a.Store = st

	cache, err := fred.NewCache(cfg.FRED.CacheDir,
		time.Duration(cfg.FRED.CacheTTLMonthlyS)*time.Second,
		time.Duration(cfg.FRED.CacheTTLDailyS)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("初始化 FRED 缓存失败: %w", err)
	}
	a.Fred = fred.NewClient(cfg.FRED.BaseURL, cfg.FRED.APIKey, cache,
		time.Duration(cfg.FRED.RequestTimeoutSec)*time.Second)

	return a, nil
}

// Engine 按运行模式构建决策引擎，offline 时用内置启发式引擎代替 LLM。
func (a *App) Engine(offline bool) engine.Engine {
	if offline {
		return engine.NewHeuristic()
	}
	return engine.NewChatEngine(a.Cfg.Engine)
}

// Orchestrator 按配置构建会议编排器。
func (a *App) Orchestrator(collectProjections, offline bool) *meeting.Orchestrator {
	opts := meeting.Options{
		Concurrency:        a.Cfg.Meeting.Concurrency,
		MaxAttempts:        a.Cfg.Meeting.MaxAttempts,
		BackoffBase:        time.Duration(a.Cfg.Meeting.BackoffBaseMs) * time.Millisecond,
		CollectProjections: collectProjections || a.Cfg.Meeting.CollectProjections,
	}
	return meeting.NewOrchestrator(a.Engine(offline), a.Registry, opts)
}

func (a *App) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			logger.Warnf("关闭会议存储失败: %v", err)
		}
	}
}
