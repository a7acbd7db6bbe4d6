package member

// 中文说明：
// 名册注册表。默认使用内置名册；配置了 roster_path 时读取 YAML 并监听文件变更，
// 支持两种模式：replace=true 整体替换，否则按 id 覆盖/追加内置条目。

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fedboard/internal/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileConfig 映射 roster YAML。
type FileConfig struct {
	Replace bool     `mapstructure:"replace" yaml:"replace"`
	Members []Member `mapstructure:"members" yaml:"members"`
}

// Snapshot 公开的名册快照，Members 保持名册顺序。
type Snapshot struct {
	Version  int64
	LoadedAt time.Time
	Members  []Member
}

// ChangeListener 在 registry 重载时触发。
type ChangeListener func(Snapshot)

// Registry 管理委员名册。
type Registry struct {
	path string
	v    *viper.Viper

	mu        sync.RWMutex
	snapshot  Snapshot
	listeners []ChangeListener
}

// NewRegistry 构建注册表。path 为空时只用内置名册，不监听文件。
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{path: strings.TrimSpace(path)}
	if err := r.reload(); err != nil {
		return nil, err
	}
	if r.path == "" {
		return r, nil
	}
	v := viper.New()
	v.SetConfigFile(r.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read roster config failed: %w", err)
	}
	r.v = v
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := r.reload(); err != nil {
			logger.Errorf("roster reload failed: %v", err)
			return
		}
		r.notifyListeners()
	})
	v.WatchConfig()
	return r, nil
}

// OnChange 注册重载回调。
func (r *Registry) OnChange(fn ChangeListener) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Snapshot 返回当前名册。
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSnapshot(r.snapshot)
}

// All 按名册顺序返回全部委员。
func (r *Registry) All() []Member {
	return r.Snapshot().Members
}

// Eligible 返回指定年份拥有投票权的委员，保持名册顺序。
func (r *Registry) Eligible(year int) []Member {
	all := r.All()
	out := make([]Member, 0, len(all))
	for _, m := range all {
		if m.VotesIn(year) {
			out = append(out, m)
		}
	}
	return out
}

// Lookup 按 id、全名或姓氏查找委员。
func (r *Registry) Lookup(name string) (Member, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Member{}, false
	}
	for _, m := range r.All() {
		if strings.ToLower(m.ID) == name {
			return m, true
		}
	}
	for _, m := range r.All() {
		if strings.ToLower(m.Name) == name {
			return m, true
		}
	}
	for _, m := range r.All() {
		parts := strings.Fields(m.Name)
		if len(parts) > 0 && strings.ToLower(parts[len(parts)-1]) == name {
			return m, true
		}
	}
	return Member{}, false
}

// ByStance 返回基线倾向匹配的委员。
func (r *Registry) ByStance(s Stance) []Member {
	var out []Member
	for _, m := range r.All() {
		if m.Stance == s {
			out = append(out, m)
		}
	}
	return out
}

func (r *Registry) reload() error {
	roster := BuiltinRoster()
	if r.path != "" {
		cfg, err := readRosterFile(r.path)
		if err != nil {
			return err
		}
		roster, err = mergeRoster(roster, cfg)
		if err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.snapshot = Snapshot{
		Version:  r.snapshot.Version + 1,
		LoadedAt: time.Now(),
		Members:  roster,
	}
	r.mu.Unlock()
	if r.path != "" {
		logger.Infof("Roster loaded %d members from %s", len(roster), filepath.Base(r.path))
	}
	return nil
}

func (r *Registry) notifyListeners() {
	r.mu.RLock()
	snap := cloneSnapshot(r.snapshot)
	listeners := append([]ChangeListener(nil), r.listeners...)
	r.mu.RUnlock()
	for _, fn := range listeners {
		if fn == nil {
			continue
		}
		go func(cb ChangeListener) {
			defer safeRecover("roster listener")
			cb(snap)
		}(fn)
	}
}

func mergeRoster(builtin []Member, cfg FileConfig) ([]Member, error) {
	for i, m := range cfg.Members {
		if strings.TrimSpace(m.ID) == "" {
			return nil, fmt.Errorf("roster entry %d missing id", i)
		}
		if m.Stance != "" && !m.Stance.Valid() {
			return nil, fmt.Errorf("roster entry %s has invalid stance: %s", m.ID, m.Stance)
		}
	}
	if cfg.Replace {
		return append([]Member(nil), cfg.Members...), nil
	}
	idx := make(map[string]int, len(builtin))
	out := append([]Member(nil), builtin...)
	for i, m := range out {
		idx[strings.ToLower(m.ID)] = i
	}
	for _, m := range cfg.Members {
		if pos, ok := idx[strings.ToLower(m.ID)]; ok {
			out[pos] = m
			continue
		}
		idx[strings.ToLower(m.ID)] = len(out)
		out = append(out, m)
	}
	return out, nil
}

func cloneSnapshot(src Snapshot) Snapshot {
	return Snapshot{
		Version:  src.Version,
		LoadedAt: src.LoadedAt,
		Members:  append([]Member(nil), src.Members...),
	}
}

func safeRecover(tag string) {
	if r := recover(); r != nil {
		logger.Errorf("%s panic: %v", tag, r)
	}
}

func readRosterFile(path string) (FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read roster config failed: %w", err)
	}
	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse roster config failed: %w", err)
	}
	return cfg, nil
}
