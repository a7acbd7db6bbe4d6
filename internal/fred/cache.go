package fred

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// 中文说明：
// FRED 响应的文件缓存。月度/季度序列更新慢给长 TTL，日度/周度给短 TTL。
// 过期或损坏的缓存文件直接删掉，当作未命中。

type Cache struct {
	dir        string
	ttlMonthly time.Duration
	ttlDaily   time.Duration
	now        func() time.Time
}

type cacheEntry struct {
	Data       []Observation `json:"data"`
	CachedAt   time.Time     `json:"cached_at"`
	TTLSeconds int           `json:"ttl_seconds"`
}

func NewCache(dir string, ttlMonthly, ttlDaily time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttlMonthly: ttlMonthly, ttlDaily: ttlDaily, now: time.Now}, nil
}

func (c *Cache) path(seriesID string) string {
	return filepath.Join(c.dir, strings.ToLower(seriesID)+".json")
}

// Get 返回未过期的缓存观测值，未命中返回 nil。
func (c *Cache) Get(seriesID string) []Observation {
	raw, err := os.ReadFile(c.path(seriesID))
	if err != nil {
		return nil
	}
	var entry cacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		_ = os.Remove(c.path(seriesID))
		return nil
	}
	age := c.now().Sub(entry.CachedAt)
	if age > time.Duration(entry.TTLSeconds)*time.Second {
		_ = os.Remove(c.path(seriesID))
		return nil
	}
	return entry.Data
}

// Set 按序列频率写缓存。
func (c *Cache) Set(seriesID string, data []Observation, frequency string) error {
	ttl := c.ttlMonthly
	switch frequency {
	case "daily", "weekly":
		ttl = c.ttlDaily
	}
	entry := cacheEntry{
		Data:       data,
		CachedAt:   c.now(),
		TTLSeconds: int(ttl / time.Second),
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(seriesID), raw, 0o644)
}

// Invalidate 删除单个序列的缓存。
func (c *Cache) Invalidate(seriesID string) {
	_ = os.Remove(c.path(seriesID))
}

// Clear 清空全部缓存，返回删除的条目数。
func (c *Cache) Clear() int {
	matches, _ := filepath.Glob(filepath.Join(c.dir, "*.json"))
	count := 0
	for _, m := range matches {
		if os.Remove(m) == nil {
			count++
		}
	}
	return count
}
