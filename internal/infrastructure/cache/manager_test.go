package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"recipe-extractor/internal/infrastructure/config"
	"recipe-extractor/internal/pkg/common"
)

func TestMain(m *testing.M) {
	if err := common.InitLogger("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestCacheSetGet(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt-a", "", "value-a"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get(ctx, "prompt-a", "")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "value-a" {
		t.Errorf("Get = %q, want %q", got, "value-a")
	}

	if _, err := m.Get(ctx, "prompt-b", ""); err == nil {
		t.Error("expected miss for unknown prompt")
	}
}

func TestCacheKeyIncludesImage(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt", "image-1", "value-1"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// 相同 prompt、不同圖片必須各自成鍵
	if _, err := m.Get(ctx, "prompt", "image-2"); err == nil {
		t.Error("expected miss for different image")
	}

	got, err := m.Get(ctx, "prompt", "image-1")
	if err != nil || got != "value-1" {
		t.Errorf("Get = (%q, %v)", got, err)
	}
}

func TestCacheExpiry(t *testing.T) {
	m := NewManager(newTestConfig(10, 10*time.Millisecond))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt", "", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "prompt", ""); err == nil {
		t.Error("expected miss after TTL")
	}
}

func TestCacheLRUEviction(t *testing.T) {
	m := NewManager(newTestConfig(2, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt-1", "", "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := m.Set(ctx, "prompt-2", "", "v2"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// 提高 prompt-1 的訪問計數，prompt-2 成為淘汰對象
	if _, err := m.Get(ctx, "prompt-1", ""); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if err := m.Set(ctx, "prompt-3", "", "v3"); err != nil {
		t.Fatalf("Set after eviction: %v", err)
	}

	if _, err := m.Get(ctx, "prompt-2", ""); err == nil {
		t.Error("prompt-2 should have been evicted")
	}
	if got, err := m.Get(ctx, "prompt-1", ""); err != nil || got != "v1" {
		t.Errorf("prompt-1 = (%q, %v)", got, err)
	}
}

func TestCacheDisabled(t *testing.T) {
	cfg := newTestConfig(10, time.Minute)
	cfg.Cache.Enabled = false

	m := NewManager(cfg)
	if m != nil {
		t.Error("disabled cache should return nil manager")
	}

	// nil 管理器的呼叫必須安全
	if err := m.Set(context.Background(), "p", "", "v"); err != nil {
		t.Errorf("Set on nil manager: %v", err)
	}
	if _, err := m.Get(context.Background(), "p", ""); err == nil {
		t.Error("Get on nil manager should miss")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
}

func TestCacheStats(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	_ = m.Set(ctx, "prompt", "", "value")
	_, _ = m.Get(ctx, "prompt", "")
	_, _ = m.Get(ctx, "other", "")

	stats := m.GetStats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}
