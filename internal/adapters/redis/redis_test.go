package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping redis integration test")
	}
	c := NewClient(addr, os.Getenv("REDIS_USERNAME"), os.Getenv("REDIS_PASSWORD"), 0)
	if err := c.Ping(context.Background()); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestTokenStore_LoadSaveClear(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	s := NewTokenStore(c, fmt.Sprintf("foodadmin:test:token:%d", time.Now().UnixNano()))

	if got, err := s.Load(ctx); err != nil || got != "" {
		t.Fatalf("Load() on empty key = %q, %v", got, err)
	}
	for _, token := range []string{"T1", "T2"} {
		if err := s.Save(ctx, token); err != nil {
			t.Fatalf("Save(%q) error: %v", token, err)
		}
		if got, err := s.Load(ctx); err != nil || got != token {
			t.Errorf("Load() = %q, %v; want %q", got, err, token)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if got, err := s.Load(ctx); err != nil || got != "" {
		t.Errorf("Load() after Clear = %q, %v", got, err)
	}
}
