package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Runs against a live server when REDIS_TEST_ADDR is set.
func TestSessionKV_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client, err := Connect(ctx, Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	kv := NewSessionKV(client, time.Minute)
	key := "test:" + uuid.NewString()

	if _, found, err := kv.Get(ctx, key); found || err != nil {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}
	if err := kv.Set(ctx, key, "recruiter"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, found, err := kv.Get(ctx, key); err != nil || !found || v != "recruiter" {
		t.Fatalf("unexpected get: %q %v %v", v, found, err)
	}
	if ttl := client.TTL(ctx, key).Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl within a minute, got %v", ttl)
	}
	if err := kv.Delete(ctx, key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := kv.Get(ctx, key); found {
		t.Fatalf("expected key removed")
	}
}
