package db

import (
	"context"
	"testing"
	"time"
)

func TestMockRedisClient_SetGet(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if err := client.Set("k1", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := client.Get("k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v1" {
		t.Errorf("Get = %q; want v1", got)
	}
}

func TestMockRedisClient_GetMissingKey(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if _, err := client.Get("absent"); err == nil {
		t.Error("expected an error for a missing key")
	}
}

func TestMockRedisClient_SetWithTTLExpires(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if err := client.SetWithTTL("k1", "v1", time.Millisecond); err != nil {
		t.Fatalf("SetWithTTL failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := client.Get("k1"); err == nil {
		t.Error("expected the key to have expired")
	}
}

func TestMockRedisClient_SetClearsTTL(t *testing.T) {
	client := NewMockRedisClient(context.Background())

	if err := client.SetWithTTL("k1", "v1", time.Millisecond); err != nil {
		t.Fatalf("SetWithTTL failed: %v", err)
	}
	if err := client.Set("k1", "v2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	got, err := client.Get("k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "v2" {
		t.Errorf("Get = %q; want v2", got)
	}
}

func TestMockRedisClient_Keys(t *testing.T) {
	client := NewMockRedisClient(context.Background())
	client.Set("destination_hotels_v1:WD0M", "[]")
	client.Set("destination_hotels_v1:RsBU", "[]")
	client.Set("other", "x")

	keys, err := client.Keys("destination_hotels_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("len(keys) = %d; want 2", len(keys))
	}
}

func TestMockRedisClient_Del(t *testing.T) {
	client := NewMockRedisClient(context.Background())
	client.Set("k1", "v1")

	if err := client.Del("k1"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("k1"); err == nil {
		t.Error("expected key to be gone after Del")
	}
}

func TestMockRedisClient_Ping(t *testing.T) {
	client := NewMockRedisClient(context.Background())
	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
