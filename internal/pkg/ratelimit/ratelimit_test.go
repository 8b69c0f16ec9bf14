package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/danishfaisall/gokart/internal/pkg/hash"
)

// startRedis boots a throwaway redis container. Tests that use it are
// skipped unless GOKART_INTEGRATION is set, so the default test run does not
// require docker.
func startRedis(t *testing.T) *redis.Client {
	t.Helper()

	if os.Getenv("GOKART_INTEGRATION") == "" {
		t.Skip("set GOKART_INTEGRATION=1 to run container-backed tests")
	}

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("redis connection string: %v", err)
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		t.Fatalf("parse redis url: %v", err)
	}

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestFixedWindowAllow(t *testing.T) {
	client := startRedis(t)
	mac := hash.NewHMACSHA256("test-limiter-secret")
	ctx := context.Background()

	t.Run("denies once the limit is reached", func(t *testing.T) {
		limiter := NewFixedWindow(client, mac, Policy{Name: "login", Limit: 3, Window: time.Minute})

		for i := range 3 {
			ok, err := limiter.Allow(ctx, "1.2.3.4")
			if err != nil {
				t.Fatalf("Allow() error = %v", err)
			}
			if !ok {
				t.Fatalf("request %d denied, want allowed", i+1)
			}
		}

		ok, err := limiter.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if ok {
			t.Fatal("request over the limit allowed")
		}
	})

	t.Run("raw caller key never stored in redis", func(t *testing.T) {
		exists, err := client.Exists(ctx, "ratelimit:login:1.2.3.4").Result()
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if exists != 0 {
			t.Fatal("counter keyed by the raw client identity")
		}

		digest, err := mac.Hash("1.2.3.4")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		exists, err = client.Exists(ctx, "ratelimit:login:"+string(digest)).Result()
		if err != nil {
			t.Fatalf("Exists() error = %v", err)
		}
		if exists != 1 {
			t.Fatal("counter for the derived key not found")
		}
	})

	t.Run("keys are counted independently", func(t *testing.T) {
		limiter := NewFixedWindow(client, mac, Policy{Name: "otp", Limit: 1, Window: time.Minute})

		if ok, err := limiter.Allow(ctx, "a"); err != nil || !ok {
			t.Fatalf("Allow(a) = %v, %v, want allowed", ok, err)
		}
		if ok, err := limiter.Allow(ctx, "b"); err != nil || !ok {
			t.Fatalf("Allow(b) = %v, %v, want allowed", ok, err)
		}
		if ok, err := limiter.Allow(ctx, "a"); err != nil || ok {
			t.Fatalf("Allow(a) = %v, %v, want denied", ok, err)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		limiter := NewFixedWindow(client, mac, Policy{Name: "short", Limit: 1, Window: time.Second})

		if ok, err := limiter.Allow(ctx, "c"); err != nil || !ok {
			t.Fatalf("Allow() = %v, %v, want allowed", ok, err)
		}
		if ok, err := limiter.Allow(ctx, "c"); err != nil || ok {
			t.Fatalf("Allow() = %v, %v, want denied", ok, err)
		}

		time.Sleep(1200 * time.Millisecond)

		if ok, err := limiter.Allow(ctx, "c"); err != nil || !ok {
			t.Fatalf("Allow() after window = %v, %v, want allowed", ok, err)
		}
	})
}
