package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/nutritrack/backend/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("connects and reports healthy", func(t *testing.T) {
		srv := miniredis.RunT(t)

		client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + srv.Addr() + "/0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer client.Close()

		if !HealthChecker(client)() {
			t.Error("expected healthy redis")
		}

		srv.Close()
		if HealthChecker(client)() {
			t.Error("expected unhealthy redis after shutdown")
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		if _, err := NewRedisClient(&config.RedisConfig{URL: "://bad"}); err == nil {
			t.Error("expected error for invalid url")
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv := miniredis.RunT(t)
		addr := srv.Addr()
		srv.Close()

		if _, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + addr}); err == nil {
			t.Error("expected ping error")
		}
	})
}
