package shared_test

import (
	"testing"
	"time"

	"luxe_haven/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SESSION_TTL_SECONDS", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("TRUST_PROXY", "")
	c := shared.Load()
	if c.StoreDriver != "redis" {
		t.Fatalf("StoreDriver = %q", c.StoreDriver)
	}
	if c.SessionTTL != 7*24*time.Hour {
		t.Fatalf("SessionTTL = %v", c.SessionTTL)
	}
	if c.AdminEmail != "admin@luxehaven.com" {
		t.Fatalf("AdminEmail = %q", c.AdminEmail)
	}
	if c.TrustProxy {
		t.Fatalf("TrustProxy should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SESSION_TTL_SECONDS", "60")
	t.Setenv("AUTH_RPS", "2.5")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("TRUST_PROXY", "true")
	c := shared.Load()
	if c.StoreDriver != "sqlite" || c.SessionTTL != time.Minute || c.AuthRPS != 2.5 || c.TelegramChatID != -1001 || !c.TrustProxy {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.RedisDB != 0 {
		t.Fatalf("invalid int should fall back to default, got %d", c.RedisDB)
	}
}
