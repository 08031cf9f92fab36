package jwt

import (
	"testing"
	"time"

	"github.com/szxing21/fiowin-lab-website/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: 24 * time.Hour,
	})
}

func TestGenerateAndParseSessionToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateSessionToken("LabAdmin")
	if err != nil {
		t.Fatalf("GenerateSessionToken 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 失败: %v", err)
	}

	if claims.Username != "LabAdmin" {
		t.Errorf("期望 Username=LabAdmin，实际=%s", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("期望 Role=admin，实际=%s", claims.Role)
	}
	if claims.Issuer != "fiowin-lab" {
		t.Errorf("期望 Issuer=fiowin-lab，实际=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}

	// 检查过期时间约为 24h
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("会话 TTL 期望约24h，实际=%v", ttl)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:  "another-secret-key-entirely-different",
		SessionTTL: 24 * time.Hour,
	})

	token, err := other.GenerateSessionToken("LabAdmin")
	if err != nil {
		t.Fatalf("GenerateSessionToken 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: -time.Minute,
	})

	token, err := m.GenerateSessionToken("LabAdmin")
	if err != nil {
		t.Fatalf("GenerateSessionToken 失败: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()

	if _, err := m.ParseToken("not-a-jwt"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
