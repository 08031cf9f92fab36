package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/szxing21/fiowin-lab-website/config"
	"github.com/szxing21/fiowin-lab-website/internal/dto"
	"github.com/szxing21/fiowin-lab-website/pkg/jwt"
)

func newTestAuthService(password string) AuthService {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			AdminUsername: "LabAdmin",
			AdminPassword: password,
			JWTSecret:     "test-secret-key-0123456789",
			SessionTTL:    time.Hour,
		},
	}
	return NewAuthService(cfg, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService("correct-password")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "LabAdmin",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if result.Token == "" {
		t.Fatal("登录成功应签发会话 Token")
	}
	if result.Username != "LabAdmin" {
		t.Fatalf("用户名不符: %s", result.Username)
	}
	if !result.ExpiresAt.After(time.Now()) {
		t.Fatal("过期时间应在未来")
	}

	// 签发的 Token 能通过会话查询
	session := svc.Session(context.Background(), result.Token)
	if !session.Authenticated {
		t.Fatal("登录后会话查询应返回已认证")
	}
	if session.Username != "LabAdmin" || session.Role != "admin" {
		t.Fatalf("会话信息不符: %+v", session)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService("correct-password")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "LabAdmin",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("错误密码应返回凭据错误，实际=%v", err)
	}
}

func TestLoginWrongUsername(t *testing.T) {
	svc := newTestAuthService("correct-password")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "NotAdmin",
		Password: "correct-password",
	})
	// 用户名错与密码错返回同一错误，不对外区分
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("错误用户名应返回凭据错误，实际=%v", err)
	}
}

func TestLoginBcryptHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成 bcrypt 哈希失败: %v", err)
	}
	svc := newTestAuthService(string(hash))

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "LabAdmin",
		Password: "correct-password",
	}); err != nil {
		t.Fatalf("bcrypt 凭据登录失败: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "LabAdmin",
		Password: "wrong",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("bcrypt 凭据下错误密码应被拒绝，实际=%v", err)
	}
}

func TestSessionAnonymousCases(t *testing.T) {
	svc := newTestAuthService("pw")

	cases := []string{
		"",
		"not-a-token",
		"eyJhbGciOiJIUzI1NiJ9.garbage.sig",
	}
	for _, token := range cases {
		session := svc.Session(context.Background(), token)
		if session.Authenticated {
			t.Fatalf("无效 Token %q 应视为匿名", token)
		}
		// 匿名标记不携带身份信息
		if session.Username != "" || session.Role != "" {
			t.Fatalf("匿名会话不应携带身份: %+v", session)
		}
	}
}

func TestSessionExpiredToken(t *testing.T) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			AdminUsername: "LabAdmin",
			AdminPassword: "pw",
			JWTSecret:     "test-secret-key-0123456789",
			SessionTTL:    -time.Minute,
		},
	}
	svc := NewAuthService(cfg, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "LabAdmin",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	// 过期会话视为匿名而不是报错
	session := svc.Session(context.Background(), result.Token)
	if session.Authenticated {
		t.Fatal("过期 Token 应视为匿名")
	}
}

func TestLogoutWithoutRedisDegrades(t *testing.T) {
	svc := newTestAuthService("pw")

	// Redis 不可用时登出不报错（降级为仅清 Cookie）
	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("无 Redis 登出应降级成功，实际=%v", err)
	}
}
