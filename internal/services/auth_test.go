package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/delologroup/site/internal/config"
	"github.com/delologroup/site/internal/models"
	"github.com/delologroup/site/internal/utils"
	"github.com/delologroup/site/pkg/response"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	utils.SetJWTSecret("services-test-secret")
	svc := NewAuthService(openTestDB(t), &config.JWTConfig{ExpireHour: 1})
	if err := svc.EnsureAdmin(&config.AdminConfig{Username: "admin", Password: "admin123"}); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	return svc
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(&LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !resp.Auth || resp.User.Username != "admin" {
		t.Errorf("resp = %+v", resp)
	}

	claims, err := utils.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.Username != "admin" || claims.UserID == 0 {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	for _, req := range []LoginRequest{
		{Username: "admin", Password: "wrong"},
		{Username: "nobody", Password: "admin123"},
	} {
		_, err := svc.Login(&req)
		var appErr *response.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusUnauthorized {
			t.Errorf("Login(%q) error = %v, expected 401", req.Username, err)
		}
	}
}

func TestAuthService_EnsureAdminResetsPassword(t *testing.T) {
	svc := newTestAuthService(t)

	if err := svc.EnsureAdmin(&config.AdminConfig{Username: "admin", Password: "rotated"}); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}

	var count int64
	svc.db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("users = %d, expected 1", count)
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "admin123"}); err == nil {
		t.Error("old password should no longer work")
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "rotated"}); err != nil {
		t.Errorf("Login() with reset password error = %v", err)
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	svc := newTestAuthService(t)
	resp, _ := svc.Login(&LoginRequest{Username: "admin", Password: "admin123"})
	claims, _ := utils.ParseToken(resp.Token)

	err := svc.ChangePassword(claims.UserID, &ChangePasswordRequest{OldPassword: "bad", NewPassword: "newpass"})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("ChangePassword() with wrong old password error = %v", err)
	}

	if err := svc.ChangePassword(claims.UserID, &ChangePasswordRequest{OldPassword: "admin123", NewPassword: "newpass"}); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if _, err := svc.Login(&LoginRequest{Username: "admin", Password: "newpass"}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}
}
