package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "mwss.org.in",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "student@example.com", RoleStudent, "Ravi Kumar")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.PrincipalID != 42 {
		t.Errorf("PrincipalID = %d, want 42", claims.PrincipalID)
	}
	if claims.Email != "student@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, RoleStudent)
	}
	if claims.Name != "Ravi Kumar" {
		t.Errorf("Name = %q", claims.Name)
	}
	if claims.Issuer != "mwss.org.in" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@b.c", RoleAdmin, "Admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken(1, "a@b.c", RoleAdmin, "Admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour, TokenIssuer: "mwss.org.in"})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header error = %v, want ErrInvalidFormat", err)
	}
	if _, err := ExtractBearerToken("Token abc"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("wrong scheme error = %v, want ErrInvalidFormat", err)
	}
	got, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken returned error: %v", err)
	}
	if got != "abc.def.ghi" {
		t.Errorf("token = %q, want %q", got, "abc.def.ghi")
	}
}
