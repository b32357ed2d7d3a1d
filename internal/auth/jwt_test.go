package auth

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestInitJWTSecretMissing(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if err := InitJWTSecret(); err == nil {
		t.Fatal("InitJWTSecret() should fail without JWT_SECRET")
	}
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_secret_with_enough_entropy_123")
	defer os.Unsetenv("JWT_SECRET")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	token, err := GenerateJWT(42, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	parsed, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT() error = %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}

	if userID, _ := claims["user_id"].(float64); uint(userID) != 42 {
		t.Errorf("user_id = %v, want 42", claims["user_id"])
	}

	if email, _ := claims["email"].(string); email != "a@example.com" {
		t.Errorf("email = %q, want a@example.com", email)
	}
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_secret_with_enough_entropy_123")
	defer os.Unsetenv("JWT_SECRET")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	token, err := GenerateJWT(42, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := VerifyJWT(token + "x"); err == nil {
		t.Error("VerifyJWT() should reject a tampered token")
	}

	if _, err := VerifyJWT("not.a.token"); err == nil {
		t.Error("VerifyJWT() should reject a malformed token")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "first_secret_first_secret_first_1")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	token, err := GenerateJWT(7, "b@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	os.Setenv("JWT_SECRET", "second_secret_second_secret_sec_2")
	defer os.Unsetenv("JWT_SECRET")

	if err := InitJWTSecret(); err != nil {
		t.Fatalf("InitJWTSecret() error = %v", err)
	}

	if _, err := VerifyJWT(token); err == nil {
		t.Error("VerifyJWT() should reject a token signed with a different secret")
	}
}
