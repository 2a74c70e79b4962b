package util

import (
	"testing"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
)

const testSecret = "test-secret-0123456789abcdef0123456789"

func testUser(id uint, role model.UserRole) *model.User {
	u := &model.User{
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  role,
	}
	u.ID = id
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(42, model.Student), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.Student {
		t.Errorf("Role = %s, want student", claims.Role)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(1, model.Admin), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "another-secret-another-secret-xx"); err == nil {
		t.Error("token signed with a different secret must not parse")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(1, model.Student), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("expired token must not parse")
	}
}
