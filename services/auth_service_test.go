package services_test

import (
	"testing"

	"jims/services"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := services.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hashed == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if !services.CheckPassword(hashed, "secret123") {
		t.Error("correct password rejected")
	}
	if services.CheckPassword(hashed, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{UserId: 7, Role: 1}, 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, role, err := services.GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken failed: %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want 7", userID)
	}
	if role != 1 {
		t.Errorf("role = %d, want 1", role)
	}
}

func TestTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := services.GenerateToken(services.UserInfo{UserId: 7, Role: 0}, 60)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := services.GetUserIDFromToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, _, err := services.GetUserIDFromToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}
