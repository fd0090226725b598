package services

import (
	"testing"

	"github.com/KyleAMathews/group-question-game/internal/models"
)

func TestSeedAdminsAndLogin(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "test-secret")

	if err := auth.SeedAdmins("alice:hunter2, bob:swordfish"); err != nil {
		t.Fatalf("SeedAdmins: %v", err)
	}

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count != 2 {
		t.Fatalf("admins = %d, want 2", count)
	}

	token, err := auth.Login("alice", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	adminID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	var alice models.Admin
	if err := db.Where("username = ?", "alice").First(&alice).Error; err != nil {
		t.Fatalf("load alice: %v", err)
	}
	if adminID != alice.ID {
		t.Errorf("token admin = %d, want %d", adminID, alice.ID)
	}

	if _, err := auth.Login("alice", "wrong"); err == nil {
		t.Error("login with a wrong password should fail")
	}
	if _, err := auth.Login("mallory", "hunter2"); err == nil {
		t.Error("login as an unlisted user should fail")
	}
}

func TestSeedAdminsRotatesPassword(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "test-secret")

	if err := auth.SeedAdmins("alice:old-pass"); err != nil {
		t.Fatalf("SeedAdmins: %v", err)
	}
	if err := auth.SeedAdmins("alice:new-pass"); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	if _, err := auth.Login("alice", "old-pass"); err == nil {
		t.Error("old password still accepted after rotation")
	}
	if _, err := auth.Login("alice", "new-pass"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count != 1 {
		t.Errorf("admins = %d after reseed, want 1", count)
	}
}

func TestSeedAdminsRejectsMalformedEntries(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "test-secret")

	for _, bad := range []string{"alice", "alice:", ":hunter2"} {
		if err := auth.SeedAdmins(bad); err == nil {
			t.Errorf("SeedAdmins(%q) accepted malformed input", bad)
		}
	}

	// An empty whitelist is allowed, it just means nobody can log in.
	if err := auth.SeedAdmins(""); err != nil {
		t.Errorf("empty whitelist: %v", err)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "test-secret")

	if _, err := auth.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}

	other := NewAuthService(db, "different-secret")
	token, err := other.GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}

func TestIsAdmin(t *testing.T) {
	db := testDB(t)
	auth := NewAuthService(db, "test-secret")

	if err := auth.SeedAdmins("alice:hunter2"); err != nil {
		t.Fatalf("SeedAdmins: %v", err)
	}
	var alice models.Admin
	db.Where("username = ?", "alice").First(&alice)

	if !auth.IsAdmin(alice.ID) {
		t.Error("seeded admin not recognized")
	}
	if auth.IsAdmin(9999) {
		t.Error("unknown id passed the whitelist check")
	}
}
