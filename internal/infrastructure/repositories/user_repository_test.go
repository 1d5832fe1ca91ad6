package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/accountsvc/domain"
)

var testDBSeq atomic.Int64

// setupTestDB creates a private in-memory sqlite database with the users
// schema. Each test gets its own named database so state never leaks between
// tests, while shared cache keeps it visible across pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:usertest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

func newTestUser(email string) *domain.User {
	return &domain.User{
		Name:          "Test User",
		Email:         email,
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuv",
		EmailVerified: false,
	}
}

func TestUserRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := newTestUser("a@x.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	byEmail, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail() error: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("expected id %d, got %d", user.ID, byEmail.ID)
	}
	if byEmail.EmailVerified {
		t.Error("new users must start unverified")
	}

	byID, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if byID.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", byID.Email)
	}
}

func TestUserRepositoryImpl_FindMisses(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByEmail miss: expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByID miss: expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByEmailAndResetToken(ctx, "ghost@x.com", "t0ken"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("FindByEmailAndResetToken miss: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_EmailUniqueness(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newTestUser("dup@x.com")); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// The unique index, not the service-level check, is the real guard.
	if err := repo.Create(ctx, newTestUser("dup@x.com")); err == nil {
		t.Error("expected duplicate email insert to fail at the schema level")
	}
}

func TestUserRepositoryImpl_FindByEmailAndResetToken(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	token := "a1b2c3d4"
	expiry := time.Now().Add(15 * time.Minute)
	user := newTestUser("reset@x.com")
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	found, err := repo.FindByEmailAndResetToken(ctx, "reset@x.com", token)
	if err != nil {
		t.Fatalf("FindByEmailAndResetToken() error: %v", err)
	}
	if found.ResetToken == nil || *found.ResetToken != token {
		t.Error("expected stored reset token to round-trip")
	}

	// Wrong token for the right email must miss.
	if _, err := repo.FindByEmailAndResetToken(ctx, "reset@x.com", "wrong"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for a wrong token, got %v", err)
	}
}

func TestUserRepositoryImpl_UpdateClearsResetToken(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	token := "a1b2c3d4"
	expiry := time.Now().Add(15 * time.Minute)
	user := newTestUser("clear@x.com")
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	user.ClearResetToken()
	user.PasswordHash = "$2a$10$newhashnewhashnewhashn"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if reloaded.ResetToken != nil || reloaded.ResetTokenExpiry != nil {
		t.Error("expected reset token and expiry to be cleared after update")
	}
	if reloaded.PasswordHash != "$2a$10$newhashnewhashnewhashn" {
		t.Error("expected new password hash to persist")
	}
}

func TestUserRepositoryImpl_MarkEmailVerified(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := newTestUser("verify@x.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := repo.MarkEmailVerified(ctx, user.ID); err != nil {
		t.Fatalf("MarkEmailVerified() error: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID() error: %v", err)
	}
	if !reloaded.EmailVerified {
		t.Error("expected EmailVerified to be true")
	}
}

func TestUserRepositoryImpl_Delete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	byEmail := newTestUser("del-email@x.com")
	byID := newTestUser("del-id@x.com")
	for _, u := range []*domain.User{byEmail, byID} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	if err := repo.DeleteByEmail(ctx, "del-email@x.com"); err != nil {
		t.Fatalf("DeleteByEmail() error: %v", err)
	}
	if _, err := repo.FindByEmail(ctx, "del-email@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected deleted user to be gone, got %v", err)
	}

	if err := repo.DeleteByID(ctx, byID.ID); err != nil {
		t.Fatalf("DeleteByID() error: %v", err)
	}
	if _, err := repo.FindByID(ctx, byID.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected deleted user to be gone, got %v", err)
	}

	// Deleting something that is not there reports not found.
	if err := repo.DeleteByEmail(ctx, "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if err := repo.DeleteByID(ctx, 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryImpl_FindAll(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	for _, email := range []string{"one@x.com", "two@x.com", "three@x.com"} {
		if err := repo.Create(ctx, newTestUser(email)); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	users, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i := 1; i < len(users); i++ {
		if users[i-1].ID >= users[i].ID {
			t.Error("expected users ordered by id")
		}
	}
}
