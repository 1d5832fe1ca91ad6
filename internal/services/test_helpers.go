package services

import (
	"context"
	"testing"
	"time"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/mocks"
)

// accountServiceDeps bundles the mocks behind a service under test so cases
// can reconfigure individual collaborators.
type accountServiceDeps struct {
	userRepo    *mocks.MockUserRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	otpSvc      *mocks.MockOTPService
	notifier    *mocks.MockNotificationService
	auditLog    *mocks.MockAuditLogger
}

func newTestAccountService(t *testing.T) (*AccountServiceImpl, *accountServiceDeps) {
	t.Helper()

	deps := &accountServiceDeps{
		userRepo:    mocks.NewMockUserRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		otpSvc:      mocks.NewMockOTPService(),
		notifier:    mocks.NewMockNotificationService(),
		auditLog:    mocks.NewMockAuditLogger(),
	}

	svc := NewAccountService(
		deps.userRepo,
		deps.passwordSvc,
		deps.tokenSvc,
		deps.otpSvc,
		deps.notifier,
		deps.auditLog,
		8,
		15*time.Minute,
	).(*AccountServiceImpl)

	return svc, deps
}

// createVerifiedUser returns a user that can log in with "correct-password"
// under the mock password service.
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:            1,
		Name:          "A",
		Email:         "a@x.com",
		PasswordHash:  "hashed_correct-password",
		EmailVerified: true,
	}
}

// createUnverifiedUser returns a freshly signed-up user awaiting OTP
// verification.
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:            2,
		Name:          "B",
		Email:         "b@x.com",
		PasswordHash:  "hashed_correct-password",
		EmailVerified: false,
	}
}

// returnUser makes a finder mock return the given user for any lookup.
func returnUser(user *domain.User) func(ctx context.Context, email string) (*domain.User, error) {
	return func(ctx context.Context, email string) (*domain.User, error) {
		return user, nil
	}
}

// returnUserByID makes an id-based finder mock return the given user.
func returnUserByID(user *domain.User) func(ctx context.Context, id uint) (*domain.User, error) {
	return func(ctx context.Context, id uint) (*domain.User, error) {
		return user, nil
	}
}
