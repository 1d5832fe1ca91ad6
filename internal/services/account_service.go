package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/you/accountsvc/domain"
)

const resetTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo        domain.UserRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	otpSvc          domain.OTPService
	notificationSvc domain.NotificationService
	auditLog        domain.AuditLogger
	resetTokenLen   int
	resetTokenTTL   time.Duration
	now             func() time.Time
}

// NewAccountService creates a new account lifecycle service
func NewAccountService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	notificationSvc domain.NotificationService,
	auditLog domain.AuditLogger,
	resetTokenLen int,
	resetTokenTTL time.Duration,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:        userRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		otpSvc:          otpSvc,
		notificationSvc: notificationSvc,
		auditLog:        auditLog,
		resetTokenLen:   resetTokenLen,
		resetTokenTTL:   resetTokenTTL,
		now:             time.Now,
	}
}

// Signup implements domain.AccountService. The existence check only produces
// the friendly conflict error; the store's unique email index is the real
// guard against a concurrent duplicate.
func (s *AccountServiceImpl) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:          name,
		Email:         email,
		PasswordHash:  hashedPassword,
		EmailVerified: false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The code reaches the caller only through the email channel.
	if _, err := s.otpSvc.Generate(ctx, user.ID, user.Email); err != nil {
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	s.auditLog.LogRegistration(ctx, user.ID, user.Email)

	return user, nil
}

// Login implements domain.AccountService. An unknown email and a wrong
// password produce the same error so callers cannot probe for accounts.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.auditLog.LogLogin(ctx, 0, email, false, domain.ErrInvalidCredentials.Error())
		return nil, domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		s.auditLog.LogLogin(ctx, user.ID, email, false, domain.ErrEmailNotVerified.Error())
		return nil, domain.ErrEmailNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		s.auditLog.LogLogin(ctx, user.ID, email, false, domain.ErrInvalidCredentials.Error())
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.auditLog.LogLogin(ctx, user.ID, email, true, "")

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// VerifyEmail implements domain.AccountService
func (s *AccountServiceImpl) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.otpSvc.Verify(ctx, userID, code); err != nil {
		s.auditLog.LogEmailVerification(ctx, userID, false, err.Error())
		return nil, err
	}

	if err := s.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		s.auditLog.LogEmailVerification(ctx, userID, false, err.Error())
		return nil, fmt.Errorf("failed to mark email verified: %w", err)
	}

	user.EmailVerified = true
	s.auditLog.LogEmailVerification(ctx, userID, true, "")

	return user, nil
}

// ResendOTP implements domain.AccountService. A fresh code replaces any
// previous one.
func (s *AccountServiceImpl) ResendOTP(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.otpSvc.Generate(ctx, user.ID, user.Email); err != nil {
		return fmt.Errorf("failed to resend OTP: %w", err)
	}

	s.auditLog.LogEvent(ctx, domain.NewAuditEvent(domain.OTPRequestEvent, user.ID).WithEmail(user.Email))
	return nil
}

// ForgotPassword implements domain.AccountService. Token and expiry are set
// in the same write, never one without the other.
func (s *AccountServiceImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.generateResetToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiry := s.now().Add(s.resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	message := fmt.Sprintf("Your password reset token is: %s. Valid for %d minutes.", token, int(s.resetTokenTTL.Minutes()))
	if err := s.notificationSvc.SendEmail(user.Email, "Reset your password", message); err != nil {
		return "", fmt.Errorf("failed to send reset token email: %w", err)
	}

	return token, nil
}

// ResetPassword implements domain.AccountService. A wrong token, an unknown
// email and an expired token all collapse into the same error.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	user, err := s.userRepo.FindByEmailAndResetToken(ctx, email, resetToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.auditLog.LogPasswordReset(ctx, 0, email, false, domain.ErrResetTokenInvalid.Error())
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	if !user.ResetTokenValidAt(s.now()) {
		s.auditLog.LogPasswordReset(ctx, user.ID, email, false, domain.ErrResetTokenInvalid.Error())
		return domain.ErrResetTokenInvalid
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ClearResetToken()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.auditLog.LogPasswordReset(ctx, user.ID, email, true, "")

	return nil
}

// ListUsers implements domain.AccountService
func (s *AccountServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetUserByID implements domain.AccountService
func (s *AccountServiceImpl) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateUserByEmail implements domain.AccountService
func (s *AccountServiceImpl) UpdateUserByEmail(ctx context.Context, email, name string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdateUserByID implements domain.AccountService. Only the provided fields
// change; an empty name or email leaves the stored value alone.
func (s *AccountServiceImpl) UpdateUserByID(ctx context.Context, id uint, name, email string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUserByEmail implements domain.AccountService
func (s *AccountServiceImpl) DeleteUserByEmail(ctx context.Context, email string) error {
	if err := s.userRepo.DeleteByEmail(ctx, email); err != nil {
		return err
	}

	s.auditLog.LogEvent(ctx, domain.NewAuditEvent(domain.UserDeletedEvent, 0).WithEmail(email))
	return nil
}

// DeleteUserByID implements domain.AccountService
func (s *AccountServiceImpl) DeleteUserByID(ctx context.Context, id uint) error {
	if err := s.userRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.auditLog.LogEvent(ctx, domain.NewAuditEvent(domain.UserDeletedEvent, id))
	return nil
}

// generateResetToken draws a base36 token of the configured length from
// crypto/rand.
func (s *AccountServiceImpl) generateResetToken() (string, error) {
	length := s.resetTokenLen
	if length <= 0 {
		length = 8
	}

	token := make([]byte, length)
	max := big.NewInt(int64(len(resetTokenAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = resetTokenAlphabet[n.Int64()]
	}
	return string(token), nil
}
