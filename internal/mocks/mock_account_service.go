package mocks

import (
	"context"

	"github.com/you/accountsvc/domain"
)

// MockAccountService implements domain.AccountService interface for testing
type MockAccountService struct {
	SignupFunc            func(ctx context.Context, name, email, password string) (*domain.User, error)
	LoginFunc             func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifyEmailFunc       func(ctx context.Context, userID uint, code string) (*domain.User, error)
	ResendOTPFunc         func(ctx context.Context, userID uint) error
	ForgotPasswordFunc    func(ctx context.Context, email string) (string, error)
	ResetPasswordFunc     func(ctx context.Context, email, resetToken, newPassword string) error
	ListUsersFunc         func(ctx context.Context) ([]*domain.User, error)
	GetUserByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdateUserByEmailFunc func(ctx context.Context, email, name string) (*domain.User, error)
	UpdateUserByIDFunc    func(ctx context.Context, id uint, name, email string) (*domain.User, error)
	DeleteUserByEmailFunc func(ctx context.Context, email string) error
	DeleteUserByIDFunc    func(ctx context.Context, id uint) error
}

// NewMockAccountService creates a new MockAccountService with default behaviors
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, name, email, password)
	}
	return &domain.User{ID: 1, Name: name, Email: email}, nil
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAccountService) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.User, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, userID, code)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) ResendOTP(ctx context.Context, userID uint) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, userID)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return "", domain.ErrUserNotFound
}

func (m *MockAccountService) ResetPassword(ctx context.Context, email, resetToken, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, resetToken, newPassword)
	}
	return domain.ErrResetTokenInvalid
}

func (m *MockAccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []*domain.User{}, nil
}

func (m *MockAccountService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateUserByEmail(ctx context.Context, email, name string) (*domain.User, error) {
	if m.UpdateUserByEmailFunc != nil {
		return m.UpdateUserByEmailFunc(ctx, email, name)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateUserByID(ctx context.Context, id uint, name, email string) (*domain.User, error) {
	if m.UpdateUserByIDFunc != nil {
		return m.UpdateUserByIDFunc(ctx, id, name, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) DeleteUserByEmail(ctx context.Context, email string) error {
	if m.DeleteUserByEmailFunc != nil {
		return m.DeleteUserByEmailFunc(ctx, email)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) DeleteUserByID(ctx context.Context, id uint) error {
	if m.DeleteUserByIDFunc != nil {
		return m.DeleteUserByIDFunc(ctx, id)
	}
	return domain.ErrUserNotFound
}
