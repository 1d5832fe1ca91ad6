package mocks

import (
	"context"

	"github.com/you/accountsvc/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	GenerateFunc func(ctx context.Context, userID uint, email string) (string, error)
	VerifyFunc   func(ctx context.Context, userID uint, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Generate generates and stores a verification code
func (m *MockOTPService) Generate(ctx context.Context, userID uint, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, userID, email)
	}
	// Default behavior: fixed in-range code
	return "123456", nil
}

// Verify checks a submitted verification code
func (m *MockOTPService) Verify(ctx context.Context, userID uint, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, userID, code)
	}
	// Default behavior: accept the default generated code
	if code == "123456" {
		return nil
	}
	return domain.ErrOTPInvalid
}
