package mocks

import (
	"fmt"

	"github.com/you/accountsvc/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, email string) (string, int64, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate generates a bearer token
func (m *MockTokenService) Generate(userID uint, email string) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email)
	}
	// Default behavior: deterministic fake token, 1h expiry
	return fmt.Sprintf("token_%d_%s", userID, email), 3600, nil
}

// Validate validates a bearer token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}
