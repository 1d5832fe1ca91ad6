package mocks

import (
	"context"

	"github.com/you/accountsvc/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                   func(ctx context.Context, user *domain.User) error
	FindByEmailFunc              func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                 func(ctx context.Context, id uint) (*domain.User, error)
	FindByEmailAndResetTokenFunc func(ctx context.Context, email, token string) (*domain.User, error)
	FindAllFunc                  func(ctx context.Context) ([]*domain.User, error)
	UpdateFunc                   func(ctx context.Context, user *domain.User) error
	MarkEmailVerifiedFunc        func(ctx context.Context, userID uint) error
	DeleteByEmailFunc            func(ctx context.Context, email string) error
	DeleteByIDFunc               func(ctx context.Context, id uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success, assign an id
	if user.ID == 0 {
		user.ID = 1
	}
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmailAndResetToken finds a user by the (email, reset token) pair
func (m *MockUserRepository) FindByEmailAndResetToken(ctx context.Context, email, token string) (*domain.User, error) {
	if m.FindByEmailAndResetTokenFunc != nil {
		return m.FindByEmailAndResetTokenFunc(ctx, email, token)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindAll lists all users
func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	// Default behavior: empty list
	return []*domain.User{}, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// MarkEmailVerified marks the user's email as verified
func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, userID uint) error {
	if m.MarkEmailVerifiedFunc != nil {
		return m.MarkEmailVerifiedFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// DeleteByEmail deletes a user by email
func (m *MockUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return domain.ErrUserNotFound
}

// DeleteByID deletes a user by ID
func (m *MockUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return domain.ErrUserNotFound
}
