package mocks

import (
	"context"

	"github.com/you/accountsvc/domain"
)

// MockAuditLogger implements domain.AuditLogger interface for testing
type MockAuditLogger struct {
	LogEventFunc             func(ctx context.Context, event *domain.AuditEvent) error
	LogRegistrationFunc      func(ctx context.Context, userID uint, email string) error
	LogLoginFunc             func(ctx context.Context, userID uint, email string, success bool, errMsg string) error
	LogEmailVerificationFunc func(ctx context.Context, userID uint, success bool, errMsg string) error
	LogPasswordResetFunc     func(ctx context.Context, userID uint, email string, success bool, errMsg string) error
}

// NewMockAuditLogger creates a new MockAuditLogger with default behaviors
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records an audit event
func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if m.LogEventFunc != nil {
		return m.LogEventFunc(ctx, event)
	}
	return nil
}

// LogRegistration records a registration event
func (m *MockAuditLogger) LogRegistration(ctx context.Context, userID uint, email string) error {
	if m.LogRegistrationFunc != nil {
		return m.LogRegistrationFunc(ctx, userID, email)
	}
	return nil
}

// LogLogin records a login event
func (m *MockAuditLogger) LogLogin(ctx context.Context, userID uint, email string, success bool, errMsg string) error {
	if m.LogLoginFunc != nil {
		return m.LogLoginFunc(ctx, userID, email, success, errMsg)
	}
	return nil
}

// LogEmailVerification records an email verification event
func (m *MockAuditLogger) LogEmailVerification(ctx context.Context, userID uint, success bool, errMsg string) error {
	if m.LogEmailVerificationFunc != nil {
		return m.LogEmailVerificationFunc(ctx, userID, success, errMsg)
	}
	return nil
}

// LogPasswordReset records a password reset event
func (m *MockAuditLogger) LogPasswordReset(ctx context.Context, userID uint, email string, success bool, errMsg string) error {
	if m.LogPasswordResetFunc != nil {
		return m.LogPasswordResetFunc(ctx, userID, email, success, errMsg)
	}
	return nil
}
