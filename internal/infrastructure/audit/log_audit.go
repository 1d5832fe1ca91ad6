package audit

import (
	"context"
	"log"
	"time"

	"github.com/you/accountsvc/domain"
)

// LogAuditLogger implements domain.AuditLogger on top of the standard logger.
type LogAuditLogger struct{}

// NewLogAuditLogger creates an audit logger that writes one line per event.
func NewLogAuditLogger() domain.AuditLogger {
	return &LogAuditLogger{}
}

// LogEvent implements domain.AuditLogger
func (l *LogAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) error {
	if event.ErrorMsg != "" {
		log.Printf("%s: user_id=%d email=%s success=%t error=%q timestamp=%s",
			event.EventType, event.UserID, event.Email, event.Success,
			event.ErrorMsg, event.Timestamp.Format(time.RFC3339))
		return nil
	}
	log.Printf("%s: user_id=%d email=%s success=%t timestamp=%s",
		event.EventType, event.UserID, event.Email, event.Success,
		event.Timestamp.Format(time.RFC3339))
	return nil
}

// LogRegistration implements domain.AuditLogger
func (l *LogAuditLogger) LogRegistration(ctx context.Context, userID uint, email string) error {
	return l.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent, userID).WithEmail(email))
}

// LogLogin implements domain.AuditLogger
func (l *LogAuditLogger) LogLogin(ctx context.Context, userID uint, email string, success bool, errMsg string) error {
	eventType := domain.UserLoginEvent
	if !success {
		eventType = domain.UserLoginFailureEvent
	}
	event := domain.NewAuditEvent(eventType, userID).WithEmail(email)
	event.Success = success
	event.ErrorMsg = errMsg
	return l.LogEvent(ctx, event)
}

// LogEmailVerification implements domain.AuditLogger
func (l *LogAuditLogger) LogEmailVerification(ctx context.Context, userID uint, success bool, errMsg string) error {
	eventType := domain.EmailVerifiedEvent
	if !success {
		eventType = domain.EmailVerificationFailureEvent
	}
	event := domain.NewAuditEvent(eventType, userID)
	event.Success = success
	event.ErrorMsg = errMsg
	return l.LogEvent(ctx, event)
}

// LogPasswordReset implements domain.AuditLogger
func (l *LogAuditLogger) LogPasswordReset(ctx context.Context, userID uint, email string, success bool, errMsg string) error {
	eventType := domain.PasswordResetEvent
	if !success {
		eventType = domain.PasswordResetFailureEvent
	}
	event := domain.NewAuditEvent(eventType, userID).WithEmail(email)
	event.Success = success
	event.ErrorMsg = errMsg
	return l.LogEvent(ctx, event)
}
