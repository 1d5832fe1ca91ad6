package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account lifecycle events
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	UserDeletedEvent      AuditEventType = "USER_DELETED"

	// Email verification events
	EmailVerifiedEvent            AuditEventType = "EMAIL_VERIFIED"
	EmailVerificationFailureEvent AuditEventType = "EMAIL_VERIFICATION_FAILED"
	OTPRequestEvent               AuditEventType = "OTP_REQUESTED"

	// Password reset events
	PasswordResetEvent        AuditEventType = "PASSWORD_RESET"
	PasswordResetFailureEvent AuditEventType = "PASSWORD_RESET_FAILED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id"`
	Email     string         `json:"email,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}
