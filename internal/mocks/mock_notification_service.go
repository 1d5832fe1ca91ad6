package mocks

import "sync"

// SentEmail records a single email handed to the mock
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, body string) error

	mu   sync.Mutex
	sent []SentEmail
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail records the email and succeeds unless overridden
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}

// SentEmails returns a copy of everything recorded so far
func (m *MockNotificationService) SentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}
