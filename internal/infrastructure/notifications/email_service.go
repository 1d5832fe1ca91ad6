package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/you/accountsvc/domain"
)

// EmailServiceImpl implements domain.NotificationService over SMTP.
type EmailServiceImpl struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

// NewEmailService creates a new email notification service. When no SMTP host
// is configured the service logs messages instead of sending them, which is
// the expected mode in development and tests.
func NewEmailService(host, port, user, password, from string) domain.NotificationService {
	return &EmailServiceImpl{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
	}
}

// SendEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendEmail(to, subject, body string) error {
	if s.host == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		s.from, to, subject, body,
	))

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
