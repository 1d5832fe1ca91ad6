package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmailAndResetToken(ctx context.Context, email, token string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	MarkEmailVerified(ctx context.Context, userID uint) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteByID(ctx context.Context, id uint) error
}

// AccountService defines the account lifecycle business logic
type AccountService interface {
	Signup(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, userID uint, code string) (*User, error)
	ResendOTP(ctx context.Context, userID uint) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, resetToken, newPassword string) error
	ListUsers(ctx context.Context) ([]*User, error)
	GetUserByID(ctx context.Context, id uint) (*User, error)
	UpdateUserByEmail(ctx context.Context, email, name string) (*User, error)
	UpdateUserByID(ctx context.Context, id uint, name, email string) (*User, error)
	DeleteUserByEmail(ctx context.Context, email string) error
	DeleteUserByID(ctx context.Context, id uint) error
}

// OTPService defines email verification code operations
type OTPService interface {
	// Generate creates a fresh single-use code for the user, stores it with a
	// TTL and emails it. The code is returned for audit purposes only; it must
	// never reach an HTTP response body.
	Generate(ctx context.Context, userID uint, email string) (string, error)
	// Verify checks the submitted code against the stored one and consumes it
	// on success.
	Verify(ctx context.Context, userID uint, code string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines bearer token operations
type TokenService interface {
	Generate(userID uint, email string) (token string, expiresIn int64, err error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}

// TokenClaims represents bearer token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuditLogger defines operations for audit logging
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
	LogRegistration(ctx context.Context, userID uint, email string) error
	LogLogin(ctx context.Context, userID uint, email string, success bool, errMsg string) error
	LogEmailVerification(ctx context.Context, userID uint, success bool, errMsg string) error
	LogPasswordReset(ctx context.Context, userID uint, email string, success bool, errMsg string) error
}
