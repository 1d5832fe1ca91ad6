package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/accountsvc/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Codes are single-use and expire with the key TTL, so a verified account can
// never have a live code and a stale code can never verify.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length int
	TTL    time.Duration
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Generate implements domain.OTPService. A fresh code overwrites any previous
// one and restarts the TTL, which is the resend behavior.
func (s *OTPServiceImpl) Generate(ctx context.Context, userID uint, email string) (string, error) {
	otpKey := s.key(userID)

	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey, code, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	message := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, "Verify your email address", message); err != nil {
		// Clean up so an unsendable code can never be guessed against.
		s.redisClient.Del(ctx, otpKey)
		return "", fmt.Errorf("failed to send OTP email: %w", err)
	}

	return code, nil
}

// Verify implements domain.OTPService. The code is consumed on success so it
// cannot be replayed.
func (s *OTPServiceImpl) Verify(ctx context.Context, userID uint, code string) error {
	otpKey := s.key(userID)

	storedCode, err := s.redisClient.Get(ctx, otpKey).Result()
	if err == redis.Nil {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	if storedCode != code {
		return domain.ErrOTPInvalid
	}

	s.redisClient.Del(ctx, otpKey)
	return nil
}

func (s *OTPServiceImpl) key(userID uint) string {
	return fmt.Sprintf("otp:%d", userID)
}

// generateSecureCode draws a uniform n-digit code with a non-zero leading
// digit, e.g. [100000,999999] for the default length of 6.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	length := s.config.Length
	if length <= 0 {
		length = 6
	}

	low := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(low, big.NewInt(9))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return n.Add(n, low).String(), nil
}
