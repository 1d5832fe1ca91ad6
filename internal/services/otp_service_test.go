package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/mocks"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	t.Cleanup(func() {
		mr.Close()
	})

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func newTestOTPService(client *redis.Client, notifier domain.NotificationService) domain.OTPService {
	if notifier == nil {
		notifier = mocks.NewMockNotificationService()
	}
	return NewOTPService(notifier, client, OTPConfig{Length: 6, TTL: 10 * time.Minute})
}

func TestOTPServiceImpl_GenerateStoresSingleUseCode(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc := newTestOTPService(client, nil)
	ctx := context.Background()

	code, err := svc.Generate(ctx, 1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(code) != 6 {
		t.Errorf("expected a 6-digit code, got %q", code)
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		t.Fatalf("code is not numeric: %q", code)
	}
	if n < 100000 || n > 999999 {
		t.Errorf("code %d outside [100000,999999]", n)
	}

	stored, err := mr.Get("otp:1")
	if err != nil {
		t.Fatalf("expected code stored in redis: %v", err)
	}
	if stored != code {
		t.Errorf("stored code %q does not match returned code %q", stored, code)
	}
	if mr.TTL("otp:1") <= 0 {
		t.Error("expected a TTL on the OTP key")
	}
}

func TestOTPServiceImpl_GenerateRange(t *testing.T) {
	_, client := setupTestRedis(t)
	svc := newTestOTPService(client, nil)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		code, err := svc.Generate(ctx, 1, "a@x.com")
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		n, err := strconv.Atoi(code)
		if err != nil || n < 100000 || n > 999999 {
			t.Fatalf("code %q outside contract range", code)
		}
	}
}

func TestOTPServiceImpl_GenerateSendsEmail(t *testing.T) {
	_, client := setupTestRedis(t)
	notifier := mocks.NewMockNotificationService()
	svc := newTestOTPService(client, notifier)

	code, err := svc.Generate(context.Background(), 7, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	sent := notifier.SentEmails()
	if len(sent) != 1 {
		t.Fatalf("expected exactly one email, got %d", len(sent))
	}
	if sent[0].To != "a@x.com" {
		t.Errorf("expected email to a@x.com, got %s", sent[0].To)
	}
	if !strings.Contains(sent[0].Body, code) {
		t.Error("expected email body to carry the code")
	}
}

func TestOTPServiceImpl_GenerateCleansUpOnSendFailure(t *testing.T) {
	mr, client := setupTestRedis(t)
	notifier := mocks.NewMockNotificationService()
	notifier.SendEmailFunc = func(to, subject, body string) error {
		return errors.New("smtp down")
	}
	svc := newTestOTPService(client, notifier)

	if _, err := svc.Generate(context.Background(), 9, "a@x.com"); err == nil {
		t.Fatal("expected failure when the email cannot be sent")
	}
	if mr.Exists("otp:9") {
		t.Error("expected the code to be removed after a failed send")
	}
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc := newTestOTPService(client, nil)
	ctx := context.Background()

	code, err := svc.Generate(ctx, 2, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if err := svc.Verify(ctx, 2, "000000"); !errors.Is(err, domain.ErrOTPInvalid) {
		t.Errorf("wrong code: expected ErrOTPInvalid, got %v", err)
	}

	// A mismatch must not consume the code.
	if err := svc.Verify(ctx, 2, code); err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if mr.Exists("otp:2") {
		t.Error("expected the code to be consumed on success")
	}

	// Single use: a second verify with the same code fails.
	if err := svc.Verify(ctx, 2, code); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("replay: expected ErrOTPNotFound, got %v", err)
	}
}

func TestOTPServiceImpl_VerifyExpired(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc := newTestOTPService(client, nil)
	ctx := context.Background()

	code, err := svc.Generate(ctx, 3, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	if err := svc.Verify(ctx, 3, code); !errors.Is(err, domain.ErrOTPNotFound) {
		t.Errorf("expired code: expected ErrOTPNotFound, got %v", err)
	}
}

func TestOTPServiceImpl_ResendOverwrites(t *testing.T) {
	mr, client := setupTestRedis(t)
	svc := newTestOTPService(client, nil)
	ctx := context.Background()

	first, err := svc.Generate(ctx, 4, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := svc.Generate(ctx, 4, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	stored, _ := mr.Get("otp:4")
	if stored != second {
		t.Errorf("expected the fresh code %q to be live, found %q", second, stored)
	}
	if first != second {
		if err := svc.Verify(ctx, 4, first); !errors.Is(err, domain.ErrOTPInvalid) {
			t.Errorf("stale code: expected ErrOTPInvalid, got %v", err)
		}
	}
}
