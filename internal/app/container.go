package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/accountsvc/domain"
	"github.com/you/accountsvc/internal/config"
	"github.com/you/accountsvc/internal/infrastructure/audit"
	"github.com/you/accountsvc/internal/infrastructure/auth"
	"github.com/you/accountsvc/internal/infrastructure/database"
	"github.com/you/accountsvc/internal/infrastructure/notifications"
	"github.com/you/accountsvc/internal/infrastructure/repositories"
	"github.com/you/accountsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo domain.UserRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AuditLog        domain.AuditLogger
	OTPSvc          domain.OTPService
	AccountSvc      domain.AccountService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.NotificationSvc = notifications.NewEmailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUser,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)
	c.AuditLog = audit.NewLogAuditLogger()

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, services.OTPConfig{
		Length: c.Config.OTPLength,
		TTL:    c.Config.OTPTTL,
	})

	c.AccountSvc = services.NewAccountService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.NotificationSvc,
		c.AuditLog,
		c.Config.ResetTokenLen,
		c.Config.ResetTokenTTL,
	)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
