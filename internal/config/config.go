package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type ResetConfig struct {
	TokenLength int    `yaml:"token_length"`
	TokenTTL    string `yaml:"token_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Reset    ResetConfig    `yaml:"reset"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	AccessTTL     time.Duration
	OTPTTL        time.Duration
	OTPLength     int
	ResetTokenLen int
	ResetTokenTTL time.Duration
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load builds the configuration from config/config.yml when present, with
// environment variables filling any gaps. A missing config file is not an
// error; the service can run entirely from the environment.
func Load() (*Config, error) {
	var file ConfigFile
	if bytes, err := os.ReadFile("config/config.yml"); err == nil {
		if err := yaml.Unmarshal(bytes, &file); err != nil {
			return nil, fmt.Errorf("could not parse config yaml: %w", err)
		}
	}

	port := env("PORT", "")
	if port == "" {
		if file.App.Port != 0 {
			port = strconv.Itoa(file.App.Port)
		} else {
			port = "3000"
		}
	}

	accessTTL, err := parseDuration(env("JWT_ACCESS_TTL", file.JWT.AccessTTL), time.Hour)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	otpTTL, err := parseDuration(env("OTP_TTL", file.OTP.TTL), 10*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	resetTTL, err := parseDuration(env("RESET_TOKEN_TTL", file.Reset.TokenTTL), 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}

	otpLength := file.OTP.Length
	if otpLength == 0 {
		otpLength = 6
	}
	resetTokenLen := file.Reset.TokenLength
	if resetTokenLen == 0 {
		resetTokenLen = 8
	}

	return &Config{
		Port:          port,
		GinMode:       env("GIN_MODE", file.App.GinMode),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", firstNonEmpty(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),
		JWTSecret:     env("JWT_SECRET", firstNonEmpty(file.JWT.Secret, "secretkey")),
		JWTIssuer:     env("JWT_ISSUER", firstNonEmpty(file.JWT.Issuer, "accountsvc")),
		AccessTTL:     accessTTL,
		OTPTTL:        otpTTL,
		OTPLength:     envInt("OTP_LENGTH", otpLength),
		ResetTokenLen: resetTokenLen,
		ResetTokenTTL: resetTTL,
		SMTPHost:      env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:      env("SMTP_PORT", firstNonEmpty(file.SMTP.Port, "587")),
		SMTPUser:      env("SMTP_USER", file.SMTP.User),
		SMTPPassword:  env("SMTP_PASSWORD", file.SMTP.Password),
		SMTPFrom:      env("SMTP_FROM", file.SMTP.From),
	}, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
