package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (loan policy, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Borrowing BorrowingConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BorrowingConfig is the circulation policy. Both values must be >= 1.
type BorrowingConfig struct {
	MaxActiveLoansPerMember int `envconfig:"BORROWING_MAX_ACTIVE_LOANS" default:"5"`
	MaxLoanDays             int `envconfig:"BORROWING_MAX_LOAN_DAYS" default:"14"`
}

// AdminConfig describes the admin member seeded at startup.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" default:"admin@library.local"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
	Name     string `envconfig:"ADMIN_NAME" default:"Administrator"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Borrowing.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (b BorrowingConfig) validate() error {
	if b.MaxActiveLoansPerMember < 1 {
		return fmt.Errorf("BORROWING_MAX_ACTIVE_LOANS must be >= 1, got %d", b.MaxActiveLoansPerMember)
	}
	if b.MaxLoanDays < 1 {
		return fmt.Errorf("BORROWING_MAX_LOAN_DAYS must be >= 1, got %d", b.MaxLoanDays)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Borrowing: BorrowingConfig{
			MaxActiveLoansPerMember: 5,
			MaxLoanDays:             14,
		},
		Admin: AdminConfig{
			Email:    "admin@library.local",
			Password: "admin-test-password",
			Name:     "Administrator",
		},
	}
}
