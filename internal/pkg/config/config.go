package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, spreadsheet, etc.), security settings
// - default: Values common across all environments (timezone, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Sheets  SheetsConfig
	Booking BookingConfig
	Retry   RetryConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	// Driver selects the record store backend: "sheets" or "memory".
	Driver string `envconfig:"STORE_DRIVER" default:"sheets"`
}

type SheetsConfig struct {
	SpreadsheetID   string  `envconfig:"SHEETS_SPREADSHEET_ID"`
	Worksheet       string  `envconfig:"SHEETS_WORKSHEET" default:"citas"`
	CredentialsFile string  `envconfig:"SHEETS_CREDENTIALS_FILE"`
	CredentialsJSON string  `envconfig:"SHEETS_CREDENTIALS_JSON"`
	RatePerSecond   float64 `envconfig:"SHEETS_RATE_PER_SECOND" default:"1"`
	RateBurst       int     `envconfig:"SHEETS_RATE_BURST" default:"4"`
}

type BookingConfig struct {
	TimeZone     string `envconfig:"BOOKING_TIMEZONE" default:"America/Lima"`
	SlotCapacity int    `envconfig:"BOOKING_SLOT_CAPACITY" default:"4"`
	// Transitions restricts status changes as comma-separated FROM>TO pairs,
	// e.g. "QUEUED>IN_PROGRESS,IN_PROGRESS>SERVED". Empty allows any change.
	Transitions string `envconfig:"BOOKING_TRANSITIONS" default:""`
}

type RetryConfig struct {
	MaxRetries      int           `envconfig:"RETRY_MAX_RETRIES" default:"3"`
	InitialInterval time.Duration `envconfig:"RETRY_INITIAL_INTERVAL" default:"800ms"`
	Multiplier      float64       `envconfig:"RETRY_MULTIPLIER" default:"2.0"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Lima"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	// Secret is the shared panel secret in plain text; SecretHash is its
	// bcrypt hash. Exactly one of the two must be set.
	Secret     string `envconfig:"ADMIN_SECRET"`
	SecretHash string `envconfig:"ADMIN_SECRET_HASH"`
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sheets":
		if c.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("SHEETS_SPREADSHEET_ID is required when STORE_DRIVER=sheets")
		}
		if c.Sheets.CredentialsFile == "" && c.Sheets.CredentialsJSON == "" {
			return fmt.Errorf("one of SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON is required when STORE_DRIVER=sheets")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Admin.Secret == "" && c.Admin.SecretHash == "" {
		return fmt.Errorf("one of ADMIN_SECRET or ADMIN_SECRET_HASH is required")
	}
	if c.Admin.Secret != "" && c.Admin.SecretHash != "" {
		return fmt.Errorf("ADMIN_SECRET and ADMIN_SECRET_HASH are mutually exclusive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Booking: BookingConfig{
			TimeZone:     "America/Lima",
			SlotCapacity: 4,
			Transitions:  "",
		},
		Retry: RetryConfig{
			MaxRetries:      3,
			InitialInterval: time.Millisecond, // Fast retries for tests
			Multiplier:      2.0,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Lima",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Secret: "test-admin-secret",
		},
	}
}
