package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, retry policy, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	Redis       RedisConfig
	CORS        CORSConfig
	Log         LogConfig
	Cookie      CookieConfig
	Reservation ReservationConfig
	Resume      ResumeConfig
	Assistant   AssistantConfig
	Flow        FlowConfig
	RateLimit   RateLimitConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Curacao"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	IntentTTL       time.Duration `envconfig:"REDIS_INTENT_TTL" default:"24h"`
	InFlightTTL     time.Duration `envconfig:"REDIS_INFLIGHT_TTL" default:"30s"`
	ConversationTTL time.Duration `envconfig:"REDIS_CONVERSATION_TTL" default:"2h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"AST"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure        bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite      string        `envconfig:"COOKIE_SAMESITE" default:"Lax"`
	SessionMaxAge time.Duration `envconfig:"COOKIE_SESSION_MAX_AGE" default:"30m"`
	IntentMaxAge  time.Duration `envconfig:"COOKIE_INTENT_MAX_AGE" default:"24h"`
}

// ReservationConfig points at the external reservation API (api/3.0).
type ReservationConfig struct {
	Host           string        `envconfig:"RESERVATION_HOST" required:"true"`
	APIKey         string        `envconfig:"RESERVATION_API_KEY" required:"true"`
	APISecret      string        `envconfig:"RESERVATION_API_SECRET" required:"true"`
	BaseURL        string        `envconfig:"RESERVATION_BASE_URL" default:""`
	MaxRetries     int           `envconfig:"RESERVATION_MAX_RETRIES" default:"2"`
	DefaultWait    time.Duration `envconfig:"RESERVATION_DEFAULT_RETRY_WAIT" default:"5s"`
	MaxRetryWait   time.Duration `envconfig:"RESERVATION_MAX_RETRY_WAIT" default:"30s"`
	RequestTimeout time.Duration `envconfig:"RESERVATION_REQUEST_TIMEOUT" default:"15s"`
	RatePerSec     float64       `envconfig:"RESERVATION_RATE_PER_SEC" default:"5"`
	Burst          int           `envconfig:"RESERVATION_BURST" default:"5"`
}

type ResumeConfig struct {
	Secret   string `envconfig:"RESUME_SECRET" required:"true"`
	Duration string `envconfig:"RESUME_DURATION" default:"30m"`
	BaseURL  string `envconfig:"RESUME_BASE_URL" default:"http://localhost:3000/cart"`
}

type AssistantConfig struct {
	APIKey     string `envconfig:"ASSISTANT_API_KEY" default:""`
	Model      string `envconfig:"ASSISTANT_MODEL" default:"gemini-1.5-pro"`
	MaxSteps   int    `envconfig:"ASSISTANT_MAX_STEPS" default:"10"`
	MaxHistory int    `envconfig:"ASSISTANT_MAX_HISTORY" default:"40"`
}

// FlowConfig toggles the optional behaviours of the pricing-review step.
type FlowConfig struct {
	ComputeAddOns    bool `envconfig:"FLOW_COMPUTE_ADDONS" default:"true"`
	ShowExistingCart bool `envconfig:"FLOW_SHOW_EXISTING_CART" default:"true"`
	AllowAddAnother  bool `envconfig:"FLOW_ALLOW_ADD_ANOTHER" default:"true"`
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *ReservationConfig) APIBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://" + c.Host + "/api/3.0"
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Redis: RedisConfig{
			Addr:            "localhost:16379",
			IntentTTL:       time.Hour,
			InFlightTTL:     5 * time.Second,
			ConversationTTL: time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			SessionMaxAge: 30 * time.Minute,
			IntentMaxAge:  24 * time.Hour,
		},
		Reservation: ReservationConfig{
			Host:           "example.checkfront.test",
			APIKey:         "key",
			APISecret:      "secret",
			MaxRetries:     2,
			DefaultWait:    10 * time.Millisecond,
			MaxRetryWait:   50 * time.Millisecond,
			RequestTimeout: 2 * time.Second,
			RatePerSec:     1000,
			Burst:          100,
		},
		Resume: ResumeConfig{
			Secret:   "test-resume-secret",
			Duration: "30m",
			BaseURL:  "http://localhost:3000/cart",
		},
		Assistant: AssistantConfig{
			Model:      "gemini-1.5-pro",
			MaxSteps:   10,
			MaxHistory: 40,
		},
		Flow: FlowConfig{
			ComputeAddOns:    true,
			ShowExistingCart: true,
			AllowAddAnother:  true,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 6000,
			Burst:     100,
		},
	}
}
