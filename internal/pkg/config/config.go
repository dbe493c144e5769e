package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Order   OrderConfig
	Payment PaymentConfig
	Notify  NotifyConfig
	Sweeper SweeperConfig
	Redis   RedisConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	User         string `envconfig:"DB_USER" required:"true"`
	Password     string `envconfig:"DB_PASSWORD" required:"true"`
	DBName       string `envconfig:"DB_NAME" required:"true"`
	SSLMode      string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone     string `envconfig:"DB_TIMEZONE" default:"Asia/Bangkok"`
	MaxConns     int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate  bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	TxMaxRetries int    `envconfig:"DB_TX_MAX_RETRIES" default:"1"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Bangkok"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// JWTConfig holds the shared secret of the identity provider. Tokens are
// issued elsewhere; this service only validates them.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:""`
}

type OrderConfig struct {
	HoldWindow         time.Duration `envconfig:"ORDER_HOLD_WINDOW" default:"15m"`
	AmountEpsilon      string        `envconfig:"ORDER_AMOUNT_EPSILON" default:"0.01"`
	TransferFeeCents   int64         `envconfig:"ORDER_TRANSFER_FEE_CENTS" default:"0"`
	MaxQuantityPerLine int           `envconfig:"ORDER_MAX_QUANTITY_PER_LINE" default:"20"`
}

type PaymentConfig struct {
	PromptPayID     string        `envconfig:"PAYMENT_PROMPTPAY_ID" default:""`
	VerifierMode    string        `envconfig:"PAYMENT_VERIFIER_MODE" default:"http"`
	VerifierURL     string        `envconfig:"PAYMENT_VERIFIER_URL" default:""`
	VerifierAPIKey  string        `envconfig:"PAYMENT_VERIFIER_API_KEY" default:""`
	VerifierTimeout time.Duration `envconfig:"PAYMENT_VERIFIER_TIMEOUT" default:"10s"`
}

type NotifyConfig struct {
	PushURL          string        `envconfig:"NOTIFY_PUSH_URL" default:""`
	PushToken        string        `envconfig:"NOTIFY_PUSH_TOKEN" default:""`
	PushTimeout      time.Duration `envconfig:"NOTIFY_PUSH_TIMEOUT" default:"5s"`
	KafkaBrokers     []string      `envconfig:"NOTIFY_KAFKA_BROKERS" default:""`
	KafkaTopic       string        `envconfig:"NOTIFY_KAFKA_TOPIC" default:"booking.order-events"`
	DispatchInterval time.Duration `envconfig:"NOTIFY_DISPATCH_INTERVAL" default:"2s"`
	BatchSize        int32         `envconfig:"NOTIFY_BATCH_SIZE" default:"50"`
	MaxAttempts      int32         `envconfig:"NOTIFY_MAX_ATTEMPTS" default:"5"`
}

type SweeperConfig struct {
	Interval       time.Duration `envconfig:"SWEEPER_INTERVAL" default:"1m"`
	ReconcileEvery int           `envconfig:"SWEEPER_RECONCILE_EVERY" default:"60"`
	Enabled        bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
}

type RedisConfig struct {
	Addr          string        `envconfig:"REDIS_ADDR" default:""`
	Password      string        `envconfig:"REDIS_PASSWORD" default:""`
	DB            int           `envconfig:"REDIS_DB" default:"0"`
	HoldRateLimit int           `envconfig:"HOLD_RATE_LIMIT" default:"10"`
	HoldRateWin   time.Duration `envconfig:"HOLD_RATE_WINDOW" default:"1m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
			Host:         "localhost",
			Port:         "15433", // Test DB port
			User:         "test",
			Password:     "test",
			DBName:       "test_db",
			SSLMode:      "disable",
			TimeZone:     "Asia/Bangkok",
			MaxConns:     40,
			AutoMigrate:  true,
			TxMaxRetries: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-booking-core",
		},
		Order: OrderConfig{
			HoldWindow:         15 * time.Minute,
			AmountEpsilon:      "0.01",
			MaxQuantityPerLine: 20,
		},
		Payment: PaymentConfig{
			PromptPayID:     "0812345678",
			VerifierMode:    "accept",
			VerifierTimeout: 2 * time.Second,
		},
		Notify: NotifyConfig{
			DispatchInterval: time.Second,
			BatchSize:        10,
			MaxAttempts:      3,
		},
		Sweeper: SweeperConfig{
			Interval:       time.Minute,
			ReconcileEvery: 10,
		},
	}
}
