package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
	QueryTimeout    time.Duration `yaml:"QUERY_TIMEOUT" env:"PG_QUERY_TIMEOUT" env-default:"5s"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds checkout attempts per basket.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

const (
	GatewayStripe = "stripe"
	GatewayDummy  = "dummy"
)

type Payment struct {
	Gateway              string `yaml:"GATEWAY" env:"PAYMENT_GATEWAY" env-default:"stripe"`
	StripeAPIKey         string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	StripePublishableKey string `yaml:"STRIPE_PUBLISHABLE_KEY" env:"STRIPE_PUBLISHABLE_KEY" env-default:""`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"shop@example.com"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Storefront"`
}

type Security struct {
	SessionKey        string        `yaml:"SESSION_KEY" env:"SESSION_KEY" env-required:"true"`
	SessionTTL        time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"720h"`
	InsecureCookies   bool          `yaml:"INSECURE_COOKIES" env:"INSECURE_COOKIES" env-default:"false"`
	AdminUser         string        `yaml:"ADMIN_USER" env:"ADMIN_USER" env-default:"admin"`
	AdminPasswordHash string        `yaml:"ADMIN_PASSWORD_HASH" env:"ADMIN_PASSWORD_HASH" env-default:""`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

// ShippingRate is one row of the per deployment shipping table.
type ShippingRate struct {
	CountryCode string `yaml:"country_code"`
	Name        string `yaml:"name"`
	Rate        string `yaml:"rate"`
	Description string `yaml:"description"`
}

// Amount is only safe to call on rates that passed LoadConfigFromPath.
func (r ShippingRate) Amount() decimal.Decimal {
	return decimal.RequireFromString(r.Rate)
}

// Store is the shop wide configuration exposed to clients and used for pricing.
type Store struct {
	Currency               string         `yaml:"currency" env:"STORE_CURRENCY" env-default:"GBP"`
	CurrencyHTMLCode       string         `yaml:"currency_html_code" env:"STORE_CURRENCY_HTML_CODE" env-default:"&pound;"`
	DefaultShippingEnabled bool           `yaml:"default_shipping_enabled" env:"STORE_DEFAULT_SHIPPING_ENABLED" env-default:"false"`
	DefaultShippingRate    string         `yaml:"default_shipping_rate" env:"STORE_DEFAULT_SHIPPING_RATE" env-default:"0"`
	DefaultShippingCarrier string         `yaml:"default_shipping_carrier" env:"STORE_DEFAULT_SHIPPING_CARRIER" env-default:"Default"`
	ShippingRates          []ShippingRate `yaml:"shipping_rates"`
}

type Basket struct {
	StaleAfterDays int           `yaml:"stale_after_days" env:"BASKET_STALE_AFTER_DAYS" env-default:"14"`
	SweepInterval  time.Duration `yaml:"sweep_interval" env:"BASKET_SWEEP_INTERVAL" env-default:"24h"`
}

type Cors struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	LogLevel     string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Payment      Payment      `yaml:"payment"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Security     Security     `yaml:"security"`
	Otel         Otel         `yaml:"otel"`
	Cache        CacheConfig  `yaml:"cache"`
	Store        Store        `yaml:"store"`
	Basket       Basket       `yaml:"basket"`
	Cors         Cors         `yaml:"cors"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if cfg.Payment.Gateway != GatewayStripe && cfg.Payment.Gateway != GatewayDummy {
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.Payment.Gateway)
	}

	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

// DefaultRate is only safe to call on a Store that passed LoadConfigFromPath.
func (s *Store) DefaultRate() decimal.Decimal {
	return decimal.RequireFromString(s.DefaultShippingRate)
}

func (s *Store) validate() error {
	if _, err := decimal.NewFromString(s.DefaultShippingRate); err != nil {
		return fmt.Errorf("invalid default shipping rate %q: %w", s.DefaultShippingRate, err)
	}

	for _, rate := range s.ShippingRates {
		amount, err := decimal.NewFromString(rate.Rate)
		if err != nil {
			return fmt.Errorf("invalid shipping rate for %s/%s: %w", rate.CountryCode, rate.Name, err)
		}
		if amount.IsNegative() {
			return fmt.Errorf("negative shipping rate for %s/%s", rate.CountryCode, rate.Name)
		}
	}

	return nil
}
