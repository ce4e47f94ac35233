package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	Env         string        `env:"APP_ENV" env-default:"development"`
	Port        string        `env:"PORT" env-default:"8080"`
	DatabaseDSN string        `env:"DATABASE_DSN" env-required:"true"`
	JWTSecret   string        `env:"JWT_SECRET" env-default:"change-this-in-production"`
	JWTTTL      time.Duration `env:"JWT_TTL" env-default:"24h"`

	Checkout CheckoutConfig
}

// CheckoutConfig configures the hosted payment-checkout provider.
type CheckoutConfig struct {
	BaseURL    string `env:"CHECKOUT_BASE_URL" env-default:"https://api.checkout.example.com"`
	APIKey     string `env:"CHECKOUT_API_KEY"`
	SuccessURL string `env:"CHECKOUT_SUCCESS_URL" env-default:"http://localhost:8080/payment/success"`
	CancelURL  string `env:"CHECKOUT_CANCEL_URL" env-default:"http://localhost:8080/plans"`
}

// JWTSecret and JWTExpiration are the token-signing settings shared by the
// auth service and middleware. Populated by MustLoad.
var (
	JWTSecret     []byte
	JWTExpiration time.Duration
)

// MustLoad reads configuration from the environment and exits on failure.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	JWTSecret = []byte(cfg.JWTSecret)
	JWTExpiration = cfg.JWTTTL

	return &cfg
}
