package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// EditIntervalPolicy decides how corrections with clockOut < clockIn
	// are handled: "strict" rejects, "lenient" stores with the log flagged.
	EditIntervalPolicy domain.IntervalPolicy

	// Hourly pay rates per role, with a fallback for roles not listed.
	PayRateDefault decimal.Decimal
	PayRates       map[domain.EmployeeRole]decimal.Decimal

	CORSAllowedOrigins []string
	LoginRatePerMinute int64

	// Bootstrap admin created at startup when no account with that
	// username exists. Empty username disables bootstrapping.
	BootstrapAdminUsername string
	BootstrapAdminPassword string
	BootstrapAdminName     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "levant-clock-in")
	viper.SetDefault("EDIT_INTERVAL_POLICY", string(domain.PolicyLenient))
	viper.SetDefault("PAY_RATE_DEFAULT", "12.00")
	viper.SetDefault("PAY_RATES", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_NAME", "Beheerder")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	policy := domain.IntervalPolicy(viper.GetString("EDIT_INTERVAL_POLICY"))
	if !policy.Valid() {
		return nil, fmt.Errorf("invalid EDIT_INTERVAL_POLICY %q: must be %q or %q", policy, domain.PolicyStrict, domain.PolicyLenient)
	}
	cfg.EditIntervalPolicy = policy

	defaultRate, err := decimal.NewFromString(viper.GetString("PAY_RATE_DEFAULT"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAY_RATE_DEFAULT: %w", err)
	}
	cfg.PayRateDefault = defaultRate

	cfg.PayRates, err = parsePayRates(viper.GetString("PAY_RATES"))
	if err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.LoginRatePerMinute = viper.GetInt64("LOGIN_RATE_PER_MINUTE")

	cfg.BootstrapAdminUsername = viper.GetString("BOOTSTRAP_ADMIN_USERNAME")
	cfg.BootstrapAdminPassword = viper.GetString("BOOTSTRAP_ADMIN_PASSWORD")
	cfg.BootstrapAdminName = viper.GetString("BOOTSTRAP_ADMIN_NAME")
	if cfg.BootstrapAdminUsername == "" {
		log.Println("Warning: BOOTSTRAP_ADMIN_USERNAME not set. No admin account will be bootstrapped.")
	}

	return cfg, nil
}

// HourlyRateFor resolves the pay rate for a role, falling back to the default.
func (c *Config) HourlyRateFor(role domain.EmployeeRole) decimal.Decimal {
	if rate, ok := c.PayRates[role]; ok {
		return rate
	}
	return c.PayRateDefault
}

// parsePayRates parses a "role=rate,role=rate" list, e.g.
// "barista=12.50,chef=15.25".
func parsePayRates(raw string) (map[domain.EmployeeRole]decimal.Decimal, error) {
	rates := make(map[domain.EmployeeRole]decimal.Decimal)
	if strings.TrimSpace(raw) == "" {
		return rates, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid PAY_RATES entry %q: expected role=rate", pair)
		}
		role := domain.EmployeeRole(strings.TrimSpace(parts[0]))
		if !role.Valid() {
			return nil, fmt.Errorf("invalid PAY_RATES role %q", parts[0])
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid PAY_RATES rate for role %q: %w", role, err)
		}
		rates[role] = rate
	}
	return rates, nil
}
