package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"vectra-e2e/extract"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. VECTRA_BASE_URL.
const EnvPrefix = "VECTRA"

type Config struct {
	BaseURL string `envconfig:"BASE_URL"`
	// CustomerServicePhone is the number the contact page must show.
	CustomerServicePhone string `envconfig:"CUSTOMER_SERVICE_PHONE" required:"true"`

	Headless     bool          `envconfig:"HEADLESS"`
	SlowMo       time.Duration `envconfig:"SLOW_MO"`
	WindowWidth  int           `envconfig:"WINDOW_WIDTH"`
	WindowHeight int           `envconfig:"WINDOW_HEIGHT"`
	ChromePath   string        `envconfig:"CHROME_PATH"`
	NoColor      bool          `envconfig:"NO_COLOR"`

	NavigationTimeout time.Duration `envconfig:"NAVIGATION_TIMEOUT"`
	ElementTimeout    time.Duration `envconfig:"ELEMENT_TIMEOUT"`
	CookieTimeout     time.Duration `envconfig:"COOKIE_TIMEOUT"`
	ContactURLTimeout time.Duration `envconfig:"CONTACT_URL_TIMEOUT"`
	StepTimeout       time.Duration `envconfig:"STEP_TIMEOUT"`

	// Retries is the number of extra attempts per scenario step.
	Retries      int           `envconfig:"RETRIES"`
	RetryBackoff time.Duration `envconfig:"RETRY_BACKOFF"`

	SnapshotDir string `envconfig:"SNAPSHOT_DIR"`
	CSVPath     string `envconfig:"CSV_PATH"`

	DBEnabled  bool   `envconfig:"DB_ENABLED"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSSLMode  string `envconfig:"DB_SSLMODE"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://www.vectra.pl",
		Headless:          true,
		SlowMo:            0,
		WindowWidth:       1920,
		WindowHeight:      1080,
		NavigationTimeout: 30 * time.Second,
		ElementTimeout:    10 * time.Second,
		CookieTimeout:     5 * time.Second,
		ContactURLTimeout: 30 * time.Second,
		StepTimeout:       60 * time.Second,
		Retries:           0,
		RetryBackoff:      2 * time.Second,
		SnapshotDir:       "snapshots",
		CSVPath:           "output/steps.csv",
		DBEnabled:         false,
		DBHost:            "localhost",
		DBPort:            5433,
		DBUser:            "postgres",
		DBPassword:        "postgres",
		DBName:            "vectra_e2e",
		DBSSLMode:         "disable",
	}
}

// Load starts from DefaultConfig and overlays a .env file (when present) and
// VECTRA_* environment variables. Unset variables keep their defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("Warning: .env file found but could not be loaded: %v", err)
		}
	}

	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields a run cannot start without and normalizes the
// expected phone number to its 9-digit form.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("base url %q must be an absolute http(s) url", c.BaseURL))
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if phone, ok := extract.NormalizePhoneNumber(c.CustomerServicePhone); ok {
		c.CustomerServicePhone = phone
	} else {
		errs = append(errs, fmt.Errorf("customer service phone %q is not a 9-digit number", c.CustomerServicePhone))
	}

	if c.NavigationTimeout <= 0 || c.ElementTimeout <= 0 || c.ContactURLTimeout <= 0 {
		errs = append(errs, errors.New("timeouts must be positive"))
	}
	if c.Retries < 0 {
		errs = append(errs, fmt.Errorf("retries must not be negative, got %d", c.Retries))
	}

	return errors.Join(errs...)
}

// ContactURL is the address of the contact page under BaseURL.
func (c *Config) ContactURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/kontakt"
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}
