package weather

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// Options configures the weather provider client.
type Options struct {
	// APIKey authenticates against the provider. Also read from the
	// WEATHER_API_KEY environment variable.
	APIKey string `json:"-" mapstructure:"api-key"`

	BaseURL    string        `json:"base-url" mapstructure:"base-url"`
	Timeout    time.Duration `json:"timeout" mapstructure:"timeout"`
	MaxRetries int           `json:"max-retries" mapstructure:"max-retries"`
}

// NewOptions returns weather options with sane defaults.
func NewOptions() *Options {
	return &Options{
		BaseURL:    "https://api.openweathermap.org/data/2.5",
		Timeout:    10 * time.Second,
		MaxRetries: 2,
	}
}

// Complete fills in the API key from the environment when unset.
func (o *Options) Complete() error {
	if o.APIKey == "" {
		o.APIKey = os.Getenv("WEATHER_API_KEY")
	}
	return nil
}

// Validate checks the weather options.
func (o *Options) Validate() error {
	if o.BaseURL == "" {
		return fmt.Errorf("weather base url is required")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("weather timeout must be positive")
	}
	if o.MaxRetries < 0 {
		return fmt.Errorf("weather max retries must not be negative")
	}
	return nil
}

// AddFlags adds weather flags to the given flag set.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.APIKey, "weather.api-key", o.APIKey, "Weather provider API key.")
	fs.StringVar(&o.BaseURL, "weather.base-url", o.BaseURL, "Weather provider base URL.")
	fs.DurationVar(&o.Timeout, "weather.timeout", o.Timeout, "Weather provider request timeout.")
	fs.IntVar(&o.MaxRetries, "weather.max-retries", o.MaxRetries, "Retries for failed weather provider requests.")
}
