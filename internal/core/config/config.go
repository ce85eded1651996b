package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"portfolio-site/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// StaticDir is the directory holding the HTML shell and its assets.
	StaticDir string `mapstructure:"STATIC_DIR" default:"./public"`

	// Profile locates the portfolio data file.
	Profile ProfileConfig `mapstructure:",squash"`

	// Redis holds the cache connection.
	Redis RedisConfig `mapstructure:",squash"`

	// GitHub holds the profile card upstream settings.
	GitHub GitHubConfig `mapstructure:",squash"`

	// Carousel holds the autoplay settings for page carousels.
	Carousel CarouselConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound proxy.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// ProfileConfig points at the YAML or JSON file with the portfolio content.
type ProfileConfig struct {
	// Path is the file path of the portfolio data.
	Path string `mapstructure:"PROFILE_PATH" required:"true"`
}

// RedisConfig holds the cache connection details.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// GitHubConfig holds the settings for the GitHub profile card.
type GitHubConfig struct {
	// APIURL is the base URL of the GitHub REST API.
	APIURL string `mapstructure:"GITHUB_API_URL" default:"https://api.github.com"`
	// Username is the account shown when no username is requested.
	Username string `mapstructure:"GITHUB_USERNAME"`
	// Token is an optional personal access token to lift rate limits.
	Token string `mapstructure:"GITHUB_TOKEN"`
	// CacheTTLSeconds is how long a fetched card stays cached.
	CacheTTLSeconds int `mapstructure:"GITHUB_CACHE_TTL" default:"600"`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"GITHUB_TIMEOUT" default:"10"`
}

// CacheTTL returns the card cache lifetime.
func (g GitHubConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLSeconds) * time.Second
}

// Timeout returns the upstream request timeout.
func (g GitHubConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// CarouselConfig holds the autoplay settings.
type CarouselConfig struct {
	// IntervalMs is the autoplay rotation period in milliseconds.
	IntervalMs int `mapstructure:"CAROUSEL_INTERVAL_MS" default:"5000"`
	// StickyPause keeps a paused carousel paused across manual navigation.
	StickyPause bool `mapstructure:"CAROUSEL_STICKY_PAUSE" default:"false"`
}

// Interval returns the autoplay period.
func (c CarouselConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// ProxyConfig holds the upstream proxy used for outbound requests.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USER"`
	Password string `mapstructure:"PROXY_PASS"`
}

// Settings converts the config into proxy settings.
func (p ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  p.Enabled,
		Hostname: p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
	}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	bindTags(v, reflect.TypeOf(config))

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validate(reflect.ValueOf(config)); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindTags binds every tagged key to the environment and registers its default.
// Squashed struct fields are walked recursively.
func bindTags(v *viper.Viper, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			bindTags(v, field.Type)
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		v.BindEnv(key)

		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
}

// validate checks that fields marked as required hold non-zero values
// and that the numeric settings are usable.
func validate(val reflect.Value) error {
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validate(val.Field(i)); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}

	switch c := val.Interface().(type) {
	case CarouselConfig:
		if c.IntervalMs <= 0 {
			return fmt.Errorf("invalid configuration: CAROUSEL_INTERVAL_MS must be positive, got %d", c.IntervalMs)
		}
	case GitHubConfig:
		if c.CacheTTLSeconds <= 0 {
			return fmt.Errorf("invalid configuration: GITHUB_CACHE_TTL must be positive, got %d", c.CacheTTLSeconds)
		}
		if c.TimeoutSeconds <= 0 {
			return fmt.Errorf("invalid configuration: GITHUB_TIMEOUT must be positive, got %d", c.TimeoutSeconds)
		}
	}

	return nil
}
