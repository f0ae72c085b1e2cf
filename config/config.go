package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Study Platform Calendar specifics
	Firestore FirestoreConfig
	Auth      AuthConfig
	Calendar  CalendarConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type CalendarConfig struct {
	EventQuota   int
	UpcomingDays int
}

type RateLimitConfig struct {
	WritesPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Firestore
	cfg.Firestore.ProjectID = viper.GetString("firestore.project_id")
	cfg.Firestore.CredentialsFile = viper.GetString("firestore.credentials_file")
	if projectID := viper.GetString("firestore_project_id"); projectID != "" {
		cfg.Firestore.ProjectID = projectID
	}
	if creds := viper.GetString("google_application_credentials"); creds != "" {
		cfg.Firestore.CredentialsFile = creds
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")

	// Calendar
	cfg.Calendar.EventQuota = viper.GetInt("calendar.event_quota")
	cfg.Calendar.UpcomingDays = viper.GetInt("calendar.upcoming_days")

	// Rate limiting
	cfg.RateLimit.WritesPerMin = viper.GetInt("rate_limit.writes_per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Firestore.ProjectID == "" {
		return fmt.Errorf("firestore.project_id is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Calendar.EventQuota <= 0 {
		return fmt.Errorf("calendar.event_quota must be positive")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("calendar.event_quota", 200)
	viper.SetDefault("calendar.upcoming_days", 7)
	viper.SetDefault("rate_limit.writes_per_min", 60)
}
