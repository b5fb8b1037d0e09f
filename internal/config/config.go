package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Fees    FeesConfig    `yaml:"fees" mapstructure:"fees"`
	Pricing PricingConfig `yaml:"pricing" mapstructure:"pricing"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the analytics database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`             // "sqlite" or "postgres"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"` // DSN or file path
}

// FeesConfig configures the fee table sources and snapshot cache.
type FeesConfig struct {
	TablesPath   string `yaml:"tables_path" mapstructure:"tables_path"`   // optional YAML override
	FormsPath    string `yaml:"forms_path" mapstructure:"forms_path"`     // optional YAML override
	HistoryPath  string `yaml:"history_path" mapstructure:"history_path"` // scrape history JSON, may be absent
	CacheTTLSecs int    `yaml:"cache_ttl_secs" mapstructure:"cache_ttl_secs"`
}

// CacheTTL returns the snapshot TTL as a duration.
func (f FeesConfig) CacheTTL() time.Duration {
	return time.Duration(f.CacheTTLSecs) * time.Second
}

// PricingConfig holds the comparison baseline and benchmark heuristics.
type PricingConfig struct {
	ReferenceProjectValue float64 `yaml:"reference_project_value" mapstructure:"reference_project_value"`
	UnlicensedMultiplier  float64 `yaml:"unlicensed_multiplier" mapstructure:"unlicensed_multiplier"`
	ExpediterMultiplier   float64 `yaml:"expediter_multiplier" mapstructure:"expediter_multiplier"`
	ExpediterBase         float64 `yaml:"expediter_base" mapstructure:"expediter_base"`
}

// ReportConfig configures bulk report generation.
type ReportConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port     int    `yaml:"port" mapstructure:"port"`
	AdminKey string `yaml:"admin_key" mapstructure:"admin_key"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("PERMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "permit.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("fees.history_path", "scrape_history.json")
	v.SetDefault("fees.cache_ttl_secs", 60)
	v.SetDefault("pricing.reference_project_value", 5000)
	v.SetDefault("pricing.unlicensed_multiplier", 0.5)
	v.SetDefault("pricing.expediter_multiplier", 2.5)
	v.SetDefault("pricing.expediter_base", 500)
	v.SetDefault("report.max_concurrent", 5)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the fields a given mode depends on. CLI commands use
// "cli"; the API server uses "serve".
func (c *Config) Validate(mode string) error {
	var errs []string

	if c.Store.Driver != "sqlite" && c.Store.Driver != "postgres" {
		errs = append(errs, "store.driver must be sqlite or postgres")
	}
	if c.Store.DatabaseURL == "" {
		errs = append(errs, "store.database_url is required")
	}
	if c.Fees.CacheTTLSecs <= 0 {
		errs = append(errs, "fees.cache_ttl_secs must be > 0")
	}
	if c.Report.MaxConcurrent < 1 || c.Report.MaxConcurrent > 50 {
		errs = append(errs, "report.max_concurrent must be between 1 and 50")
	}

	switch mode {
	case "cli":
	case "serve":
		if c.Server.Port <= 0 {
			errs = append(errs, "server.port must be > 0")
		}
	default:
		errs = append(errs, "unknown mode: "+mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
