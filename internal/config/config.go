package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/waterdataui/appconfig/internal/cooperator"
)

const (
	defaultServiceRoot = "https://cida.usgs.gov"

	// URL pattern for retrieving SIFTA cooperator funding data. The previous
	// endpoint is retired but kept here for reference:
	//   https://water.usgs.gov/customer/stories/{site_no}/approved.json
	defaultCooperatorServicePattern = "https://sifta.water.usgs.gov/Services/REST/Site/CustomerFunding.ashx?SiteNumber={site_no}&StartDate=10/1/2016&EndDate=09/30/2017"

	defaultCooperatorRateLimitRPS   = 25.0
	defaultCooperatorRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	Debug                    bool    `yaml:"debug"`
	ServiceRoot              string  `yaml:"service_root"`
	CooperatorServicePattern string  `yaml:"cooperator_service_pattern"`
	CooperatorRateLimitRPS   float64 `yaml:"-"`
	CooperatorRateLimitBurst int     `yaml:"-"`
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Debug                    *bool         `yaml:"debug"`
	ServiceRoot              string        `yaml:"service_root"`
	CooperatorServicePattern string        `yaml:"cooperator_service_pattern"`
	CooperatorRateLimit      yamlRateLimit `yaml:"cooperator_rate_limit"`
}

// yamlRateLimit represents the cooperator rate limit section in YAML.
type yamlRateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile        string
	Debug             *bool
	ServiceRoot       *string
	CooperatorPattern *string
	RateLimitRPS      *float64
	RateLimitBurst    *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Debug:                    false,
		ServiceRoot:              defaultServiceRoot,
		CooperatorServicePattern: defaultCooperatorServicePattern,
		CooperatorRateLimitRPS:   defaultCooperatorRateLimitRPS,
		CooperatorRateLimitBurst: defaultCooperatorRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Debug != nil {
		cfg.Debug = *yamlCfg.Debug
	}

	if yamlCfg.ServiceRoot != "" {
		cfg.ServiceRoot = yamlCfg.ServiceRoot
	}

	if yamlCfg.CooperatorServicePattern != "" {
		cfg.CooperatorServicePattern = yamlCfg.CooperatorServicePattern
	}

	if yamlCfg.CooperatorRateLimit.RPS > 0 {
		cfg.CooperatorRateLimitRPS = yamlCfg.CooperatorRateLimit.RPS
	}

	if yamlCfg.CooperatorRateLimit.Burst > 0 {
		cfg.CooperatorRateLimitBurst = yamlCfg.CooperatorRateLimit.Burst
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if debug := strings.TrimSpace(os.Getenv("DEBUG")); debug != "" {
		if value, err := strconv.ParseBool(debug); err == nil {
			cfg.Debug = value
		}
	}

	if root := strings.TrimSpace(os.Getenv("SERVICE_ROOT")); root != "" {
		cfg.ServiceRoot = root
	}

	if pattern := strings.TrimSpace(os.Getenv("COOPERATOR_SERVICE_PATTERN")); pattern != "" {
		cfg.CooperatorServicePattern = pattern
	}

	if rps := strings.TrimSpace(os.Getenv("COOPERATOR_RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.CooperatorRateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("COOPERATOR_RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.CooperatorRateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Debug != nil {
		cfg.Debug = *overrides.Debug
	}

	if overrides.ServiceRoot != nil && *overrides.ServiceRoot != "" {
		cfg.ServiceRoot = *overrides.ServiceRoot
	}

	if overrides.CooperatorPattern != nil && *overrides.CooperatorPattern != "" {
		cfg.CooperatorServicePattern = *overrides.CooperatorPattern
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.CooperatorRateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.CooperatorRateLimitBurst = *overrides.RateLimitBurst
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if err := validateServiceRoot(cfg.ServiceRoot); err != nil {
		return err
	}
	if _, err := cooperator.Parse(cfg.CooperatorServicePattern); err != nil {
		return fmt.Errorf("COOPERATOR_SERVICE_PATTERN: %w", err)
	}
	if cfg.CooperatorRateLimitRPS < 0 {
		return fmt.Errorf("COOPERATOR_RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.CooperatorRateLimitBurst < 0 {
		return fmt.Errorf("COOPERATOR_RATE_LIMIT_BURST must be >= 0")
	}
	return nil
}

// validateServiceRoot checks that the service root is a bare absolute
// http(s) URL: scheme and host only, no path, no trailing slash.
func validateServiceRoot(root string) error {
	parsed, err := url.Parse(root)
	if err != nil {
		return fmt.Errorf("SERVICE_ROOT is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("SERVICE_ROOT must use http or https, got %q", root)
	}
	if parsed.Host == "" {
		return fmt.Errorf("SERVICE_ROOT is missing a host: %q", root)
	}
	if parsed.Path != "" || parsed.RawQuery != "" || parsed.Fragment != "" || strings.HasSuffix(root, "/") {
		return fmt.Errorf("SERVICE_ROOT must be a bare base URL without path or trailing slash, got %q", root)
	}
	return nil
}
