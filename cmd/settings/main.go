package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/waterdataui/appconfig/internal/config"
	"github.com/waterdataui/appconfig/internal/cooperator"
	"github.com/waterdataui/appconfig/internal/logging"
	"github.com/waterdataui/appconfig/internal/settings"
)

func main() {
	kingpinApp := kingpin.New("waterdata-settings", "Water Data Settings - resolves and prints the effective application configuration")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	debugFlag := kingpinApp.Flag("debug", "Enable debug logging and verbose behaviour").Bool()
	serviceRoot := kingpinApp.Flag("service-root", "Base URL of the upstream water-data service").String()
	cooperatorPattern := kingpinApp.Flag("cooperator-pattern", "Cooperator funding URL template containing {site_no}").String()
	siteNo := kingpinApp.Flag("site-no", "Also resolve the cooperator funding URL for this site number").String()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *debugFlag {
		overrides.Debug = debugFlag
	}

	if *serviceRoot != "" {
		overrides.ServiceRoot = serviceRoot
	}

	if *cooperatorPattern != "" {
		overrides.CooperatorPattern = cooperatorPattern
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, *siteNo, os.Stdout, logger); err != nil {
		logger.Fatal("failed to resolve settings", zap.Error(err))
	}
}

// effectiveSettings is the YAML view printed to stdout.
type effectiveSettings struct {
	Debug                    bool               `yaml:"debug"`
	ServiceRoot              string             `yaml:"service_root"`
	CooperatorServicePattern string             `yaml:"cooperator_service_pattern"`
	CooperatorRateLimit      effectiveRateLimit `yaml:"cooperator_rate_limit"`
}

type effectiveRateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// run builds the settings facade, prints the effective configuration, and
// optionally resolves a cooperator funding URL for the given site number.
func run(cfg config.Config, siteNo string, out io.Writer, logger *zap.Logger) error {
	resolved, err := settings.New(cfg)
	if err != nil {
		return fmt.Errorf("build settings: %w", err)
	}

	logger.Info("settings resolved",
		zap.Bool("debug", resolved.DebugEnabled()),
		zap.String("service_root", resolved.ServiceRoot()),
	)

	view := effectiveSettings{
		Debug:                    cfg.Debug,
		ServiceRoot:              cfg.ServiceRoot,
		CooperatorServicePattern: cfg.CooperatorServicePattern,
		CooperatorRateLimit: effectiveRateLimit{
			RPS:   cfg.CooperatorRateLimitRPS,
			Burst: cfg.CooperatorRateLimitBurst,
		},
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	if siteNo == "" {
		return nil
	}

	fundingURL, err := resolved.ResolveFundingURL(cooperator.SiteNumber(siteNo))
	if err != nil {
		return fmt.Errorf("resolve funding URL for site %q: %w", siteNo, err)
	}

	if _, err := fmt.Fprintf(out, "cooperator_funding_url: %s\n", fundingURL); err != nil {
		return fmt.Errorf("write funding URL: %w", err)
	}

	return nil
}
