package settings

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/waterdataui/appconfig/internal/config"
	"github.com/waterdataui/appconfig/internal/cooperator"
)

// Settings is the immutable view of the application configuration handed to
// consuming components. All fields are fixed at construction; concurrent
// reads need no locking.
type Settings struct {
	debug       bool
	serviceRoot string
	template    cooperator.Template
	resolver    cooperator.Resolver
	limiter     *rate.Limiter
}

// New builds the settings facade from a loaded configuration.
func New(cfg config.Config) (*Settings, error) {
	template, err := cooperator.Parse(cfg.CooperatorServicePattern)
	if err != nil {
		return nil, fmt.Errorf("parse cooperator pattern: %w", err)
	}

	return &Settings{
		debug:       cfg.Debug,
		serviceRoot: cfg.ServiceRoot,
		template:    template,
		resolver:    cooperator.NewResolver(template),
		limiter:     cfg.CooperatorLimiter(),
	}, nil
}

// DebugEnabled reports whether verbose debug behaviour is enabled.
func (s *Settings) DebugEnabled() bool {
	return s.debug
}

// ServiceRoot returns the base URL of the upstream water-data service.
func (s *Settings) ServiceRoot() string {
	return s.serviceRoot
}

// CooperatorServiceURL substitutes siteNo into the cooperator template and
// returns the resulting URL. The substitution is literal: no validation or
// escaping is applied, matching what the service expects for plain numeric
// site numbers.
func (s *Settings) CooperatorServiceURL(siteNo string) string {
	return s.template.Expand(siteNo)
}

// ResolveFundingURL builds a cooperator funding URL from a validated,
// percent-encoded site number. Returns cooperator.ErrInvalidSiteNumber when
// the site number is not usable.
func (s *Settings) ResolveFundingURL(site cooperator.SiteNumber) (string, error) {
	return s.resolver.ResolveFundingURL(site)
}

// CooperatorLimiter returns the shared request-budget limiter for callers of
// the cooperator service.
func (s *Settings) CooperatorLimiter() *rate.Limiter {
	return s.limiter
}
