package cooperator

import (
	"net/url"
	"strings"
)

// Parse validates a raw template string and returns it as a Template.
func Parse(raw string) (Template, error) {
	if !strings.Contains(raw, SiteToken) {
		return "", ErrMissingSiteToken
	}
	return Template(raw), nil
}

// Expand replaces every occurrence of the {site_no} token with siteNo and
// leaves all other characters unchanged. No validation or escaping is
// performed; an empty siteNo substitutes the empty string. Callers that need
// a guaranteed well-formed URL should use a Resolver instead.
func (t Template) Expand(siteNo string) string {
	return strings.ReplaceAll(string(t), SiteToken, siteNo)
}

// Validate reports whether the site number is usable in a cooperator URL.
func (s SiteNumber) Validate() error {
	if n := len(s); n < 8 || n > 15 {
		return ErrInvalidSiteNumber
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return ErrInvalidSiteNumber
		}
	}
	return nil
}

type fundingResolver struct {
	template Template
}

// NewResolver creates a Resolver that builds funding URLs from the given template.
func NewResolver(template Template) Resolver {
	return &fundingResolver{template: template}
}

// ResolveFundingURL validates the site number, percent-encodes it, and
// substitutes it into the template.
func (r *fundingResolver) ResolveFundingURL(site SiteNumber) (string, error) {
	if err := site.Validate(); err != nil {
		return "", err
	}
	return r.template.Expand(url.QueryEscape(string(site))), nil
}
