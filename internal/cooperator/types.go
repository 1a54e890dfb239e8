package cooperator

// SiteToken is the substitution point embedded in cooperator URL templates.
// Consumers performing interpolation depend on this exact spelling.
const SiteToken = "{site_no}"

// Template is a cooperator service URL containing at least one SiteToken.
type Template string

// SiteNumber identifies a USGS monitoring site. Real site numbers are
// 8 to 15 ASCII digits.
type SiteNumber string

// Resolver describes the behaviour required from a cooperator URL builder.
type Resolver interface {
	ResolveFundingURL(site SiteNumber) (string, error)
}
