package cooperator

import "errors"

var (
	// ErrMissingSiteToken is returned when a template does not contain the {site_no} token.
	ErrMissingSiteToken = errors.New("cooperator template must contain the {site_no} token")
	// ErrInvalidSiteNumber is returned when a site number is empty, non-numeric,
	// or outside the 8-15 digit range used by USGS monitoring sites.
	ErrInvalidSiteNumber = errors.New("site number must be 8 to 15 ASCII digits")
)
