package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort  uint   `envconfig:"SERVER_PORT" default:"8080"`

	// Marketplace backend this front end consumes. All page data comes from
	// the API; callboard keeps no database of its own.
	APIBaseURL    string `envconfig:"API_BASE_URL"`
	APITimeoutSec uint   `envconfig:"API_TIMEOUT_SEC" default:"30"`

	ReadTimeoutSec  uint `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Optional JWKS endpoint of the auth issuer. When set, session tokens are
	// verified against it; otherwise claims are read without verification and
	// the backend remains the authority.
	JWKSURL string `envconfig:"JWKS_URL"`

	SessionMaxAgeSec int `envconfig:"SESSION_MAX_AGE_SEC" default:"604800"` // 7 days

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Lead simulator feeding the dashboard panel.
	LeadsEnabled     bool `envconfig:"LEADS_ENABLED" default:"true"`
	LeadsIntervalSec uint `envconfig:"LEADS_INTERVAL_SEC" default:"8"`
}
