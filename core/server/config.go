package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AdminEnabled exposes the snapshot purge, lookup reload and integrity routes.
	AdminEnabled bool `mapstructure:"admin_enabled" default:"false"`
	// BodyLimitMB caps request bodies. The API is read-only so this stays small.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"1"`
}

// BodyLimit returns the request body limit in bytes, defaulting to 1MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
