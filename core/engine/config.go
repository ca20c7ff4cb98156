package engine

// Config holds the catalog section of the configuration.
type Config struct {
	// SchemaVersion is embedded in snapshot keys. Bump it when the rendered
	// record shape changes.
	SchemaVersion int `mapstructure:"schema_version" default:"1"`
	// MaxConcurrentScans bounds concurrent storage scans of paginated catalogs.
	MaxConcurrentScans int `mapstructure:"max_concurrent_scans" default:"4"`
	// WatermarkConcurrency bounds concurrent watermark probes.
	WatermarkConcurrency int `mapstructure:"watermark_concurrency" default:"8"`
}
