package snapshot

const (
	DriverS3     = "s3"
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverNone   = "none"
)

// Config holds configuration for the snapshot cache.
type Config struct {
	// Driver selects the backend (s3, file, memory, none).
	Driver string `mapstructure:"driver" default:"file"`
	// Prefix is the first segment of every key.
	Prefix string `mapstructure:"prefix" default:"catalogs"`
	// Dir is the root directory of the file driver.
	Dir string `mapstructure:"dir" default:"data/snapshots"`
}
