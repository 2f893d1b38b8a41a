package database

// Config holds configuration for the report database.
type Config struct {
	// Path is the SQLite database file. The special value ":memory:"
	// opens an in-memory database.
	Path string `mapstructure:"path" default:"ornasync.db"`
	// TimeoutSeconds is the busy timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
