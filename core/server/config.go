package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables
	// the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowOrigins is a comma-separated list of origins allowed to call
	// the read-only catalogue API from a browser.
	AllowOrigins string `mapstructure:"allow_origins" default:"*"`
}

// Origins returns AllowOrigins split and trimmed.
func (c Config) Origins() []string {
	parts := strings.Split(c.AllowOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
