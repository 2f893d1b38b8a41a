// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines
// the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key, and the
// origins allowed to call the catalogue API cross-site.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to wire middleware.
package server
