// Package config provides configuration management for ornasync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, CORS origins)
//   - Database: SQLite report database settings
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Codex: public codex client settings
//   - Guide: admin guide client settings (session cookie, rate limits)
//   - Backup: archive directory, prefix and mirror bucket
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
