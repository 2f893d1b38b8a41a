// Package refresh re-fetches the full codex and guide collections into
// a fresh snapshot. Fetches run under a small bounded worker pool, or
// strictly one at a time when an inter-request delay is configured to
// respect the remote site's rate limits.
package refresh
