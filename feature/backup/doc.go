// Package backup persists point-in-time snapshots as timestamped
// tar.gz archives, merges chronological series of them into a single
// baseline for matching, prunes redundant archives, and mirrors the
// archive directory to object storage.
package backup
