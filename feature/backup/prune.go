package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Prune removes archives whose entity data equals that of the previous
// archive in chronological order. Daily automated backups come out
// identical when nothing was fetched in between; only one is worth
// keeping. The comparison covers the snapshot and locale contents, not
// archive metadata or embedded timestamps. Returns the removed paths.
func Prune(dir string, log *zap.Logger) ([]string, error) {
	paths, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	var previous *Backup
	for _, path := range paths {
		current, err := Load(path)
		if err != nil {
			// Oldest archives may predate the current layout. Skip
			// them rather than failing the prune.
			log.Warn("skipping unreadable archive", zap.String("path", path), zap.Error(err))
			previous = nil
			continue
		}
		if previous != nil && reflect.DeepEqual(previous, current) {
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("failed to remove duplicate archive %s: %w", path, err)
			}
			log.Info("pruned duplicate archive", zap.String("path", path))
			removed = append(removed, path)
			continue
		}
		previous = current
	}
	return removed, nil
}

// ListArchives returns the archive paths in dir, oldest first. Archive
// names embed their creation time, so lexical order is chronological.
func ListArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tar.gz") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll loads every archive in dir, oldest first.
func LoadAll(dir string) ([]*Backup, error) {
	paths, err := ListArchives(dir)
	if err != nil {
		return nil, err
	}
	backups := make([]*Backup, 0, len(paths))
	for _, path := range paths {
		b, err := Load(path)
		if err != nil {
			return nil, err
		}
		backups = append(backups, b)
	}
	return backups, nil
}
