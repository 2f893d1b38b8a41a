package backup

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ornasync/feature/snapshot"
)

// Directory names inside an archive. The snapshot collections sit at
// the archive root, exactly as snapshot.Save lays them out on disk.
const (
	localesDir       = "locales"
	manualLocalesDir = "manual_locales"
)

// Save writes the backup as a timestamped tar.gz archive under dir and
// returns the archive path.
func (b *Backup) Save(dir, prefix string, now time.Time) (string, error) {
	staging, err := os.MkdirTemp("", "ornasync-backup-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := b.Data.Save(staging); err != nil {
		return "", err
	}
	if err := b.Locales.Save(filepath.Join(staging, localesDir)); err != nil {
		return "", err
	}
	if err := b.ManualLocales.Save(filepath.Join(staging, manualLocalesDir)); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, ArchiveName(prefix, now))
	if err := tarDirectory(staging, path); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a backup archive written by Save.
func Load(path string) (*Backup, error) {
	staging, err := os.MkdirTemp("", "ornasync-backup-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := untarDirectory(path, staging); err != nil {
		return nil, err
	}
	data, err := snapshot.Load(staging)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", path, err)
	}
	locales, err := snapshot.LoadLocaleDB(filepath.Join(staging, localesDir))
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", path, err)
	}
	manual, err := snapshot.LoadLocaleDB(filepath.Join(staging, manualLocalesDir))
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", path, err)
	}
	return &Backup{Data: *data, Locales: locales, ManualLocales: manual}, nil
}

func tarDirectory(src, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create archive %s: %w", dest, err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	err = filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(tw, file)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to pack archive %s: %w", dest, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive %s: %w", dest, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finish archive %s: %w", dest, err)
	}
	return nil
}

func untarDirectory(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", src, err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("failed to read archive %s: %w", src, err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read archive %s: %w", src, err)
		}
		name := filepath.Clean(header.Name)
		if strings.HasPrefix(name, "..") || filepath.IsAbs(name) {
			return fmt.Errorf("archive %s contains unsafe path %q", src, header.Name)
		}
		target := filepath.Join(dest, name)
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			file, err := os.Create(target)
			if err != nil {
				return err
			}
			if _, err := io.Copy(file, tr); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
		}
	}
}
