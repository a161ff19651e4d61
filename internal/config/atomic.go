package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configFileMode is the permission of the written config file.
const configFileMode os.FileMode = 0o600

// writeFileAtomic replaces path with data through a synced temp file in the
// same directory, so a crash never leaves a half-written config behind.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp config: %w", err)
	}
	if err = tmp.Chmod(configFileMode); err != nil {
		return fmt.Errorf("setting config permissions: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp config: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp config: %w", err)
	}

	//nolint:gosec // G703: path comes from the resolved coinaddr home
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
