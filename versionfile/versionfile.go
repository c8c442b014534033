package versionfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/futurehomeno/glamox-config-env/logger"
	"github.com/futurehomeno/glamox-config-env/util"
)

// Path is the version marker location relative to the working directory
const Path = "VERSION"

// Emit replaces the version marker under root with version, byte for byte
func Emit(root, version string) error {
	path := filepath.Join(root, Path)

	if err := util.ReplaceFile(path, []byte(version)); err != nil {
		return fmt.Errorf("write version file: %w", err)
	}

	logger.Infof("Wrote %s (version %s)", path, version)
	return nil
}

// Read returns the raw content of the version marker under root
func Read(root string) (string, error) {
	b, err := os.ReadFile(filepath.Join(root, Path))
	if err != nil {
		return "", fmt.Errorf("read version file: %w", err)
	}
	return string(b), nil
}
