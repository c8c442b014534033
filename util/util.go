package util

import (
	"fmt"
	"io/fs"

	"github.com/google/renameio/v2"
)

// FileMode is the permission given to newly created output files. Files that
// already exist keep their current permissions.
const FileMode fs.FileMode = 0644

// ReplaceFile writes data to path, replacing any existing content in a single
// rename. The parent directory must already exist; it is never created.
func ReplaceFile(path string, data []byte) error {
	pendingFile, err := renameio.NewPendingFile(
		path,
		renameio.WithPermissions(FileMode),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// no-op once committed
	defer pendingFile.Cleanup()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
