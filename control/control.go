// Package control renders and writes the Debian control descriptor that
// dpkg-deb reads when building the glamox package.
package control

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/futurehomeno/glamox-config-env/logger"
	"github.com/futurehomeno/glamox-config-env/util"
)

// Path is the control descriptor location relative to the working directory
var Path = filepath.Join("package", "debian", "DEBIAN", "control")

// fixed package identity
const (
	Package     = "glamox"
	Section     = "non-free/misc"
	Priority    = "optional"
	Maintainer  = "Markus Haldorsen <markus@futurehome.no>"
	Description = "Control and monitor glamox WiFi heaters from Futurehome."
)

// Descriptor holds the fields of a control file in the order they are written
type Descriptor struct {
	Package      string
	Version      string
	Section      string
	Priority     string
	Architecture string
	Maintainer   string
	Description  string
}

// New returns the glamox descriptor for the given version and architecture.
// Neither value is validated.
func New(version, arch string) Descriptor {
	return Descriptor{
		Package:      Package,
		Version:      version,
		Section:      Section,
		Priority:     Priority,
		Architecture: arch,
		Maintainer:   Maintainer,
		Description:  Description,
	}
}

// String renders the descriptor, one "Key: value" line per field
func (d Descriptor) String() string {
	var sb strings.Builder

	field := func(key, value string) {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	field("Package", d.Package)
	field("Version", d.Version)
	field("Section", d.Section)
	field("Priority", d.Priority)
	field("Architecture", d.Architecture)
	field("Maintainer", d.Maintainer)
	field("Description", d.Description)

	return sb.String()
}

// Emit replaces the control descriptor under root. The DEBIAN directory must
// already exist.
func Emit(root, version, arch string) error {
	path := filepath.Join(root, Path)

	if err := util.ReplaceFile(path, []byte(New(version, arch).String())); err != nil {
		return fmt.Errorf("write control descriptor: %w", err)
	}

	logger.Infof("Wrote %s (version %s, architecture %s)", path, version, arch)
	return nil
}
