// Command config_env writes the Debian control descriptor and the VERSION
// file for a glamox package build.
//
// Usage:
//
//	config_env <environment> <version> <architecture>
//
// Both files are written relative to the working directory. The environment
// argument is accepted for compatibility with existing pipelines and is
// otherwise ignored.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/futurehomeno/glamox-config-env/config"
	"github.com/futurehomeno/glamox-config-env/control"
	"github.com/futurehomeno/glamox-config-env/logger"
	"github.com/futurehomeno/glamox-config-env/versionfile"
	"github.com/futurehomeno/glamox-config-env/versioninfo"
)

// ErrNotEnoughArgs is returned when fewer than three positional arguments are
// given
var ErrNotEnoughArgs = errors.New("not enough arguments")

func main() {
	// console only until the config has been read
	logger.Init(logger.Options{Level: zapcore.InfoLevel})

	if err := run(os.Args[1:], "."); err != nil {
		logger.Fatalf("%v", err)
	}

	logger.Close()
}

// run emits both files under root. Arguments are checked before anything is
// written.
func run(args []string, root string) error {
	if len(args) < 3 {
		return fmt.Errorf(
			"%w: got %d, expected environment, version and architecture",
			ErrNotEnoughArgs,
			len(args),
		)
	}
	environment, version, arch := args[0], args[1], args[2]

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	opts := cfg.LoggerOptions()
	if opts.Filename != "" && !filepath.IsAbs(opts.Filename) {
		opts.Filename = filepath.Join(root, opts.Filename)
	}
	logger.Init(opts)

	logger.Debugf("Using config_env %s", versioninfo.String())
	logger.Debugf("Environment %q is not used", environment)

	if err := control.Emit(root, version, arch); err != nil {
		return err
	}

	return versionfile.Emit(root, version)
}
