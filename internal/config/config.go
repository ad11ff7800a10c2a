// Package config resolves the root directory of each package manager from
// the environment, falling back to the managers' default locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/spf13/viper"
)

// Environment variables overriding the package manager roots
const (
	EnvNvmDir   = "NVM_DIR"
	EnvPnpmHome = "PNPM_HOME"
	EnvYarnHome = "YARN_HOME"
)

const (
	keyNvmDir   = "nvm_dir"
	keyPnpmHome = "pnpm_home"
	keyYarnHome = "yarn_home"
)

// LoadOptions controls path resolution
type LoadOptions struct {
	// HomeDir overrides the user's home directory; os.UserHomeDir is used when empty
	HomeDir string

	// Lookup overrides environment lookups; os.LookupEnv is used when nil
	Lookup func(key string) (string, bool)
}

// ResolvePaths returns the nvm, pnpm and yarn roots. It fails only when a
// root has no override and the home directory cannot be determined.
func ResolvePaths(opts LoadOptions) (models.Paths, error) {
	v := viper.New()

	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for key, env := range map[string]string{
		keyNvmDir:   EnvNvmDir,
		keyPnpmHome: EnvPnpmHome,
		keyYarnHome: EnvYarnHome,
	} {
		if val, ok := lookup(env); ok && val != "" {
			v.Set(key, val)
		}
	}

	home := opts.HomeDir
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	if home != "" {
		v.SetDefault(keyNvmDir, filepath.Join(home, ".nvm"))
		v.SetDefault(keyPnpmHome, filepath.Join(home, ".local", "share", "pnpm"))
		v.SetDefault(keyYarnHome, filepath.Join(home, ".config", "yarn"))
	}

	paths := models.Paths{
		NvmDir:   v.GetString(keyNvmDir),
		PnpmHome: v.GetString(keyPnpmHome),
		YarnHome: v.GetString(keyYarnHome),
	}

	if paths.NvmDir == "" || paths.PnpmHome == "" || paths.YarnHome == "" {
		return models.Paths{}, &models.PeekError{
			Type: models.ErrInvalidConfig,
			Err: fmt.Errorf("cannot determine home directory; set %s, %s and %s",
				EnvNvmDir, EnvPnpmHome, EnvYarnHome),
		}
	}

	return paths, nil
}
