package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/domgen/internal/domain"
)

const (
	FileName    = "domgen.yaml"
	EnvFileName = ".env"
)

// Load builds the project configuration for root.
// Precedence: defaults < domgen.yaml < .env < process environment.
// A missing domgen.yaml or .env is not an error.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)

	var y YAMLFile
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &y); err != nil {
			return domain.DefaultConfig(), &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	env, err := readEnv(filepath.Join(root, EnvFileName))
	if err != nil {
		return domain.DefaultConfig(), err
	}
	applyEnv(&y.Domgen, env)

	return MapConfig(path, y.Domgen)
}
