package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/domgen/internal/domain"
)

// Environment keys recognised in the project .env file and the process environment.
const (
	EnvRootNamespace = "DOMGEN_ROOT_NAMESPACE"
	EnvSeparator     = "DOMGEN_SEPARATOR"
	EnvCodeSeparator = "DOMGEN_CODE_SEPARATOR"
	EnvExtension     = "DOMGEN_EXTENSION"
	EnvReservedWords = "DOMGEN_RESERVED_WORDS"
	EnvStubsDir      = "DOMGEN_STUBS_DIR"
	EnvFactoriesDir  = "DOMGEN_FACTORIES_DIR"
)

var envKeys = []string{
	EnvRootNamespace, EnvSeparator, EnvCodeSeparator, EnvExtension,
	EnvReservedWords, EnvStubsDir, EnvFactoriesDir,
}

// readEnv reads DOMGEN_* keys from the .env file at path (if any); the process
// environment wins over the file. The process environment is never modified.
func readEnv(path string) (map[string]string, error) {
	out := map[string]string{}

	file, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.OpError{
			Op:   "config.env",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	for _, k := range envKeys {
		if v, ok := file[k]; ok {
			out[k] = v
		}
		if v, ok := os.LookupEnv(k); ok {
			out[k] = v
		}
	}
	return out, nil
}

func applyEnv(yc *YAMLConfig, env map[string]string) {
	if v, ok := env[EnvRootNamespace]; ok {
		root := v
		yc.Naming.RootNamespace = &root
	}
	if v := env[EnvSeparator]; v != "" {
		yc.Naming.Separator = v
	}
	if v := env[EnvCodeSeparator]; v != "" {
		yc.Naming.CodeSeparator = v
	}
	if v := env[EnvExtension]; v != "" {
		yc.Naming.Extension = v
	}
	if v, ok := env[EnvReservedWords]; ok {
		words := []string{}
		for _, w := range strings.Split(v, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		yc.Naming.ReservedWords = words
	}
	if v := env[EnvStubsDir]; v != "" {
		yc.Paths.StubsDir = v
	}
	if v := env[EnvFactoriesDir]; v != "" {
		yc.Paths.FactoriesDir = v
	}
}
