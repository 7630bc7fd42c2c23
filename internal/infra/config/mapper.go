package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/domgen/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MapConfig validates the YAML view and applies it on top of the defaults.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if err := validate.Struct(yc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return cfg, invalidField(path, fieldName(fe), fmt.Sprintf("failed %q rule", fe.Tag()))
		}
		return cfg, invalidField(path, "domgen", err.Error())
	}

	n := yc.Naming
	if n.RootNamespace != nil {
		cfg.Naming.RootNamespace = strings.TrimSpace(*n.RootNamespace)
	}
	if n.Separator != "" {
		cfg.Naming.Separator = n.Separator
		// A custom separator without a custom code separator writes namespaces as-is.
		if n.CodeSeparator == "" {
			cfg.Naming.CodeSeparator = n.Separator
		}
	}
	if n.CodeSeparator != "" {
		cfg.Naming.CodeSeparator = n.CodeSeparator
	}
	if n.Extension != "" {
		cfg.Naming.Extension = strings.TrimPrefix(n.Extension, ".")
	}
	if n.ReservedWords != nil {
		cfg.Naming.ReservedWords = append([]string(nil), n.ReservedWords...)
	}

	if root := cfg.Naming.RootNamespace; root != "" && !strings.HasSuffix(root, cfg.Naming.Separator) {
		cfg.Naming.RootNamespace = root + cfg.Naming.Separator
	}

	if yc.Paths.StubsDir != "" {
		cfg.Paths.StubsDir = yc.Paths.StubsDir
	}
	if yc.Paths.FactoriesDir != "" {
		cfg.Paths.FactoriesDir = strings.TrimSuffix(yc.Paths.FactoriesDir, "/")
	}

	return cfg, nil
}

// "YAMLConfig.naming.separator" -> "domgen.naming.separator"
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return "domgen." + ns
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
