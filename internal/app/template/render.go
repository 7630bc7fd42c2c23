package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/domgen/internal/domain"
)

// Render replaces {{ key }} placeholders in a stub with vars values.
// Whitespace inside the braces is ignored, so {{key}} and {{ key }} are equivalent.
// It returns an error if a variable is missing or a placeholder is malformed.
func Render(stub string, vars map[string]string) (string, error) {
	if stub == "" {
		return "", nil
	}

	var out strings.Builder
	out.Grow(len(stub))

	rest := stub
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  errors.New("unclosed template expression"),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  errors.New("empty template expression"),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindMissingVar,
				Err:  fmt.Errorf("missing variable %q", key),
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// Placeholders lists the distinct keys referenced by a stub, sorted.
// Malformed trailing expressions are ignored.
func Placeholders(stub string) []string {
	seen := map[string]bool{}
	rest := stub
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			break
		}
		rest = rest[start+2:]
		end := strings.Index(rest, "}}")
		if end == -1 {
			break
		}
		if key := strings.TrimSpace(rest[:end]); key != "" {
			seen[key] = true
		}
		rest = rest[end+2:]
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
