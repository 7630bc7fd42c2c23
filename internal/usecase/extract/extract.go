package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/domgen/internal/domain"
)

// Fields evaluates each JSONPath expression against the JSON form of v and returns
// the values as strings, in expression order.
//
// v is anything encoding/json can marshal (a Resolution, a slice of Plans). The
// first failing expression aborts with an invalid_config error naming it.
func Fields(v any, exprs []string) ([]string, error) {
	doc, err := toDocument(v)
	if err != nil {
		return nil, &domain.OpError{Op: "extract.fields", Kind: domain.KindExecution, Err: err}
	}

	out := make([]string, 0, len(exprs))
	for _, raw := range exprs {
		expr := strings.TrimSpace(raw)
		s, err := field(doc, expr)
		if err != nil {
			return nil, &domain.OpError{Op: "extract.fields", Kind: domain.KindInvalidConfig, Path: expr, Err: err}
		}
		out = append(out, s)
	}
	return out, nil
}

func field(doc any, expr string) (string, error) {
	if expr == "" {
		return "", fmt.Errorf("empty jsonpath expression")
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("jsonpath error: %w", err)
	}
	if val == nil {
		return "", fmt.Errorf("no value found")
	}
	if arr, ok := val.([]any); ok && len(arr) == 0 {
		return "", fmt.Errorf("no value found")
	}
	return toString(val)
}

// toDocument round-trips v through JSON so struct tags decide the field names.
func toDocument(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toString(v any) (string, error) {
	// Wildcards yield a slice; a single match prints bare.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	case map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}
