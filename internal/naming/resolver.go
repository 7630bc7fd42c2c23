package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aalvaropc/domgen/internal/domain"
)

// ParsedName is the segmented form of a raw name.
type ParsedName struct {
	First    string
	Last     string
	HasSub   bool
	SubLevel int
}

// Resolver turns raw names and kinds into namespaces, class names and paths.
type Resolver struct {
	root     string
	sep      string
	reserved []string
	ext      string
	code     string
}

// New builds a Resolver from cfg. An empty Separator or Extension falls back to the
// defaults, a nil ReservedWords list to the built-in list. A non-empty RootNamespace
// always ends with the separator.
func New(cfg domain.NamingConfig) *Resolver {
	def := domain.DefaultNamingConfig()

	r := &Resolver{
		root: cfg.RootNamespace,
		sep:  cfg.Separator,
		ext:  strings.TrimPrefix(cfg.Extension, "."),
		code: cfg.CodeSeparator,
	}
	if r.sep == "" {
		r.sep = def.Separator
	}
	if r.ext == "" {
		r.ext = def.Extension
	}
	if r.code == "" {
		r.code = r.sep
	}
	if r.root != "" && !strings.HasSuffix(r.root, r.sep) {
		r.root += r.sep
	}

	words := cfg.ReservedWords
	if words == nil {
		words = def.ReservedWords
	}
	r.reserved = make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			r.reserved = append(r.reserved, w)
		}
	}
	return r
}

// Separator returns the canonical namespace separator.
func (r *Resolver) Separator() string { return r.sep }

// RootNamespace returns the prefix of every generated namespace.
func (r *Resolver) RootNamespace() string { return r.root }

// Extension returns the source file extension, without the dot.
func (r *Resolver) Extension() string { return r.ext }

// Validate rejects names that are blank or hold characters other than ASCII letters,
// digits, underscores, "/", the separator and the code separator.
func (r *Resolver) Validate(raw string) error {
	name := strings.TrimSpace(raw)
	if name == "" {
		return &domain.EmptyIdentifierError{Name: raw}
	}
	for _, c := range name {
		if !r.allowed(c) {
			return &domain.InvalidNameError{Name: raw, Char: c}
		}
	}
	return nil
}

func (r *Resolver) allowed(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '/':
		return true
	default:
		return strings.ContainsRune(r.sep, c) || strings.ContainsRune(r.code, c)
	}
}

// Normalize converts "/" and the code separator to the separator, strips the root namespace and then every
// reserved word (in order), and trims separators and whitespace from both ends.
// Stripping repeats until nothing changes, so Normalize is idempotent.
func (r *Resolver) Normalize(raw string) string {
	s := r.canonical(raw)
	for {
		prev := s
		if r.root != "" {
			s = strings.ReplaceAll(s, r.root, "")
		}
		s = r.strip(s)
		if s == prev {
			break
		}
	}
	return strings.TrimFunc(s, func(c rune) bool {
		return unicode.IsSpace(c) || c == '/' || strings.ContainsRune(r.sep, c)
	})
}

func (r *Resolver) canonical(s string) string {
	s = strings.ReplaceAll(s, "/", r.sep)
	if r.code != r.sep {
		s = strings.ReplaceAll(s, r.code, r.sep)
	}
	return s
}

func (r *Resolver) strip(s string) string {
	for _, w := range r.reserved {
		s = strings.ReplaceAll(s, w, "")
	}
	return s
}

func (r *Resolver) stripAll(s string) string {
	for {
		next := r.strip(s)
		if next == s {
			return s
		}
		s = next
	}
}

// Parse validates and normalizes raw, then splits it into segments.
func (r *Resolver) Parse(raw string) (ParsedName, error) {
	if err := r.Validate(raw); err != nil {
		return ParsedName{}, err
	}

	norm := r.Normalize(raw)
	if norm == "" {
		return ParsedName{}, &domain.EmptyIdentifierError{Name: raw}
	}

	segments := strings.Split(norm, r.sep)
	p := ParsedName{
		First:    r.stripAll(CamelCase(segments[0])),
		Last:     CamelCase(segments[len(segments)-1]),
		HasSub:   len(segments) > 1,
		SubLevel: len(segments),
	}
	if p.First == "" || p.Last == "" {
		return ParsedName{}, &domain.EmptyIdentifierError{Name: raw}
	}
	return p, nil
}

type kindParts struct {
	plural string
	suffix string
}

var errEmptyKind = errors.New("kind is required")

// Only models are named bare; every other kind carries its type as suffix.
func (r *Resolver) kind(kind string) (kindParts, error) {
	camel := CamelCase(kind)
	if camel == "" {
		return kindParts{}, &domain.OpError{
			Op:   "naming.kind",
			Kind: domain.KindInvalidConfig,
			Err:  errEmptyKind,
		}
	}
	kp := kindParts{plural: Pluralize(camel), suffix: camel}
	if camel == string(domain.ArtifactModel) {
		kp.suffix = ""
	}
	return kp, nil
}

func (r *Resolver) prepare(raw, kind string) (ParsedName, kindParts, error) {
	kp, err := r.kind(kind)
	if err != nil {
		return ParsedName{}, kindParts{}, err
	}
	p, err := r.Parse(raw)
	if err != nil {
		return ParsedName{}, kindParts{}, err
	}
	return p, kp, nil
}

// GenerateNamespace returns Root + First + Sep + Plural(kind).
func (r *Resolver) GenerateNamespace(raw, kind string) (string, error) {
	p, kp, err := r.prepare(raw, kind)
	if err != nil {
		return "", err
	}
	return r.root + p.First + r.sep + kp.plural, nil
}

// GenerateFullNamespace returns the namespace followed by the class name.
func (r *Resolver) GenerateFullNamespace(raw, kind string) (string, error) {
	p, kp, err := r.prepare(raw, kind)
	if err != nil {
		return "", err
	}
	return r.root + p.First + r.sep + kp.plural + r.sep + p.Last + kp.suffix, nil
}

// Join returns the fully qualified name of kind for First and Last parts that are
// already parsed. Nothing is stripped.
func (r *Resolver) Join(first, last, kind string) (string, error) {
	kp, err := r.kind(kind)
	if err != nil {
		return "", err
	}
	return r.root + first + r.sep + kp.plural + r.sep + last + kp.suffix, nil
}

// GenerateClassName returns the bare class name (Last + kind suffix).
func (r *Resolver) GenerateClassName(raw, kind string) (string, error) {
	p, kp, err := r.prepare(raw, kind)
	if err != nil {
		return "", err
	}
	return p.Last + kp.suffix, nil
}

// GeneratePath returns the slash-delimited source path relative to the project root,
// e.g. "domains/Billing/Models/Invoice.php".
func (r *Resolver) GeneratePath(raw, kind string) (string, error) {
	p, kp, err := r.prepare(raw, kind)
	if err != nil {
		return "", err
	}
	ns := strings.ToLower(r.root) + p.First + r.sep + kp.plural + r.sep + p.Last + kp.suffix
	return r.ToPath(ns) + "." + r.ext, nil
}

// ToPath converts namespace separators into path separators.
func (r *Resolver) ToPath(ns string) string {
	return strings.ReplaceAll(ns, r.sep, "/")
}

// Code rewrites a namespace with the separator used in generated source
// ("Domains.Billing.Models" -> `Domains\Billing\Models`).
func (r *Resolver) Code(ns string) string {
	return strings.ReplaceAll(ns, r.sep, r.code)
}

// Basename returns the last separator-delimited part of a fully qualified name.
func (r *Resolver) Basename(fqn string) string {
	if i := strings.LastIndex(fqn, r.sep); i >= 0 {
		return fqn[i+len(r.sep):]
	}
	return fqn
}

// VariableName derives a variable name from a (possibly qualified) class name.
func (r *Resolver) VariableName(class string) string {
	return LowerCamel(r.Basename(class))
}

// Qualified reports whether name already starts with the root namespace, in any of
// the accepted separators.
func (r *Resolver) Qualified(name string) bool {
	if r.root == "" {
		return false
	}
	return strings.HasPrefix(r.canonical(strings.TrimSpace(name)), r.root)
}

// ResolveQualified describes a fully qualified class name as is. Nothing is stripped,
// so "Domains.Billing.Models.ModelItem" keeps its class name.
func (r *Resolver) ResolveQualified(fqn, kind string) (domain.Resolution, error) {
	kp, err := r.kind(kind)
	if err != nil {
		return domain.Resolution{}, err
	}
	if err := r.Validate(fqn); err != nil {
		return domain.Resolution{}, err
	}
	if !r.Qualified(fqn) {
		return domain.Resolution{}, &domain.OpError{
			Op:   "naming.resolve_qualified",
			Kind: domain.KindInvalidName,
			Err:  fmt.Errorf("%q does not start with %q", fqn, r.root),
		}
	}

	name := r.canonical(strings.TrimSpace(fqn))
	rest := strings.TrimPrefix(name, r.root)
	segments := strings.Split(rest, r.sep)
	for _, seg := range segments {
		if seg == "" {
			return domain.Resolution{}, &domain.EmptyIdentifierError{Name: fqn}
		}
	}

	class := segments[len(segments)-1]
	last := strings.TrimSuffix(class, kp.suffix)
	if last == "" {
		last = class
	}
	ns := strings.TrimSuffix(r.root, r.sep)
	if len(segments) > 1 {
		ns = r.root + strings.Join(segments[:len(segments)-1], r.sep)
	}

	return domain.Resolution{
		Raw:           fqn,
		Kind:          CamelCase(kind),
		Normalized:    rest,
		First:         segments[0],
		Last:          last,
		HasSub:        len(segments) > 1,
		SubLevel:      len(segments),
		Namespace:     ns,
		FullNamespace: name,
		Class:         class,
		Variable:      LowerCamel(class),
		Path:          r.ToPath(strings.ToLower(r.root)+rest) + "." + r.ext,
	}, nil
}

// Resolve computes every derived string for raw and kind in one pass.
func (r *Resolver) Resolve(raw, kind string) (domain.Resolution, error) {
	p, kp, err := r.prepare(raw, kind)
	if err != nil {
		return domain.Resolution{}, err
	}

	ns := r.root + p.First + r.sep + kp.plural
	class := p.Last + kp.suffix
	path := r.ToPath(strings.ToLower(r.root)+p.First+r.sep+kp.plural+r.sep+class) + "." + r.ext

	return domain.Resolution{
		Raw:           raw,
		Kind:          CamelCase(kind),
		Normalized:    r.Normalize(raw),
		First:         p.First,
		Last:          p.Last,
		HasSub:        p.HasSub,
		SubLevel:      p.SubLevel,
		Namespace:     ns,
		FullNamespace: ns + r.sep + class,
		Class:         class,
		Variable:      LowerCamel(class),
		Path:          path,
	}, nil
}
