package scaffold

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind identifies an artifact type.
type Kind string

const (
	KindComponent  Kind = "component"
	KindScreen     Kind = "screen"
	KindHook       Kind = "hook"
	KindNavigation Kind = "navigation"
)

// Kinds returns every supported kind in menu order.
func Kinds() []Kind {
	return []Kind{KindComponent, KindScreen, KindHook, KindNavigation}
}

// KindNames returns the string form of Kinds.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind maps s to a Kind by exact match.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.WithHintf(&UnsupportedKindError{Kind: s},
		"supported types: %s", strings.Join(KindNames(), ", "))
}

// IsKind reports whether s names a supported kind.
func IsKind(s string) bool {
	_, err := ParseKind(s)
	return err == nil
}

// indexSuffix is the module suffix the barrel file re-exports for kind.
func indexSuffix(kind Kind) string {
	switch kind {
	case KindComponent:
		return "Component"
	case KindScreen:
		return "Screen"
	case KindHook, KindNavigation:
		return ""
	}
	return ""
}

// UnsupportedKindError is returned when a requested kind has no generator.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("type %q is not supported", e.Kind)
}
