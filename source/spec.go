package source

import (
	"strings"

	"github.com/mattsolo1/grove-pick/errors"
)

// Spec is a parsed source invocation: <name>[:modifier][::filter].
// Examples: "gitlog", "gitlog:all", "gitlog::wip", "gitlog:all::wip".
type Spec struct {
	Name     string
	Modifier string
	// Filter is the free-text token after "::", passed through unescaped to
	// the underlying git invocation.
	Filter string
}

// ParseSpec parses a source invocation string.
func ParseSpec(raw string) (Spec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, errors.New(errors.ErrCodeInvalidInput, "empty source spec")
	}

	var spec Spec
	head, filter, hasFilter := strings.Cut(raw, "::")
	if hasFilter {
		spec.Filter = filter
	}

	name, modifier, hasModifier := strings.Cut(head, ":")
	spec.Name = name
	if hasModifier {
		if modifier == "" {
			return Spec{}, errors.New(errors.ErrCodeInvalidInput, "empty source modifier in "+raw)
		}
		spec.Modifier = modifier
	}

	if spec.Name == "" {
		return Spec{}, errors.New(errors.ErrCodeInvalidInput, "missing source name in "+raw)
	}

	return spec, nil
}

// String reassembles the invocation string.
func (s Spec) String() string {
	out := s.Name
	if s.Modifier != "" {
		out += ":" + s.Modifier
	}
	if s.Filter != "" {
		out += "::" + s.Filter
	}
	return out
}
