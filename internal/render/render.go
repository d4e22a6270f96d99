package render

import (
	"fmt"
	"regexp"
	"sort"
)

// MissingVariableError reports a placeholder referenced by a template body
// that the variable mapping does not supply. It carries enough context to
// point at the schema mismatch: which bundle, which file, which placeholder.
type MissingVariableError struct {
	Bundle      string
	File        string
	Placeholder string
}

func (e *MissingVariableError) Error() string {
	if e.Bundle == "" {
		return fmt.Sprintf("missing variable %q", e.Placeholder)
	}
	return fmt.Sprintf("bundle %s: file %s references undefined variable %q",
		e.Bundle, e.File, e.Placeholder)
}

// placeholder matches ${identifier} forms and the $$ escape. Identifiers
// follow the usual letter-then-word-characters shape; anything else is left
// untouched as literal text.
var placeholder = regexp.MustCompile(`\$\$|\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Render substitutes every ${name} placeholder in body with its value from
// vars. It is a pure function: no I/O, no state, no randomness. $$ renders a
// literal $. The returned slice names mapping entries the body never
// referenced; advisory only, callers may log it.
//
// A placeholder absent from vars yields a *MissingVariableError with the
// Bundle and File fields left for the caller to fill in.
func Render(body string, vars map[string]string) (string, []string, error) {
	used := make(map[string]bool, len(vars))
	var missing *MissingVariableError

	rendered := placeholder.ReplaceAllStringFunc(body, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := m[2 : len(m)-1]
		value, ok := vars[name]
		if !ok {
			if missing == nil {
				missing = &MissingVariableError{Placeholder: name}
			}
			return m
		}
		used[name] = true
		return value
	})

	if missing != nil {
		return "", nil, missing
	}

	var unused []string
	for name := range vars {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)

	return rendered, unused, nil
}

// Placeholders returns the distinct placeholder names referenced by body,
// in first-appearance order. Used by tests to cross-check a bundle's
// declared variable schema against its payloads.
func Placeholders(body string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(body, -1) {
		if m[0] == "$$" || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}
