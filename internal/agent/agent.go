package agent

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
	"github.com/forgeworks-cli/forge/internal/render"
)

// ErrUnknownCategory indicates a registry lookup miss. Every category has
// exactly one registered agent, so hitting this is a wiring bug, not a user
// error.
var ErrUnknownCategory = errors.New("no agent registered for category")

// File is one rendered output file, not yet written to disk.
type File struct {
	Path    string // relative to the project root
	Content string
}

// Agent is a category specialist: it owns that category's template bundles
// and turns a request into rendered project files.
type Agent interface {
	Name() string
	Description() string
	Category() classify.Category

	// Render performs variable inference and renders the chosen bundle.
	// The string slice carries advisory warnings (unused variables).
	Render(request string) ([]File, []string, error)

	// Plan describes, step by step, what Render would produce.
	Plan(request string) []string
}

// Registry is the fixed category→agent dispatch table, read-only after
// construction.
type Registry struct {
	agents map[classify.Category]Agent
}

// NewRegistry wires one agent per category against the bundle store.
func NewRegistry(store *bundle.Store) *Registry {
	return &Registry{agents: map[classify.Category]Agent{
		classify.Web:    &webAgent{store: store},
		classify.API:    &apiAgent{store: store},
		classify.Data:   &dataAgent{store: store},
		classify.CLI:    &cliAgent{store: store},
		classify.Script: &scriptAgent{store: store},
	}}
}

// Lookup returns the agent for a category.
func (r *Registry) Lookup(cat classify.Category) (Agent, error) {
	a, ok := r.agents[cat]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, cat)
	}
	return a, nil
}

// All returns every registered agent in the fixed category priority order.
func (r *Registry) All() []Agent {
	agents := make([]Agent, 0, len(r.agents))
	for _, cat := range classify.All() {
		if a, ok := r.agents[cat]; ok {
			agents = append(agents, a)
		}
	}
	return agents
}

// renderBundle merges the bundle's cosmetic defaults under the inferred
// variables, enforces the declared required set up front, then renders every
// file. Required variables are checked before the first render so a schema
// mismatch never produces partial output.
func renderBundle(b *bundle.Bundle, vars infer.Vars) ([]File, []string, error) {
	merged := b.Defaults()
	for k, v := range vars {
		merged[k] = v
	}

	for _, name := range b.RequiredVars() {
		if _, ok := merged[name]; !ok {
			return nil, nil, &render.MissingVariableError{
				Bundle:      b.Name,
				Placeholder: name,
			}
		}
	}

	files := make([]File, 0, len(b.Files))
	usedAnywhere := make(map[string]bool, len(merged))

	for _, f := range b.Files {
		body, ok := b.Payload(f.Template)
		if !ok {
			return nil, nil, fmt.Errorf("bundle %s: payload %s not loaded", b.Name, f.Template)
		}

		rendered, unused, err := render.Render(body, merged)
		if err != nil {
			var missing *render.MissingVariableError
			if errors.As(err, &missing) {
				missing.Bundle = b.Name
				missing.File = f.Path
			}
			return nil, nil, err
		}

		unusedHere := make(map[string]bool, len(unused))
		for _, name := range unused {
			unusedHere[name] = true
		}
		for name := range merged {
			if !unusedHere[name] {
				usedAnywhere[name] = true
			}
		}

		files = append(files, File{Path: f.Path, Content: rendered})
	}

	var idle []string
	for name := range merged {
		if !usedAnywhere[name] {
			idle = append(idle, name)
		}
	}
	sort.Strings(idle)
	warnings := make([]string, 0, len(idle))
	for _, name := range idle {
		warnings = append(warnings, fmt.Sprintf("bundle %s: variable %q supplied but never referenced", b.Name, name))
	}

	return files, warnings, nil
}

// containsAny reports whether the lower-cased text contains any of the
// given substrings. Bundle-selection hints match loosely on purpose, the
// way the classifier's prefix keywords do.
func containsAny(lower string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
