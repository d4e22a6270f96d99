package manager

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/forgeworks-cli/forge/internal/agent"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/naming"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Stage labels one step of the pipeline state machine.
type Stage string

const (
	StageReceived   Stage = "received"
	StageClassified Stage = "classified"
	StageDispatched Stage = "dispatched"
	StageRendering  Stage = "rendering"
	StageWriting    Stage = "writing"
	StageWritten    Stage = "written"
	StageFailed     Stage = "failed"
)

// Request is one invocation's input. Entities built from it live for the
// invocation only; the output directory tree is the sole durable state.
type Request struct {
	Text   string
	DryRun bool
}

// Entry is one manifest line: a path relative to the project root and the
// byte size of its rendered content.
type Entry struct {
	Path string
	Size int64
}

// Result is the outcome of a successful (or dry-run) invocation.
type Result struct {
	Category  classify.Category
	Agent     string
	Score     int
	Ranked    []classify.Score
	OutputDir string // empty in dry-run mode
	Manifest  []Entry
	Plan      []string // agent plan steps, dry-run only
	Warnings  []string
	DryRun    bool
}

// Error is a failed invocation. It names the failing stage and carries the
// manifest of everything written before the fault, so callers can clean up
// or resume; a failure is never silently partial.
type Error struct {
	Stage   Stage
	Written []Entry
	Err     error
}

func (e *Error) Error() string {
	if len(e.Written) == 0 {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	paths := make([]string, len(e.Written))
	for i, w := range e.Written {
		paths[i] = w.Path
	}
	return fmt.Sprintf("%s: %v (already written: %s)", e.Stage, e.Err, strings.Join(paths, ", "))
}

func (e *Error) Unwrap() error { return e.Err }

// Manager is the pipeline entry point: classify, dispatch, render, write.
type Manager struct {
	fs       afero.Fs
	registry *agent.Registry
	root     string
}

// New builds a Manager writing under root on the given filesystem.
func New(fsys afero.Fs, registry *agent.Registry, root string) *Manager {
	return &Manager{fs: fsys, registry: registry, root: root}
}

// Agents returns the registry's agents for listing.
func (m *Manager) Agents() []agent.Agent {
	return m.registry.All()
}

// Handle runs one request through the pipeline. Classification never fails;
// rendering and writing faults return a *Error naming the stage and, for
// write faults, every file that made it to disk first.
func (m *Manager) Handle(req Request) (*Result, error) {
	log.Debug().Str("stage", string(StageReceived)).Str("request", req.Text).Msg("request received")

	cls := classify.Classify(req.Text)
	log.Debug().
		Str("stage", string(StageClassified)).
		Str("category", string(cls.Category)).
		Int("score", cls.Points).
		Msg("request classified")

	a, err := m.registry.Lookup(cls.Category)
	if err != nil {
		// Registry wiring bug: every category must have exactly one agent.
		return nil, &Error{Stage: StageDispatched, Err: err}
	}
	log.Debug().Str("stage", string(StageDispatched)).Str("agent", a.Name()).Msg("dispatched")

	files, warnings, err := a.Render(req.Text)
	if err != nil {
		return nil, &Error{Stage: StageRendering, Err: err}
	}
	for _, w := range warnings {
		log.Warn().Str("agent", a.Name()).Msg(w)
	}

	result := &Result{
		Category: cls.Category,
		Agent:    a.Name(),
		Score:    cls.Points,
		Ranked:   cls.Ranked,
		Manifest: manifestOf(files),
		Warnings: warnings,
		DryRun:   req.DryRun,
	}

	if req.DryRun {
		result.Plan = a.Plan(req.Text)
		log.Info().Str("agent", a.Name()).Int("files", len(files)).Msg("dry run complete")
		return result, nil
	}

	outputDir, err := naming.Allocate(m.fs, m.root, cls.Category, req.Text)
	if err != nil {
		return nil, &Error{Stage: StageWriting, Err: err}
	}

	written, err := m.writeFiles(outputDir, files)
	if err != nil {
		return nil, &Error{Stage: StageWriting, Written: written, Err: err}
	}

	result.OutputDir = outputDir
	log.Info().
		Str("stage", string(StageWritten)).
		Str("output_dir", outputDir).
		Int("files", len(written)).
		Msg("project generated")
	return result, nil
}

// writeFiles materializes rendered files under outputDir, creating parent
// directories as needed. It returns the entries written so far even on
// failure, in write order.
func (m *Manager) writeFiles(outputDir string, files []agent.File) ([]Entry, error) {
	if err := m.fs.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", outputDir, err)
	}

	var written []Entry
	for _, f := range files {
		full := filepath.Join(outputDir, f.Path)

		// A template path must stay inside the project it belongs to.
		rel, err := filepath.Rel(outputDir, full)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return written, fmt.Errorf("path %s escapes output directory", f.Path)
		}

		if dir := filepath.Dir(full); dir != outputDir {
			if err := m.fs.MkdirAll(dir, 0755); err != nil {
				return written, fmt.Errorf("creating %s: %w", dir, err)
			}
		}

		if err := afero.WriteFile(m.fs, full, []byte(f.Content), 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", full, err)
		}
		written = append(written, Entry{Path: f.Path, Size: int64(len(f.Content))})
	}

	return written, nil
}

func manifestOf(files []agent.File) []Entry {
	entries := make([]Entry, len(files))
	for i, f := range files {
		entries[i] = Entry{Path: f.Path, Size: int64(len(f.Content))}
	}
	return entries
}
