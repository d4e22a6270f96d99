package bundle

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed templates
var templateFS embed.FS

const manifestFileName = "bundle.yaml"

// schemaCompat is the range of bundle schema versions this binary can load.
// Bumped when the manifest format changes incompatibly.
var schemaCompat = mustConstraint("^1.0")

// Store holds every embedded template bundle, grouped by category. It is
// built once and read-only afterwards.
type Store struct {
	byCategory map[string][]*Bundle
	byKey      map[string]*Bundle
}

var (
	storeOnce sync.Once
	store     *Store
	storeErr  error
)

// Load parses, validates, and caches all embedded bundles. Subsequent calls
// return the cached store. A load error means the binary ships a broken
// bundle and is not recoverable at runtime.
func Load() (*Store, error) {
	storeOnce.Do(func() {
		store, storeErr = loadFrom(templateFS, "templates")
	})
	return store, storeErr
}

func loadFrom(fsys fs.FS, root string) (*Store, error) {
	s := &Store{
		byCategory: make(map[string][]*Bundle),
		byKey:      make(map[string]*Bundle),
	}

	manifests, err := findManifests(fsys, root)
	if err != nil {
		return nil, err
	}

	for _, manifestPath := range manifests {
		b, err := loadBundle(fsys, manifestPath)
		if err != nil {
			return nil, err
		}
		key := b.Category + "/" + b.Name
		if _, dup := s.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate bundle %s", key)
		}
		s.byKey[key] = b
		s.byCategory[b.Category] = append(s.byCategory[b.Category], b)
	}

	for _, bundles := range s.byCategory {
		sort.Slice(bundles, func(i, j int) bool { return bundles[i].Name < bundles[j].Name })
	}

	return s, nil
}

func findManifests(fsys fs.FS, root string) ([]string, error) {
	var manifests []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == manifestFileName {
			manifests = append(manifests, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking embedded templates: %w", err)
	}
	sort.Strings(manifests)
	return manifests, nil
}

func loadBundle(fsys fs.FS, manifestPath string) (*Bundle, error) {
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestPath, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", manifestPath, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("manifest %s is invalid: %s", manifestPath, result.Issues[0].Message)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	if err := checkSchemaVersion(m.SchemaVersion); err != nil {
		return nil, fmt.Errorf("bundle %s: %w", m.Name, err)
	}

	b := &Bundle{Manifest: m, payloads: make(map[string]string, len(m.Files))}
	dir := path.Dir(manifestPath)
	for _, f := range m.Files {
		body, err := fs.ReadFile(fsys, path.Join(dir, f.Template))
		if err != nil {
			return nil, fmt.Errorf("bundle %s: reading template %s: %w", m.Name, f.Template, err)
		}
		b.payloads[f.Template] = string(body)
	}

	return b, nil
}

func checkSchemaVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing schema_version %q: %w", version, err)
	}
	if !schemaCompat.Check(v) {
		return fmt.Errorf("schema_version %s is outside the supported range %s", version, schemaCompat)
	}
	return nil
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// ByCategory returns the bundles registered for a category, sorted by name.
func (s *Store) ByCategory(category string) []*Bundle {
	return s.byCategory[category]
}

// Get looks up one bundle by category and name.
func (s *Store) Get(category, name string) (*Bundle, error) {
	b, ok := s.byKey[category+"/"+name]
	if !ok {
		return nil, fmt.Errorf("no bundle %s/%s", category, name)
	}
	return b, nil
}

// Categories returns the categories that have at least one bundle, sorted.
func (s *Store) Categories() []string {
	cats := make([]string, 0, len(s.byCategory))
	for cat := range s.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
