package bundle

import (
	"testing"
	"testing/fstest"

	"github.com/forgeworks-cli/forge/internal/render"
)

func TestLoadEmbeddedStore(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := map[string][]string{
		"web":    {"flask_app"},
		"api":    {"fastapi_crud"},
		"data":   {"csv_processor", "data_visualizer", "pandas_analysis"},
		"cli":    {"argparse_tool"},
		"script": {"basic_script", "file_processor", "scheduler"},
	}

	for category, names := range want {
		bundles := s.ByCategory(category)
		if len(bundles) != len(names) {
			t.Fatalf("category %s has %d bundles, want %d", category, len(bundles), len(names))
		}
		for i, name := range names {
			if bundles[i].Name != name {
				t.Errorf("category %s bundle %d = %q, want %q", category, i, bundles[i].Name, name)
			}
		}
	}
}

func TestEveryBundlePayloadPresent(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, category := range s.Categories() {
		for _, b := range s.ByCategory(category) {
			for _, f := range b.Files {
				if _, ok := b.Payload(f.Template); !ok {
					t.Errorf("bundle %s/%s: payload %s missing", category, b.Name, f.Template)
				}
			}
		}
	}
}

// Every placeholder referenced by a payload must be declared in the
// manifest, and every required variable must be referenced somewhere.
// This keeps the declared schema honest against the template text.
func TestDeclaredSchemaMatchesPayloads(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, category := range s.Categories() {
		for _, b := range s.ByCategory(category) {
			declared := map[string]bool{}
			for _, v := range b.Variables {
				declared[v.Name] = true
			}

			referenced := map[string]bool{}
			for _, f := range b.Files {
				body, _ := b.Payload(f.Template)
				for _, name := range render.Placeholders(body) {
					referenced[name] = true
					if !declared[name] {
						t.Errorf("bundle %s/%s: %s references undeclared ${%s}",
							category, b.Name, f.Template, name)
					}
				}
			}

			for _, name := range b.RequiredVars() {
				if !referenced[name] {
					t.Errorf("bundle %s/%s: required variable %q is never referenced",
						category, b.Name, name)
				}
			}
		}
	}
}

func TestGet(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	b, err := s.Get("api", "fastapi_crud")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if b.Category != "api" || len(b.Files) != 3 {
		t.Errorf("unexpected bundle: %+v", b.Manifest)
	}

	if _, err := s.Get("api", "nope"); err == nil {
		t.Error("Get(api, nope) should fail")
	}
}

func TestDefaultsAndRequired(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	b, err := s.Get("web", "flask_app")
	if err != nil {
		t.Fatal(err)
	}

	defaults := b.Defaults()
	if defaults["accent_color"] == "" {
		t.Error("flask_app should default accent_color")
	}

	required := b.RequiredVars()
	if len(required) != 2 {
		t.Errorf("flask_app required vars = %v, want app_name and description", required)
	}
}

func TestLoadRejectsIncompatibleSchemaVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/web/future/bundle.yaml": &fstest.MapFile{Data: []byte(
			"name: future\ncategory: web\nschema_version: \"2.0\"\nfiles:\n  - path: a.txt\n    template: a.txt.tpl\n")},
		"templates/web/future/a.txt.tpl": &fstest.MapFile{Data: []byte("hi")},
	}
	if _, err := loadFrom(fsys, "templates"); err == nil {
		t.Error("schema_version 2.0 should be rejected")
	}
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/web/broken/bundle.yaml": &fstest.MapFile{Data: []byte(
			"name: broken\ncategory: web\nschema_version: \"1.0\"\n")},
	}
	if _, err := loadFrom(fsys, "templates"); err == nil {
		t.Error("manifest without files should be rejected")
	}
}
