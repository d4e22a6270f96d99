package agent

import (
	"strings"
	"testing"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	store, err := bundle.Load()
	if err != nil {
		t.Fatalf("bundle.Load() error: %v", err)
	}
	return NewRegistry(store)
}

func TestRegistryCoversEveryCategory(t *testing.T) {
	r := newRegistry(t)
	for _, cat := range classify.All() {
		a, err := r.Lookup(cat)
		if err != nil {
			t.Errorf("Lookup(%s) error: %v", cat, err)
			continue
		}
		if a.Category() != cat {
			t.Errorf("agent for %s reports category %s", cat, a.Category())
		}
	}

	if _, err := r.Lookup(classify.Category("desktop")); err == nil {
		t.Error("Lookup(desktop) should fail")
	}

	if got := len(r.All()); got != 5 {
		t.Errorf("All() returned %d agents, want 5", got)
	}
}

// Placeholder totality: every bundle in every category renders cleanly from
// the mapping its category's inference produces.
func TestEveryBundleRendersFromInferredVars(t *testing.T) {
	store, err := bundle.Load()
	if err != nil {
		t.Fatal(err)
	}

	requests := []string{
		"create a REST API for users",
		"build me a todo web app",
		"blah blah blah",
		"",
	}

	for _, category := range store.Categories() {
		for _, b := range store.ByCategory(category) {
			for _, request := range requests {
				vars := infer.Infer(request, classify.Category(category))
				if _, _, err := renderBundle(b, vars); err != nil {
					t.Errorf("bundle %s/%s with request %q: %v", category, b.Name, request, err)
				}
			}
		}
	}
}

func TestUnusedVariableWarningsAreSorted(t *testing.T) {
	store, err := bundle.Load()
	if err != nil {
		t.Fatal(err)
	}
	b, err := store.Get("web", "flask_app")
	if err != nil {
		t.Fatal(err)
	}

	vars := infer.Infer("build me a todo web app", classify.Web)
	vars["z_extra"] = "1"
	vars["a_extra"] = "1"
	vars["m_extra"] = "1"

	for i := 0; i < 5; i++ {
		_, warnings, err := renderBundle(b, vars)
		if err != nil {
			t.Fatal(err)
		}
		if len(warnings) != 3 {
			t.Fatalf("got %d warnings, want 3: %v", len(warnings), warnings)
		}
		for i, name := range []string{"a_extra", "m_extra", "z_extra"} {
			if !strings.Contains(warnings[i], name) {
				t.Errorf("warnings[%d] = %q, want mention of %q", i, warnings[i], name)
			}
		}
	}
}

func TestAPIAgentScenario(t *testing.T) {
	r := newRegistry(t)
	a, err := r.Lookup(classify.API)
	if err != nil {
		t.Fatal(err)
	}

	files, _, err := a.Render("create a REST API for users")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	byPath := map[string]string{}
	for _, f := range files {
		byPath[f.Path] = f.Content
	}

	main, ok := byPath["main.py"]
	if !ok {
		t.Fatalf("main.py not rendered, got %v", paths(files))
	}
	if !strings.Contains(main, `@app.get("/users")`) {
		t.Error("main.py missing /users route")
	}

	models, ok := byPath["models.py"]
	if !ok {
		t.Fatal("models.py not rendered")
	}
	if !strings.Contains(models, "class User(") {
		t.Error("models.py missing User model class")
	}
	if strings.Contains(models, "${") {
		t.Error("models.py contains unrendered placeholders")
	}
}

func TestDataAgentBundleSelection(t *testing.T) {
	a := &dataAgent{}
	cases := []struct {
		request string
		want    string
	}{
		{"visualize my sales numbers", "data_visualizer"},
		{"plot a graph of revenue", "data_visualizer"},
		{"clean up this csv", "csv_processor"},
		{"statistical analysis of measurements", "pandas_analysis"},
	}
	for _, tc := range cases {
		if got := a.bundleFor(tc.request); got != tc.want {
			t.Errorf("bundleFor(%q) = %q, want %q", tc.request, got, tc.want)
		}
	}
}

func TestScriptAgentBundleSelection(t *testing.T) {
	a := &scriptAgent{}
	cases := []struct {
		request string
		want    string
	}{
		{"rename my photos", "file_processor"},
		{"run a backup on a cron schedule", "scheduler"},
		{"do something", "basic_script"},
	}
	for _, tc := range cases {
		if got := a.bundleFor(tc.request); got != tc.want {
			t.Errorf("bundleFor(%q) = %q, want %q", tc.request, got, tc.want)
		}
	}
}

func TestAgentsRenderDeterministically(t *testing.T) {
	r := newRegistry(t)
	for _, a := range r.All() {
		first, _, err := a.Render("make me a thing for books")
		if err != nil {
			t.Fatalf("agent %s: %v", a.Name(), err)
		}
		again, _, err := a.Render("make me a thing for books")
		if err != nil {
			t.Fatalf("agent %s: %v", a.Name(), err)
		}
		if len(first) != len(again) {
			t.Fatalf("agent %s: file count differs", a.Name())
		}
		for i := range first {
			if first[i] != again[i] {
				t.Errorf("agent %s: file %s not byte-identical across runs", a.Name(), first[i].Path)
			}
		}
	}
}

func TestPlansMentionAgentName(t *testing.T) {
	r := newRegistry(t)
	for _, a := range r.All() {
		steps := a.Plan("make me a thing")
		if len(steps) == 0 {
			t.Errorf("agent %s: empty plan", a.Name())
			continue
		}
		if !strings.Contains(steps[0], "["+a.Name()+"]") {
			t.Errorf("agent %s: plan step %q missing tag", a.Name(), steps[0])
		}
	}
}

func paths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}
