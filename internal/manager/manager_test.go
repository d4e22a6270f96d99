package manager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forgeworks-cli/forge/internal/agent"
	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/spf13/afero"
)

func newManager(t *testing.T, fsys afero.Fs) *Manager {
	t.Helper()
	store, err := bundle.Load()
	if err != nil {
		t.Fatalf("bundle.Load() error: %v", err)
	}
	return New(fsys, agent.NewRegistry(store), "out")
}

func TestHandleWritesProject(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := newManager(t, fsys)

	res, err := m.Handle(Request{Text: "create a REST API for users"})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	if res.Category != classify.API {
		t.Errorf("category = %s, want api", res.Category)
	}
	if res.Score == 0 {
		t.Error("score = 0, want nonzero")
	}
	if want := filepath.Join("out", "apis", "rest_api_user"); res.OutputDir != want {
		t.Errorf("output dir = %q, want %q", res.OutputDir, want)
	}

	for _, entry := range res.Manifest {
		full := filepath.Join(res.OutputDir, entry.Path)
		info, err := fsys.Stat(full)
		if err != nil {
			t.Errorf("manifest entry %s not on disk: %v", entry.Path, err)
			continue
		}
		if info.Size() != entry.Size {
			t.Errorf("%s: size %d on disk, %d in manifest", entry.Path, info.Size(), entry.Size)
		}
	}

	content, err := afero.ReadFile(fsys, filepath.Join(res.OutputDir, "main.py"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "/users") {
		t.Error("main.py missing /users routes")
	}
}

func TestHandleSecondRunGetsSuffix(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := newManager(t, fsys)

	first, err := m.Handle(Request{Text: "create a REST API for users"})
	if err != nil {
		t.Fatal(err)
	}
	firstMain, err := afero.ReadFile(fsys, filepath.Join(first.OutputDir, "main.py"))
	if err != nil {
		t.Fatal(err)
	}

	second, err := m.Handle(Request{Text: "create a REST API for users"})
	if err != nil {
		t.Fatal(err)
	}

	if second.OutputDir != first.OutputDir+"_2" {
		t.Errorf("second run dir = %q, want %q", second.OutputDir, first.OutputDir+"_2")
	}

	// First run's files untouched by the second.
	again, err := afero.ReadFile(fsys, filepath.Join(first.OutputDir, "main.py"))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(firstMain) {
		t.Error("second run modified the first run's files")
	}
}

func TestHandleDryRunEquivalence(t *testing.T) {
	dryFs := afero.NewMemMapFs()
	m := newManager(t, dryFs)

	dry, err := m.Handle(Request{Text: "build me a todo web app", DryRun: true})
	if err != nil {
		t.Fatalf("dry run error: %v", err)
	}
	if dry.OutputDir != "" {
		t.Errorf("dry run allocated %q, want no directory", dry.OutputDir)
	}
	if len(dry.Plan) == 0 {
		t.Error("dry run returned no plan")
	}

	// Zero filesystem mutation.
	exists, err := afero.DirExists(dryFs, "out")
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("dry run touched the filesystem")
	}

	actual, err := m.Handle(Request{Text: "build me a todo web app"})
	if err != nil {
		t.Fatalf("real run error: %v", err)
	}

	if len(dry.Manifest) != len(actual.Manifest) {
		t.Fatalf("dry manifest has %d entries, real has %d", len(dry.Manifest), len(actual.Manifest))
	}
	for i := range dry.Manifest {
		if dry.Manifest[i] != actual.Manifest[i] {
			t.Errorf("manifest entry %d: dry %+v, actual %+v", i, dry.Manifest[i], actual.Manifest[i])
		}
	}
}

func TestHandleKeywordFreeRequestStillGenerates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	m := newManager(t, fsys)

	res, err := m.Handle(Request{Text: "blah blah blah"})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if res.Category != classify.Script {
		t.Errorf("category = %s, want script", res.Category)
	}
	if len(res.Manifest) == 0 {
		t.Error("no files generated")
	}
	if !strings.HasPrefix(res.OutputDir, filepath.Join("out", "scripts")) {
		t.Errorf("output dir = %q, want under out/scripts", res.OutputDir)
	}
}

func TestHandleReportsWrittenFilesOnFault(t *testing.T) {
	base := afero.NewMemMapFs()
	fsys := afero.NewReadOnlyFs(base)
	m := newManager(t, fsys)

	_, err := m.Handle(Request{Text: "create a REST API for users"})
	if err == nil {
		t.Fatal("expected a filesystem fault")
	}

	var fault *Error
	if !errors.As(err, &fault) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if fault.Stage != StageWriting {
		t.Errorf("stage = %s, want %s", fault.Stage, StageWriting)
	}
}

// quotaFs allows a fixed number of file creations and then refuses further
// writes, leaving earlier files on disk.
type quotaFs struct {
	afero.Fs
	remaining int
}

func (q *quotaFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&os.O_CREATE != 0 {
		if q.remaining == 0 {
			return nil, fmt.Errorf("open %s: disk quota exceeded", name)
		}
		q.remaining--
	}
	return q.Fs.OpenFile(name, flag, perm)
}

func TestHandleFaultListsFilesWrittenSoFar(t *testing.T) {
	fsys := &quotaFs{Fs: afero.NewMemMapFs(), remaining: 1}
	m := newManager(t, fsys)

	_, err := m.Handle(Request{Text: "create a REST API for users"})
	if err == nil {
		t.Fatal("expected a filesystem fault")
	}

	var fault *Error
	if !errors.As(err, &fault) {
		t.Fatalf("err = %T, want *Error", err)
	}
	if fault.Stage != StageWriting {
		t.Errorf("stage = %s, want %s", fault.Stage, StageWriting)
	}
	if len(fault.Written) != 1 {
		t.Fatalf("Written = %+v, want exactly the one file that made it to disk", fault.Written)
	}

	entry := fault.Written[0]
	full := filepath.Join("out", "apis", "rest_api_user", entry.Path)
	info, statErr := fsys.Stat(full)
	if statErr != nil {
		t.Fatalf("written entry %s not on disk: %v", entry.Path, statErr)
	}
	if info.Size() != entry.Size {
		t.Errorf("%s: size %d on disk, %d in entry", entry.Path, info.Size(), entry.Size)
	}
	if !strings.Contains(fault.Error(), entry.Path) {
		t.Errorf("fault message %q does not name %s", fault.Error(), entry.Path)
	}
}

func TestHandleDeterministicOutput(t *testing.T) {
	renders := func() []Entry {
		m := newManager(t, afero.NewMemMapFs())
		res, err := m.Handle(Request{Text: "analyze this csv of sales", DryRun: true})
		if err != nil {
			t.Fatal(err)
		}
		return res.Manifest
	}

	first := renders()
	for i := 0; i < 3; i++ {
		got := renders()
		if len(got) != len(first) {
			t.Fatal("manifest length differs across runs")
		}
		for j := range got {
			if got[j] != first[j] {
				t.Errorf("run %d entry %d: %+v != %+v", i, j, got[j], first[j])
			}
		}
	}
}
