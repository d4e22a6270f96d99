package agent

import (
	"fmt"
	"strings"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

// scriptAgent generates Python scripts for automation and file processing.
// It is also the fallback agent for requests nothing else matched.
type scriptAgent struct {
	store *bundle.Store
}

func (a *scriptAgent) Name() string { return "script" }

func (a *scriptAgent) Description() string {
	return "Generates Python scripts for automation and file processing"
}

func (a *scriptAgent) Category() classify.Category { return classify.Script }

// bundleFor picks the script bundle that best matches the request.
func (a *scriptAgent) bundleFor(request string) string {
	lower := strings.ToLower(request)
	if containsAny(lower, "file", "rename", "move", "copy", "process", "convert") {
		return "file_processor"
	}
	if containsAny(lower, "schedule", "cron", "interval", "periodic", "monitor") {
		return "scheduler"
	}
	return "basic_script"
}

func (a *scriptAgent) Render(request string) ([]File, []string, error) {
	b, err := a.store.Get("script", a.bundleFor(request))
	if err != nil {
		return nil, nil, err
	}
	return renderBundle(b, infer.Infer(request, classify.Script))
}

func (a *scriptAgent) Plan(request string) []string {
	vars := infer.Infer(request, classify.Script)
	return []string{
		fmt.Sprintf("[script] Render %s: %s", a.bundleFor(request), vars[infer.VarDescription]),
		"[script] Generate main.py",
	}
}
