package agent

import (
	"fmt"
	"strings"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

// dataAgent generates data analysis scripts with pandas and matplotlib.
type dataAgent struct {
	store *bundle.Store
}

func (a *dataAgent) Name() string { return "data" }

func (a *dataAgent) Description() string {
	return "Generates data analysis scripts with pandas and matplotlib"
}

func (a *dataAgent) Category() classify.Category { return classify.Data }

// bundleFor picks the data bundle that best matches the request.
func (a *dataAgent) bundleFor(request string) string {
	lower := strings.ToLower(request)
	if containsAny(lower, "visuali", "chart", "plot", "graph") {
		return "data_visualizer"
	}
	if containsAny(lower, "csv", "process", "clean", "transform") {
		return "csv_processor"
	}
	return "pandas_analysis"
}

func (a *dataAgent) Render(request string) ([]File, []string, error) {
	b, err := a.store.Get("data", a.bundleFor(request))
	if err != nil {
		return nil, nil, err
	}
	return renderBundle(b, infer.Infer(request, classify.Data))
}

func (a *dataAgent) Plan(request string) []string {
	vars := infer.Infer(request, classify.Data)
	return []string{
		fmt.Sprintf("[data] Render %s script: %s", a.bundleFor(request), vars[infer.VarDescription]),
		"[data] Generate main.py, data/input.csv, requirements.txt",
	}
}
