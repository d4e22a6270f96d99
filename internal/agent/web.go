package agent

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

// webAgent generates Flask web applications with an HTML template and CSS.
type webAgent struct {
	store *bundle.Store
}

func (a *webAgent) Name() string { return "web" }

func (a *webAgent) Description() string {
	return "Generates Flask web applications with HTML templates and CSS"
}

func (a *webAgent) Category() classify.Category { return classify.Web }

func (a *webAgent) Render(request string) ([]File, []string, error) {
	b, err := a.store.Get("web", "flask_app")
	if err != nil {
		return nil, nil, err
	}
	return renderBundle(b, infer.Infer(request, classify.Web))
}

func (a *webAgent) Plan(request string) []string {
	vars := infer.Infer(request, classify.Web)
	return []string{
		fmt.Sprintf("[web] Render Flask app %q: %s", vars[infer.VarAppName], vars[infer.VarDescription]),
		"[web] Generate app.py, templates/index.html, static/style.css, requirements.txt",
	}
}
