package agent

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

// apiAgent generates FastAPI REST services with CRUD endpoints.
type apiAgent struct {
	store *bundle.Store
}

func (a *apiAgent) Name() string { return "api" }

func (a *apiAgent) Description() string {
	return "Generates REST APIs with FastAPI and full CRUD endpoints"
}

func (a *apiAgent) Category() classify.Category { return classify.API }

func (a *apiAgent) Render(request string) ([]File, []string, error) {
	b, err := a.store.Get("api", "fastapi_crud")
	if err != nil {
		return nil, nil, err
	}
	return renderBundle(b, infer.Infer(request, classify.API))
}

func (a *apiAgent) Plan(request string) []string {
	vars := infer.Infer(request, classify.API)
	return []string{
		fmt.Sprintf("[api] Render FastAPI service with /%s routes and a %s model",
			vars[infer.VarResource], vars[infer.VarModel]),
		"[api] Generate main.py, models.py, requirements.txt",
	}
}
