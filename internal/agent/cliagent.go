package agent

import (
	"fmt"

	"github.com/forgeworks-cli/forge/internal/bundle"
	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
)

// cliAgent generates argparse command-line tools.
type cliAgent struct {
	store *bundle.Store
}

func (a *cliAgent) Name() string { return "cli" }

func (a *cliAgent) Description() string {
	return "Generates CLI tools using argparse"
}

func (a *cliAgent) Category() classify.Category { return classify.CLI }

func (a *cliAgent) Render(request string) ([]File, []string, error) {
	b, err := a.store.Get("cli", "argparse_tool")
	if err != nil {
		return nil, nil, err
	}
	return renderBundle(b, infer.Infer(request, classify.CLI))
}

func (a *cliAgent) Plan(request string) []string {
	vars := infer.Infer(request, classify.CLI)
	return []string{
		fmt.Sprintf("[cli] Render argparse tool with default command %q", vars[infer.VarCommand]),
		"[cli] Generate main.py, README.md",
	}
}
