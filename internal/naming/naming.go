package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/forgeworks-cli/forge/internal/classify"
	"github.com/forgeworks-cli/forge/internal/infer"
	"github.com/spf13/afero"
)

// CategoryDir maps each category to the directory it populates under the
// output root.
var categoryDirs = map[classify.Category]string{
	classify.Web:    "web_apps",
	classify.API:    "apis",
	classify.Data:   "data_scripts",
	classify.CLI:    "cli_tools",
	classify.Script: "scripts",
}

// CategoryDir returns the per-category directory name under the output
// root. Unknown categories fall back to "scripts".
func CategoryDir(cat classify.Category) string {
	if dir, ok := categoryDirs[cat]; ok {
		return dir
	}
	return "scripts"
}

// maxSlugLen caps slug length so request essays still yield usable
// directory names.
const maxSlugLen = 60

// maxProbes bounds the collision probe; beyond this something is wrong with
// the output directory, not with the request.
const maxProbes = 1000

var (
	punctuation   = regexp.MustCompile(`[^\w\s-]`)
	separatorRuns = regexp.MustCompile(`[\s_-]+`)
)

// Slugify converts text to a filesystem-safe slug: lower-case, punctuation
// dropped, separator runs collapsed to a single underscore, trimmed, and
// length-capped.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = punctuation.ReplaceAllString(s, "")
	s = separatorRuns.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "_")
	}
	return s
}

// ProjectName derives a short directory name from the request: the first
// three significant words, singularized and joined with underscores.
// Falls back to "project" for word-free requests.
func ProjectName(request string) string {
	words := infer.Significant(request)
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		words[i] = infer.Singularize(w)
	}
	name := Slugify(strings.Join(words, "_"))
	if name == "" {
		return "project"
	}
	return name
}

// Allocate returns a unique output path root/categoryDir/<name[_N]> that
// does not exist at the moment of allocation. Collisions probe _2, _3, ...
// against what is currently on disk, first free slot wins. The caller must
// create the directory promptly; concurrent callers need their own
// serialization around allocate+create.
func Allocate(fsys afero.Fs, root string, cat classify.Category, request string) (string, error) {
	base := filepath.Join(root, CategoryDir(cat), ProjectName(request))
	if err := checkContainment(root, base); err != nil {
		return "", err
	}

	exists, err := afero.Exists(fsys, base)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", base, err)
	}
	if !exists {
		return base, nil
	}

	for counter := 2; counter <= maxProbes+1; counter++ {
		candidate := fmt.Sprintf("%s_%d", base, counter)
		exists, err := afero.Exists(fsys, candidate)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("too many duplicate projects (>%d) for %s", maxProbes, base)
}

// checkContainment rejects paths that escape the output root, which would
// indicate a slug bug rather than anything a user typed.
func checkContainment(root, candidate string) error {
	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return fmt.Errorf("resolving %s against %s: %w", candidate, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output path %s escapes root %s", candidate, root)
	}
	return nil
}
