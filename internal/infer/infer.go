package infer

import (
	"regexp"
	"strings"

	"github.com/forgeworks-cli/forge/internal/classify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vars is the placeholder name → value mapping handed to the template
// engine. It must cover every required placeholder of the bundles the
// agent will render for the chosen category.
type Vars map[string]string

// Well-known placeholder names shared across bundles.
const (
	VarAppName     = "app_name"
	VarDescription = "description"
	VarResource    = "resource"
	VarModel       = "model"
	VarCommand     = "command"
)

// Fallbacks used when nothing useful can be derived from the request.
const (
	fallbackAppName  = "Project"
	fallbackResource = "items"
	fallbackModel    = "Item"
	fallbackCommand  = "run"
)

var (
	titleCaser = cases.Title(language.English)
	nonLetter  = regexp.MustCompile(`[^a-z0-9\s_-]+`)
)

// Infer derives the variable mapping for a request and category. It never
// fails: every field has a deterministic fallback so rendering can always
// proceed.
func Infer(text string, category classify.Category) Vars {
	vars := Vars{
		VarAppName:     AppName(text),
		VarDescription: Description(text),
	}

	switch category {
	case classify.API:
		resource, model := ResourceNoun(text)
		vars[VarResource] = resource
		vars[VarModel] = model
	case classify.CLI, classify.Script:
		vars[VarCommand] = CommandName(text)
	}

	return vars
}

// Significant returns the request's words with filler stripped, lower-cased
// and punctuation-free, in original order.
func Significant(text string) []string {
	cleaned := nonLetter.ReplaceAllString(strings.ToLower(text), "")
	words := strings.Fields(cleaned)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !fillerWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// AppName derives a human-readable application name: up to three
// significant words, title-cased.
func AppName(text string) string {
	words := Significant(text)
	if len(words) == 0 {
		return fallbackAppName
	}
	if len(words) > 3 {
		words = words[:3]
	}
	return titleCaser.String(strings.Join(words, " "))
}

// Description strips leading request phrasing ("build me a ...") and
// capitalizes what remains.
func Description(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	for _, prefix := range descriptionPrefixes {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallbackAppName
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ResourceNoun picks the most plausible domain noun from the request and
// returns it as a plural resource name plus a singular, title-cased model
// name ("users" → "users", "User"). Falls back to a generic pair when no
// candidate survives the noise filters.
func ResourceNoun(text string) (resource, model string) {
	for _, w := range Significant(text) {
		if categoryNoise[w] || actionVerbs[w] || isGerund(w) {
			continue
		}
		singular := Singularize(w)
		return Pluralize(singular), titleCaser.String(singular)
	}
	return fallbackResource, fallbackModel
}

// CommandName derives a CLI default command from an action verb in the
// request ("renaming" → "rename"), falling back to "run".
func CommandName(text string) string {
	for _, w := range Significant(text) {
		if actionVerbs[w] {
			return w
		}
		if verb, ok := verbFromGerund(w); ok {
			return verb
		}
	}
	return fallbackCommand
}

// Singularize applies naive English singularization. Good enough for the
// resource nouns templates need; never touches short or uncountable-looking
// words.
func Singularize(word string) string {
	switch {
	case len(word) < 4:
		return word
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"), strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"), strings.HasSuffix(word, "ches"),
		strings.HasSuffix(word, "shes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ss"), strings.HasSuffix(word, "us"),
		strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	default:
		return word
	}
}

// Pluralize applies naive English pluralization, the inverse of Singularize
// for the common cases templates hit.
func Pluralize(word string) string {
	switch {
	case word == "":
		return word
	case strings.HasSuffix(word, "y") && !hasVowelBefore(word, len(word)-1):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}

func hasVowelBefore(word string, i int) bool {
	if i == 0 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(word[i-1]))
}

func isGerund(w string) bool {
	_, ok := verbFromGerund(w)
	return ok
}

// verbFromGerund reduces a gerund to a known action verb: "renaming" →
// "rename", "splitting" → "split", "sorting" → "sort".
func verbFromGerund(w string) (string, bool) {
	if !strings.HasSuffix(w, "ing") || len(w) < 6 {
		return "", false
	}
	stem := w[:len(w)-3]
	if actionVerbs[stem] {
		return stem, true
	}
	if actionVerbs[stem+"e"] {
		return stem + "e", true
	}
	// Doubled final consonant: "splitting" → "splitt" → "split".
	if len(stem) > 1 && stem[len(stem)-1] == stem[len(stem)-2] {
		if short := stem[:len(stem)-1]; actionVerbs[short] {
			return short, true
		}
	}
	return "", false
}
