package classify

import (
	"regexp"
	"sort"
	"strings"
)

// Category is one of the five fixed project kinds a request can resolve to.
type Category string

const (
	Web    Category = "web"
	API    Category = "api"
	Data   Category = "data"
	CLI    Category = "cli"
	Script Category = "script"
)

// All returns the five categories in ranking priority order. Script comes
// first because it is the generalist category: it wins every tie, including
// the all-zero case, so a request with no recognizable keywords still lands
// somewhere useful. The remaining categories follow the keyword table order.
func All() []Category {
	return []Category{Script, Web, API, Data, CLI}
}

// overrideScore is the sentinel score assigned when the request names a
// technology explicitly, making the override obvious in ranked output.
const overrideScore = 100

// Keywords that match word prefixes rather than whole words, so that
// "automation" and "visualize"/"visualisation" all count.
var prefixKeywords = map[string]bool{
	"automat": true,
	"visuali": true,
}

// techOverride forces a category when the user names a concrete technology.
// Checked before keyword scoring: "use fastapi" beats any keyword tally.
type techOverride struct {
	pattern  *regexp.Regexp
	category Category
	tech     string
}

var techOverrides = []techOverride{
	{regexp.MustCompile(`\bfast\s*api\b`), API, "fastapi"},
	{regexp.MustCompile(`\bflask\b`), Web, "flask"},
	{regexp.MustCompile(`\bdjango\b`), Web, "flask"}, // closest stack we ship
	{regexp.MustCompile(`\bexpress\b`), API, "fastapi"},
	{regexp.MustCompile(`\bargparse\b`), CLI, "argparse"},
	{regexp.MustCompile(`\bclick\b`), CLI, "argparse"},
	{regexp.MustCompile(`\bpandas\b`), Data, "pandas"},
	{regexp.MustCompile(`\bmatplotlib\b`), Data, "matplotlib"},
}

// keywords maps each category to its keyword→weight table.
var keywords = map[Category]map[string]int{
	Web: {
		"web": 3, "website": 3, "html": 3, "flask": 4, "frontend": 3,
		"page": 2, "dashboard": 3, "template": 1, "css": 2, "static": 1,
		"form": 1, "ui": 2, "webapp": 4, "jinja": 2, "bootstrap": 2,
	},
	API: {
		"api": 4, "rest": 4, "endpoint": 3, "fastapi": 4, "crud": 3,
		"json": 2, "resource": 2, "route": 2, "http": 2, "microservice": 3,
		"backend": 2, "server": 1, "post": 1, "get": 1,
	},
	Data: {
		"data": 3, "csv": 4, "pandas": 4, "analysis": 3, "visuali": 3,
		"chart": 3, "plot": 3, "dataset": 3, "dataframe": 4, "excel": 3,
		"statistics": 3, "graph": 2, "report": 2, "matplotlib": 4,
	},
	CLI: {
		"cli": 4, "command": 3, "argparse": 4, "click": 4, "terminal": 3,
		"flag": 2, "argument": 2, "subcommand": 3, "option": 1,
		"command-line": 4, "interactive": 1,
	},
	Script: {
		"script": 3, "automat": 3, "file": 2, "rename": 2, "backup": 3,
		"batch": 2, "cron": 3, "schedule": 3, "process": 2, "convert": 2,
		"download": 2, "utility": 2, "helper": 2, "clean": 1, "monitor": 2,
	},
}

// Score is one entry of the ranked classification output.
type Score struct {
	Category Category
	Points   int
}

// Result is the outcome of classifying one request.
type Result struct {
	Category Category
	Points   int
	Ranked   []Score // all five categories, best first
	Tech     string  // non-empty when an explicit technology forced the pick
}

var nonWord = regexp.MustCompile(`[^a-z0-9_-]+`)

// Classify scores the request against each category's keyword table and
// returns the best match with the full ranked list. Classification never
// fails: a keyword-free request resolves to the script category via the
// tie-break ordering.
func Classify(request string) Result {
	text := strings.ToLower(request)

	for _, ov := range techOverrides {
		if ov.pattern.MatchString(text) {
			return overrideResult(ov)
		}
	}

	tokens := tokenize(text)
	points := make(map[Category]int, len(keywords))
	for cat, table := range keywords {
		points[cat] = scoreCategory(tokens, table)
	}

	ranked := rank(points)
	best := ranked[0]
	return Result{Category: best.Category, Points: best.Points, Ranked: ranked}
}

// tokenize case-folds and strips punctuation, returning the word list.
func tokenize(lower string) []string {
	normalized := nonWord.ReplaceAllString(lower, " ")
	return strings.Fields(normalized)
}

func scoreCategory(tokens []string, table map[string]int) int {
	total := 0
	for keyword, weight := range table {
		if matchesAny(tokens, keyword) {
			total += weight
		}
	}
	return total
}

func matchesAny(tokens []string, keyword string) bool {
	prefix := prefixKeywords[keyword]
	for _, tok := range tokens {
		if prefix {
			if strings.HasPrefix(tok, keyword) {
				return true
			}
			continue
		}
		if tok == keyword {
			return true
		}
	}
	return false
}

// rank orders all categories by score descending; ties resolve by the fixed
// priority order from All(), never by map iteration order.
func rank(points map[Category]int) []Score {
	priority := make(map[Category]int, len(points))
	ranked := make([]Score, 0, len(points))
	for i, cat := range All() {
		priority[cat] = i
		ranked = append(ranked, Score{Category: cat, Points: points[cat]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return priority[ranked[i].Category] < priority[ranked[j].Category]
	})
	return ranked
}

func overrideResult(ov techOverride) Result {
	ranked := make([]Score, 0, len(keywords))
	ranked = append(ranked, Score{Category: ov.category, Points: overrideScore})
	for _, cat := range All() {
		if cat != ov.category {
			ranked = append(ranked, Score{Category: cat})
		}
	}
	return Result{
		Category: ov.category,
		Points:   overrideScore,
		Ranked:   ranked,
		Tech:     ov.tech,
	}
}
