package infer

// Filler words stripped before picking significant words for names and
// nouns. Includes request-type verbs ("build", "create") and generic
// project words ("app", "tool") that say nothing about the domain.
var fillerWords = map[string]bool{
	"build": true, "me": true, "a": true, "an": true, "the": true,
	"create": true, "make": true, "generate": true, "write": true,
	"for": true, "to": true, "with": true, "using": true, "that": true,
	"and": true, "app": true, "application": true, "tool": true,
	"script": true, "program": true, "please": true, "can": true,
	"you": true, "i": true, "want": true, "need": true, "some": true,
	"new": true, "my": true, "of": true, "in": true, "on": true,
	"simple": true, "basic": true, "small": true, "little": true,
}

// Keyword-ish words that classify a request but make poor resource nouns
// ("REST API for users" should yield "users", not "rest").
var categoryNoise = map[string]bool{
	"web": true, "website": true, "webapp": true, "html": true, "css": true,
	"page": true, "frontend": true, "dashboard": true, "site": true,
	"api": true, "rest": true, "restful": true, "crud": true, "endpoint": true,
	"endpoints": true, "route": true, "routes": true, "http": true,
	"json": true, "backend": true, "server": true, "microservice": true,
	"data": true, "csv": true, "dataset": true, "analysis": true,
	"chart": true, "charts": true, "plot": true, "plots": true,
	"graph": true, "graphs": true, "report": true, "cli": true,
	"command": true, "commands": true, "terminal": true, "flag": true,
	"flags": true, "argument": true, "arguments": true, "subcommand": true,
	"subcommands": true, "file": true, "files": true, "automation": true,
	"batch": true, "cron": true, "flask": true, "fastapi": true,
	"django": true, "pandas": true, "matplotlib": true, "argparse": true,
	"click": true, "management": true, "manager": true, "system": true,
	"service": true, "interface": true,
}

// Action verbs recognized when deriving a CLI command name. Gerunds in the
// request ("renaming") reduce to their stem before lookup.
var actionVerbs = map[string]bool{
	"rename": true, "convert": true, "backup": true, "clean": true,
	"download": true, "upload": true, "process": true, "merge": true,
	"split": true, "sync": true, "count": true, "search": true,
	"format": true, "resize": true, "compress": true, "encrypt": true,
	"decrypt": true, "scan": true, "sort": true, "copy": true,
	"move": true, "delete": true, "fetch": true, "parse": true,
	"monitor": true, "check": true, "list": true, "export": true,
	"import": true, "deploy": true, "organize": true, "archive": true,
	"validate": true, "extract": true, "transform": true, "filter": true,
	"manage": true, "track": true, "store": true,
}

// Request prefixes stripped when deriving the human-readable description.
var descriptionPrefixes = []string{
	"make a script to ",
	"make a ", "make an ",
	"create a ", "create an ",
	"build a ", "build an ",
	"build me a ", "build me an ",
	"write a ", "write an ",
	"generate a ", "generate an ",
}
