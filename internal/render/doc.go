// Package render implements the template engine: pure ${name} placeholder
// substitution with no conditionals, loops, or code execution. Missing
// variables are fatal with full context; supplied-but-unreferenced variables
// are returned as advisory warnings.
package render
