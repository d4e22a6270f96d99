// Package manager orchestrates the request-to-artifact pipeline: it
// classifies the request, dispatches to the matching specialist agent,
// renders that agent's templates, allocates a collision-free output
// directory, and writes the result, returning a manifest of (path, size)
// entries. Dry-run mode runs the same pipeline up to the write boundary and
// returns an identical manifest with zero filesystem mutation.
package manager
