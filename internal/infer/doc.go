// Package infer derives the variable values templates need from the raw
// request text: a human-readable application name, a resource/model noun
// pair for API and data templates, and a default command name for CLI
// templates. The heuristics are deliberately naive word-level rules; the
// hard contract is that every derivable field has a deterministic fallback,
// so inference never fails and rendering can always proceed.
package infer
