// Package agent implements the five category specialists. Each agent owns
// its category's template bundles, runs variable inference for the request,
// and renders the chosen bundle into in-memory files. The Registry is the
// fixed category→agent dispatch table; a lookup miss there is an internal
// wiring bug, never a user error.
package agent
