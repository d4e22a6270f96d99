// Package classify scores a free-text request against fixed per-category
// keyword tables and picks the best-matching project category. The category
// set is closed (web, api, data, cli, script); ties resolve through a fixed
// priority order so classification is deterministic and never fails.
package classify
