// Package config holds the tunable constants behind the platform-specific
// extraction heuristics: known term-code date overrides (e.g. "TT25"), the
// fixed end hour implied by "arrive by" phrasing, and the default event
// duration used when only a start time is found. Keeping these in a loadable
// table keeps the general heuristics honest and the special cases auditable.
package config
