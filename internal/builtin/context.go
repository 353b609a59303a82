package builtin

// Context provides the information built-in actions need about the
// currently focused application and the active configuration, without
// coupling this package to how either is actually determined on a given
// platform.
type Context interface {
	// ActiveConfigInfo returns a human-readable summary of the config
	// active for the focused application (its path and any matching
	// app-specific overrides).
	ActiveConfigInfo() (string, error)

	// ActiveAppInfo returns a human-readable summary of the focused
	// application (title, executable, window class).
	ActiveAppInfo() (string, error)
}
