// Package termsim is a terminal-emulated stand-in for the real platform
// drivers (X11/Wayland/Win32/Cocoa key-capture and injection, the system
// clipboard, the tray icon) that spec §1 places out of scope for the core.
// It backs the demo binary and the integration tests: Detector polls a
// tcell screen for raw key/mouse input and feeds it to the funnel exactly
// like a real OS detector would; Driver implements every executor
// collaborator interface in internal/dispatch/executor by rendering into
// the same screen instead of reaching an actual focused application.
package termsim
