// Package executor implements the concrete dispatch.Executor values that
// turn each terminal event into an OS-level effect. Every executor wraps a
// narrow platform collaborator interface so the executors themselves stay
// free of platform-specific code; the collaborators are satisfied by the
// per-OS driver shims at the edge of the process.
package executor
