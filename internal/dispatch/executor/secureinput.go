package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// SecureInputManager explains and attempts to resolve macOS secure input
// blocking event-based injection.
type SecureInputManager interface {
	ShowTroubleshoot() error
	LaunchAutofix() error
}

// SecureInput is the Executor for both event.ShowSecureInputTroubleshoot
// and event.LaunchSecureInputAutofix. It is registered twice, once per
// type name, against the same instance.
type SecureInput struct {
	manager SecureInputManager
}

// NewSecureInput builds a SecureInput executor backed by manager.
func NewSecureInput(manager SecureInputManager) *SecureInput {
	return &SecureInput{manager: manager}
}

// Execute implements dispatch.Executor.
func (e *SecureInput) Execute(ev event.Type) dispatch.Result {
	switch ev.(type) {
	case event.ShowSecureInputTroubleshoot:
		if err := e.manager.ShowTroubleshoot(); err != nil {
			return dispatch.Error(err)
		}
		return dispatch.OK()
	case event.LaunchSecureInputAutofix:
		if err := e.manager.LaunchAutofix(); err != nil {
			return dispatch.Error(err)
		}
		return dispatch.OK()
	default:
		return dispatch.Error(fmt.Errorf("secure-input executor: unexpected event %T", ev))
	}
}
