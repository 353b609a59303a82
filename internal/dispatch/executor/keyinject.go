package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// KeyInjector synthesizes a literal sequence of key presses, used for both
// trigger-compensation backspaces and cursor-hint arrow lefts.
type KeyInjector interface {
	InjectKeys(keys []event.Key) error
}

// KeySequence is the Executor for event.KeySequenceInject.
type KeySequence struct {
	injector KeyInjector
}

// NewKeySequence builds a KeySequence executor backed by injector.
func NewKeySequence(injector KeyInjector) *KeySequence {
	return &KeySequence{injector: injector}
}

// Execute implements dispatch.Executor.
func (e *KeySequence) Execute(ev event.Type) dispatch.Result {
	ks, ok := ev.(event.KeySequenceInject)
	if !ok {
		return dispatch.Error(fmt.Errorf("key-inject executor: unexpected event %T", ev))
	}
	if len(ks.Keys) == 0 {
		return dispatch.NoOp()
	}
	if err := e.injector.InjectKeys(ks.Keys); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
