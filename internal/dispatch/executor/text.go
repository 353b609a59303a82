package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// TextInjector types plain text into the focused application, choosing
// between event-based keystroke injection and clipboard paste.
type TextInjector interface {
	InjectText(text string, mode event.InjectMode) error
}

// Text is the Executor for event.TextInject.
type Text struct {
	injector TextInjector
}

// NewText builds a Text executor backed by injector.
func NewText(injector TextInjector) *Text {
	return &Text{injector: injector}
}

// Execute implements dispatch.Executor.
func (e *Text) Execute(ev event.Type) dispatch.Result {
	t, ok := ev.(event.TextInject)
	if !ok {
		return dispatch.Error(fmt.Errorf("text executor: unexpected event %T", ev))
	}
	mode := event.ModeAuto
	if t.HasForceMode {
		mode = t.ForceMode
	}
	if err := e.injector.InjectText(t.Text, mode); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
