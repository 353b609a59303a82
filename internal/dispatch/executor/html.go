package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// HtmlInjector pastes rich HTML into the focused application. Callers are
// expected to fall back to Fallback themselves when the target can't
// accept HTML (e.g. a terminal).
type HtmlInjector interface {
	InjectHTML(html, fallback string) error
}

// Html is the Executor for event.HtmlInject.
type Html struct {
	injector HtmlInjector
}

// NewHtml builds an Html executor backed by injector.
func NewHtml(injector HtmlInjector) *Html {
	return &Html{injector: injector}
}

// Execute implements dispatch.Executor.
func (e *Html) Execute(ev event.Type) dispatch.Result {
	h, ok := ev.(event.HtmlInject)
	if !ok {
		return dispatch.Error(fmt.Errorf("html executor: unexpected event %T", ev))
	}
	if err := e.injector.InjectHTML(h.HTML, h.Fallback); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
