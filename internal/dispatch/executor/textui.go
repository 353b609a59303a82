package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// TextUIPresenter displays informational text windows: the search-bar's
// companion "show text" panel and the raw log file viewer.
type TextUIPresenter interface {
	ShowText(title, body string) error
	ShowLogFile() error
}

// TextUI is the Executor for both event.ShowText and event.ShowLogs. It is
// registered twice, once per type name, against the same instance.
type TextUI struct {
	presenter TextUIPresenter
}

// NewTextUI builds a TextUI executor backed by presenter.
func NewTextUI(presenter TextUIPresenter) *TextUI {
	return &TextUI{presenter: presenter}
}

// Execute implements dispatch.Executor.
func (e *TextUI) Execute(ev event.Type) dispatch.Result {
	switch t := ev.(type) {
	case event.ShowText:
		if err := e.presenter.ShowText(t.Title, t.Body); err != nil {
			return dispatch.Error(err)
		}
		return dispatch.OK()
	case event.ShowLogs:
		if err := e.presenter.ShowLogFile(); err != nil {
			return dispatch.Error(err)
		}
		return dispatch.OK()
	default:
		return dispatch.Error(fmt.Errorf("text-ui executor: unexpected event %T", ev))
	}
}
