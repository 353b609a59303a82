package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/event"
)

// MenuRenderer displays the tray icon's context menu.
type MenuRenderer interface {
	ShowMenu(items []event.MenuItem) error
}

// ContextMenu is the Executor for event.ShowContextMenu.
type ContextMenu struct {
	renderer MenuRenderer
}

// NewContextMenu builds a ContextMenu executor backed by renderer.
func NewContextMenu(renderer MenuRenderer) *ContextMenu {
	return &ContextMenu{renderer: renderer}
}

// Execute implements dispatch.Executor.
func (e *ContextMenu) Execute(ev event.Type) dispatch.Result {
	m, ok := ev.(event.ShowContextMenu)
	if !ok {
		return dispatch.Error(fmt.Errorf("context-menu executor: unexpected event %T", ev))
	}
	if err := e.renderer.ShowMenu(m.Items); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
