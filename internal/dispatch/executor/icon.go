package executor

import (
	"fmt"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/dispatch/executor/iconstatus"
	"github.com/espanso/espanso-core/internal/event"
)

// IconRenderer updates the tray icon's appearance. ColorHex is the
// #RRGGBB tint iconstatus.Tint computed for status; drivers without a
// colorable tray icon are free to ignore it and key off status alone.
type IconRenderer interface {
	SetIcon(status event.IconStatus, colorHex string) error
}

// Icon is the Executor for event.IconStatusChange.
type Icon struct {
	renderer IconRenderer
}

// NewIcon builds an Icon executor backed by renderer.
func NewIcon(renderer IconRenderer) *Icon {
	return &Icon{renderer: renderer}
}

// Execute implements dispatch.Executor.
func (e *Icon) Execute(ev event.Type) dispatch.Result {
	c, ok := ev.(event.IconStatusChange)
	if !ok {
		return dispatch.Error(fmt.Errorf("icon executor: unexpected event %T", ev))
	}
	if err := e.renderer.SetIcon(c.Status, iconstatus.Tint(c.Status)); err != nil {
		return dispatch.Error(err)
	}
	return dispatch.OK()
}
