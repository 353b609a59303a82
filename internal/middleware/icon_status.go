package middleware

import "github.com/espanso/espanso-core/internal/event"

// IconStatus is stage 3: it folds Enabled/Disabled/SecureInputEnabled/
// SecureInputDisabled into an IconStatusChange event for the IconHandler
// collaborator, dispatched alongside the original event so that later
// stages (ContextMenu, Notification) still observe the status-change event
// itself (spec §4.2 step 3). It remembers secure-input status, since an
// Enabled event arriving while secure input is active must still report
// IconSecureInput rather than IconNormal.
type IconStatus struct {
	secureInput bool
}

func NewIconStatus() *IconStatus {
	return &IconStatus{}
}

func (*IconStatus) Name() string { return "IconStatus" }

func (m *IconStatus) Next(ev event.Event, dispatch Dispatch) event.Type {
	switch ev.Type.(type) {
	case event.SecureInputEnabled:
		m.secureInput = true
		m.emit(ev, dispatch, event.IconSecureInput)
	case event.SecureInputDisabled:
		m.secureInput = false
		m.emit(ev, dispatch, event.IconNormal)
	case event.Disabled:
		m.emit(ev, dispatch, event.IconDisabled)
	case event.Enabled:
		if m.secureInput {
			m.emit(ev, dispatch, event.IconSecureInput)
		} else {
			m.emit(ev, dispatch, event.IconNormal)
		}
	}
	return ev.Type
}

func (m *IconStatus) emit(ev event.Event, dispatch Dispatch, status event.IconStatus) {
	if dispatch == nil {
		return
	}
	dispatch(event.Event{SourceID: ev.SourceID, Type: event.IconStatusChange{Status: status}})
}
