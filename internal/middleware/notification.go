package middleware

import "github.com/espanso/espanso-core/internal/event"

// NotificationManager surfaces a transient message to the user (a desktop
// notification, typically).
type NotificationManager interface {
	Notify(title, body string)
}

// Notification is stage 19: a side-effect-only stage that calls the
// NotificationManager on status-change and error events, leaving every
// event it observes unchanged (spec §4.2 step 19).
type Notification struct {
	manager NotificationManager
}

func NewNotification(manager NotificationManager) *Notification {
	return &Notification{manager: manager}
}

func (*Notification) Name() string { return "Notification" }

func (n *Notification) Next(ev event.Event, _ Dispatch) event.Type {
	if n.manager == nil {
		return ev.Type
	}
	switch t := ev.Type.(type) {
	case event.Enabled:
		n.manager.Notify("espanso", "Enabled")
	case event.Disabled:
		n.manager.Notify("espanso", "Disabled")
	case event.SecureInputEnabled:
		n.manager.Notify("espanso", "Secure input is blocking expansion")
	case event.ProcessingError:
		n.manager.Notify("espanso error", t.Message)
	case event.RenderingError:
		n.manager.Notify("espanso rendering error", t.Message)
	}
	return ev.Type
}
