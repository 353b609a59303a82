package middleware

import "github.com/espanso/espanso-core/internal/event"

// Context menu item ids dispatched back as ContextMenuClicked.ID.
const (
	MenuItemToggleEnabled = iota + 1
	MenuItemOpenSearch
	MenuItemShowLogs
	MenuItemShowConfigFolder
	MenuItemSecureInputExplain
	MenuItemSecureInputAutofix
	MenuItemReload
	MenuItemExit
)

// ContextMenu is stage 17: it renders the tray icon's context menu from
// the current (enabled, secure-input) state on TrayIconClicked, and
// translates a ContextMenuClicked reply into the corresponding control
// event (spec §4.2 step 17).
type ContextMenu struct {
	enabled     bool
	secureInput bool
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{enabled: true}
}

func (*ContextMenu) Name() string { return "ContextMenu" }

func (m *ContextMenu) Next(ev event.Event, _ Dispatch) event.Type {
	switch t := ev.Type.(type) {
	case event.Enabled:
		m.enabled = true
		return ev.Type
	case event.Disabled:
		m.enabled = false
		return ev.Type
	case event.SecureInputEnabled:
		m.secureInput = true
		return ev.Type
	case event.SecureInputDisabled:
		m.secureInput = false
		return ev.Type
	case event.TrayIconClicked:
		return event.ShowContextMenu{Items: m.buildMenu()}
	case event.ContextMenuClicked:
		return m.handleClick(t.ID)
	default:
		return ev.Type
	}
}

func (m *ContextMenu) buildMenu() []event.MenuItem {
	toggleLabel := "Disable"
	if !m.enabled {
		toggleLabel = "Enable"
	}
	items := []event.MenuItem{
		{ID: MenuItemToggleEnabled, Label: toggleLabel},
		{ID: MenuItemOpenSearch, Label: "Search"},
		{ID: MenuItemShowLogs, Label: "Show logs"},
		{ID: MenuItemShowConfigFolder, Label: "Open config folder"},
		{ID: MenuItemReload, Label: "Reload config"},
	}
	if m.secureInput {
		items = append(items,
			event.MenuItem{ID: MenuItemSecureInputExplain, Label: "Why is secure input blocking expansion?"},
			event.MenuItem{ID: MenuItemSecureInputAutofix, Label: "Attempt to fix secure input"},
		)
	}
	items = append(items, event.MenuItem{ID: MenuItemExit, Label: "Exit"})
	return items
}

func (m *ContextMenu) handleClick(id int) event.Type {
	switch id {
	case MenuItemToggleEnabled:
		if m.enabled {
			return event.DisableRequest{}
		}
		return event.EnableRequest{}
	case MenuItemOpenSearch:
		return event.ShowSearchBar{}
	case MenuItemShowLogs:
		return event.ShowLogs{}
	case MenuItemShowConfigFolder:
		return event.ShowConfigFolder{}
	case MenuItemSecureInputExplain:
		return event.ShowSecureInputTroubleshoot{}
	case MenuItemSecureInputAutofix:
		return event.LaunchSecureInputAutofix{}
	case MenuItemReload:
		return event.ExitRequested{Mode: event.RestartWorker}
	case MenuItemExit:
		return event.ExitRequested{Mode: event.ExitAllProcesses}
	default:
		return event.NOOP{}
	}
}
