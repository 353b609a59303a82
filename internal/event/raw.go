package event

// Keyboard is a raw key event from a platform detector. Value carries the
// produced character, if the driver resolved one (HasValue distinguishes a
// genuinely empty string from "no character produced", e.g. for a bare
// modifier press).
type Keyboard struct {
	Key      Key
	Value    string
	HasValue bool
	Status   KeyStatus
	Variant  KeyVariant
	Code     uint32
}

func (Keyboard) eventType() {}

// Mouse is a raw mouse button event.
type Mouse struct {
	Button MouseButton
	Status KeyStatus
}

func (Mouse) eventType() {}

// HotKey fires when a platform-registered global hotkey is pressed.
type HotKey struct {
	ID int
}

func (HotKey) eventType() {}

// MatchExecRequest is an explicit external request to fire a specific match
// by id, bypassing trigger detection entirely (e.g. the CLI's "espanso
// match exec" or an IPC call from the search bar UI).
type MatchExecRequest struct {
	ID   MatchID
	Args map[string]string
}

func (MatchExecRequest) eventType() {}

// TrayIconClicked fires when the user clicks the tray icon.
type TrayIconClicked struct{}

func (TrayIconClicked) eventType() {}

// ContextMenuClicked fires when the user selects an item from the tray
// context menu.
type ContextMenuClicked struct {
	ID int
}

func (ContextMenuClicked) eventType() {}
