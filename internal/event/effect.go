package event

// TriggerCompensation tells the Action middleware to emit the backspaces
// needed to erase what the user just typed for Trigger, short-circuited by
// LeftSeparator chars that should be preserved (see spec §8, "Trigger
// compensation with left_separator").
type TriggerCompensation struct {
	Trigger       string
	LeftSeparator string
	HasLeftSep    bool
}

func (TriggerCompensation) eventType() {}

// CursorHintCompensation tells the Action middleware to emit BackCount
// ArrowLeft presses after the body lands, per the `$|$` cursor hint.
type CursorHintCompensation struct {
	BackCount int
}

func (CursorHintCompensation) eventType() {}

// TextInject is a terminal event: inject Text into the focused application.
// ForceMode, when HasForceMode is true, overrides the default ModeProvider
// decision for this one injection (event-level keystrokes vs clipboard).
type TextInject struct {
	Text         string
	ForceMode    InjectMode
	HasForceMode bool
}

func (TextInject) eventType() {}

// InjectMode selects the text injection backend.
type InjectMode int

const (
	ModeAuto InjectMode = iota
	ModeEvent
	ModeClipboard
)

// HtmlInject injects rich HTML, falling back to plain text where the
// target application can't accept HTML.
type HtmlInject struct {
	HTML     string
	Fallback string
}

func (HtmlInject) eventType() {}

// MarkdownInject is converted to HtmlInject by the Markdown middleware.
type MarkdownInject struct {
	Markdown string
}

func (MarkdownInject) eventType() {}

// ImageInject injects the image at Path.
type ImageInject struct {
	Path string
}

func (ImageInject) eventType() {}

// KeySequenceInject injects a literal sequence of key presses (used both
// for compensation backspaces and for cursor-hint ArrowLefts).
type KeySequenceInject struct {
	Keys []Key
}

func (KeySequenceInject) eventType() {}

// ShowContextMenu asks the tray icon to display Items.
type ShowContextMenu struct {
	Items []MenuItem
}

func (ShowContextMenu) eventType() {}

// MenuItem is one entry in a context menu.
type MenuItem struct {
	ID    int
	Label string
}

// IconStatus is the set of tray icon states the IconHandler can render.
type IconStatus int

const (
	IconNormal IconStatus = iota
	IconDisabled
	IconSecureInput
)

// IconStatusChange tells the IconHandler to update the tray icon.
type IconStatusChange struct {
	Status IconStatus
}

func (IconStatusChange) eventType() {}

// ShowText asks the TextUIHandler to display a block of text.
type ShowText struct {
	Title string
	Body  string
}

func (ShowText) eventType() {}

// ShowLogs asks the TextUIHandler to display the log file.
type ShowLogs struct{}

func (ShowLogs) eventType() {}

// ShowConfigFolder asks the OS to open the config directory in a file
// manager.
type ShowConfigFolder struct{}

func (ShowConfigFolder) eventType() {}

// ShowSearchBar asks the UI to open the match search bar.
type ShowSearchBar struct{}

func (ShowSearchBar) eventType() {}

// ShowSecureInputTroubleshoot asks the SecureInputManager to explain why
// injection is blocked (macOS secure input).
type ShowSecureInputTroubleshoot struct{}

func (ShowSecureInputTroubleshoot) eventType() {}

// LaunchSecureInputAutofix asks the SecureInputManager to attempt an
// automatic fix for secure input blocking injection.
type LaunchSecureInputAutofix struct{}

func (LaunchSecureInputAutofix) eventType() {}
