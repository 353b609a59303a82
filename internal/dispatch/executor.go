package dispatch

import "github.com/espanso/espanso-core/internal/event"

// Executor performs the OS-level effect for one terminal event type.
type Executor interface {
	Execute(ev event.Type) Result
}

// ExecutorFunc adapts a plain function to the Executor interface.
type ExecutorFunc func(ev event.Type) Result

// Execute implements Executor.
func (f ExecutorFunc) Execute(ev event.Type) Result { return f(ev) }

// Type names of the terminal events this package routes. Registered
// executors are looked up by these names, matched against reflect.TypeOf
// of the dispatched event's dynamic type.
const (
	TypeTextInject                  = "TextInject"
	TypeHtmlInject                  = "HtmlInject"
	TypeImageInject                 = "ImageInject"
	TypeKeySequenceInject           = "KeySequenceInject"
	TypeShowContextMenu             = "ShowContextMenu"
	TypeIconStatusChange            = "IconStatusChange"
	TypeShowText                    = "ShowText"
	TypeShowLogs                    = "ShowLogs"
	TypeShowConfigFolder            = "ShowConfigFolder"
	TypeShowSecureInputTroubleshoot = "ShowSecureInputTroubleshoot"
	TypeLaunchSecureInputAutofix    = "LaunchSecureInputAutofix"
)
