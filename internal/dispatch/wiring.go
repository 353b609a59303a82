package dispatch

// Executors bundles one instance of each executor this package knows how
// to route to. RegisterAll binds each to its event type name(s) on d.
//
// TextUI and SecureInput each answer two event type names from the same
// instance (ShowText/ShowLogs, and ShowSecureInputTroubleshoot/
// LaunchSecureInputAutofix respectively).
type Executors struct {
	Text        Executor
	Html        Executor
	Image       Executor
	KeySequence Executor
	ContextMenu Executor
	Icon        Executor
	TextUI      Executor
	SecureInput Executor
	OpenConfig  Executor
}

// RegisterAll registers every non-nil executor in e against d. Leaving a
// field nil skips that event type, which will then fail dispatch with
// ErrNoExecutor if it's ever produced (useful on platforms that don't
// support a given effect, e.g. no secure-input concept outside macOS).
func (d *Dispatcher) RegisterAll(e Executors) {
	register := func(typeName string, ex Executor) {
		if ex != nil {
			d.Register(typeName, ex)
		}
	}
	register(TypeTextInject, e.Text)
	register(TypeHtmlInject, e.Html)
	register(TypeImageInject, e.Image)
	register(TypeKeySequenceInject, e.KeySequence)
	register(TypeShowContextMenu, e.ContextMenu)
	register(TypeIconStatusChange, e.Icon)
	register(TypeShowText, e.TextUI)
	register(TypeShowLogs, e.TextUI)
	register(TypeShowConfigFolder, e.OpenConfig)
	register(TypeShowSecureInputTroubleshoot, e.SecureInput)
	register(TypeLaunchSecureInputAutofix, e.SecureInput)
}
