// Package dispatch routes the terminal events produced by the middleware
// chain (TextInject, HtmlInject, ImageInject, KeySequenceInject,
// ShowContextMenu, IconStatusChange, ShowText, ShowLogs, ShowConfigFolder,
// ShowSecureInputTroubleshoot, LaunchSecureInputAutofix) to the executor
// responsible for turning it into an OS-level effect.
//
// # Architecture
//
// A Registry maps an event type name to an Executor. The Dispatcher looks
// up the event's type name, invokes the registered Executor, and (if
// configured) records timing and panic-recovery metrics for it.
//
// Executors live in the executor subpackage; each wraps a narrow platform
// collaborator interface (TextInjector, HtmlInjector, ImageInjector,
// KeyInjector, MenuRenderer, IconRenderer, TextUIPresenter,
// SecureInputManager, ConfigFolderOpener) so platform-specific code stays
// out of this package entirely.
//
// event.Exit is not dispatched through this package: the engine loop
// observes it directly and ends the cooperative loop before a dispatch
// would occur.
package dispatch
