package builtin

import (
	"github.com/google/uuid"

	"github.com/espanso/espanso-core/internal/event"
)

// Action produces the event a built-in match causes, given the current
// Context. Errors surface as a ProcessingError carrying a fresh trace id
// (independent of the ordering-critical SourceID) so a user reporting the
// failure has something to correlate against the logs.
type Action func(ctx Context) event.Type

// BuiltIn is one entry in the built-in catalog.
type BuiltIn struct {
	ID       event.MatchID
	Label    string
	Triggers []string

	// Hotkey, if HasHotkey, is the config-defined hotkey name that
	// invokes this built-in (e.g. "search" for open-search-bar). Built-ins
	// without a default binding leave HasHotkey false.
	Hotkey    string
	HasHotkey bool

	Action Action
}

// Reserved built-in ids, in catalog order. Declared explicitly rather than
// computed from an index so inserting a new built-in later can extend the
// range without renumbering existing ones.
const (
	idPasteActiveConfigInfo = event.BuiltinIDBase + iota
	idPasteActiveAppInfo
	idShowActiveConfigInfo
	idShowActiveAppInfo
	idShowLogs
	idExit
	idRestart
	idOpenSearchBar
)

// SearchOptions configures the one built-in the original implementation
// includes conditionally: open-search-bar only exists when the user
// configured a search trigger or shortcut (espanso/src/cli/worker/builtin/
// mod.rs: get_builtin_matches).
type SearchOptions struct {
	Trigger    string
	HasTrigger bool
	Hotkey     string
	HasHotkey  bool
}

// Catalog returns the full built-in match list, matching
// espanso/src/cli/worker/builtin/mod.rs's get_builtin_matches: the seven
// debug/process built-ins unconditionally, plus open-search-bar only when
// search is configured.
func Catalog(search SearchOptions) []BuiltIn {
	matches := []BuiltIn{
		{
			ID:     idPasteActiveConfigInfo,
			Label:  "Paste active config info",
			Action: pasteActiveConfigInfo,
		},
		{
			ID:     idPasteActiveAppInfo,
			Label:  "Paste active app info",
			Action: pasteActiveAppInfo,
		},
		{
			ID:     idShowActiveConfigInfo,
			Label:  "Show active config info",
			Action: showActiveConfigInfo,
		},
		{
			ID:     idShowActiveAppInfo,
			Label:  "Show active app info",
			Action: showActiveAppInfo,
		},
		{
			ID:     idShowLogs,
			Label:  "Show logs",
			Action: showLogs,
		},
		{
			ID:     idExit,
			Label:  "Exit espanso",
			Action: exitAllProcesses,
		},
		{
			ID:     idRestart,
			Label:  "Restart espanso",
			Action: restartWorker,
		},
	}

	if search.HasTrigger || search.HasHotkey {
		entry := BuiltIn{
			ID:     idOpenSearchBar,
			Label:  "Open search bar",
			Action: openSearchBar,
		}
		if search.HasTrigger {
			entry.Triggers = []string{search.Trigger}
		}
		if search.HasHotkey {
			entry.Hotkey, entry.HasHotkey = search.Hotkey, true
		}
		matches = append(matches, entry)
	}

	return matches
}

// IsBuiltin reports whether id falls in the reserved built-in range.
func IsBuiltin(id event.MatchID) bool {
	return id >= event.BuiltinIDBase
}

func pasteActiveConfigInfo(ctx Context) event.Type {
	info, err := ctx.ActiveConfigInfo()
	if err != nil {
		return processingError(err)
	}
	return event.TextInject{Text: info}
}

func pasteActiveAppInfo(ctx Context) event.Type {
	info, err := ctx.ActiveAppInfo()
	if err != nil {
		return processingError(err)
	}
	return event.TextInject{Text: info}
}

func showActiveConfigInfo(ctx Context) event.Type {
	info, err := ctx.ActiveConfigInfo()
	if err != nil {
		return processingError(err)
	}
	return event.ShowText{Title: "Active config", Body: info}
}

func showActiveAppInfo(ctx Context) event.Type {
	info, err := ctx.ActiveAppInfo()
	if err != nil {
		return processingError(err)
	}
	return event.ShowText{Title: "Active application", Body: info}
}

func showLogs(Context) event.Type {
	return event.ShowLogs{}
}

func exitAllProcesses(Context) event.Type {
	return event.ExitRequested{Mode: event.ExitAllProcesses}
}

func restartWorker(Context) event.Type {
	return event.ExitRequested{Mode: event.RestartWorker}
}

func openSearchBar(Context) event.Type {
	return event.ShowSearchBar{}
}

func processingError(err error) event.Type {
	return event.ProcessingError{
		Kind:    event.ErrKindOther,
		Message: err.Error(),
		TraceID: uuid.NewString(),
	}
}
