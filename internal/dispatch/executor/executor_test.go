package executor_test

import (
	"errors"
	"testing"

	"github.com/espanso/espanso-core/internal/dispatch"
	"github.com/espanso/espanso-core/internal/dispatch/executor"
	"github.com/espanso/espanso-core/internal/event"
)

type fakeTextInjector struct {
	gotText string
	gotMode event.InjectMode
	err     error
}

func (f *fakeTextInjector) InjectText(text string, mode event.InjectMode) error {
	f.gotText, f.gotMode = text, mode
	return f.err
}

func TestText_InjectsWithAutoModeByDefault(t *testing.T) {
	fake := &fakeTextInjector{}
	e := executor.NewText(fake)
	result := e.Execute(event.TextInject{Text: "hello"})
	if !result.IsOK() {
		t.Fatalf("expected OK, got %v (%v)", result.Status, result.Err)
	}
	if fake.gotText != "hello" || fake.gotMode != event.ModeAuto {
		t.Fatalf("unexpected injector call: %q mode=%v", fake.gotText, fake.gotMode)
	}
}

func TestText_HonorsForceMode(t *testing.T) {
	fake := &fakeTextInjector{}
	e := executor.NewText(fake)
	e.Execute(event.TextInject{Text: "hi", ForceMode: event.ModeClipboard, HasForceMode: true})
	if fake.gotMode != event.ModeClipboard {
		t.Fatalf("expected ModeClipboard, got %v", fake.gotMode)
	}
}

func TestText_WrapsInjectorError(t *testing.T) {
	fake := &fakeTextInjector{err: errors.New("boom")}
	e := executor.NewText(fake)
	result := e.Execute(event.TextInject{Text: "hi"})
	if !result.IsError() || !errors.Is(result.Err, fake.err) {
		t.Fatalf("expected wrapped injector error, got %v", result.Err)
	}
}

func TestText_RejectsWrongEventType(t *testing.T) {
	e := executor.NewText(&fakeTextInjector{})
	if !e.Execute(event.ShowLogs{}).IsError() {
		t.Fatal("expected error for mismatched event type")
	}
}

type fakeHtmlInjector struct{ gotHTML, gotFallback string }

func (f *fakeHtmlInjector) InjectHTML(html, fallback string) error {
	f.gotHTML, f.gotFallback = html, fallback
	return nil
}

func TestHtml_InjectsHTMLAndFallback(t *testing.T) {
	fake := &fakeHtmlInjector{}
	e := executor.NewHtml(fake)
	result := e.Execute(event.HtmlInject{HTML: "<b>x</b>", Fallback: "x"})
	if !result.IsOK() || fake.gotHTML != "<b>x</b>" || fake.gotFallback != "x" {
		t.Fatalf("unexpected result: %v %#v", result, fake)
	}
}

type fakeImageInjector struct{ gotPath string }

func (f *fakeImageInjector) InjectImage(path string) error {
	f.gotPath = path
	return nil
}

func TestImage_InjectsResolvedPath(t *testing.T) {
	fake := &fakeImageInjector{}
	e := executor.NewImage(fake)
	result := e.Execute(event.ImageInject{Path: "/abs/pic.png"})
	if !result.IsOK() || fake.gotPath != "/abs/pic.png" {
		t.Fatalf("unexpected result: %v %#v", result, fake)
	}
}

type fakeKeyInjector struct{ gotKeys []event.Key }

func (f *fakeKeyInjector) InjectKeys(keys []event.Key) error {
	f.gotKeys = keys
	return nil
}

func TestKeySequence_InjectsKeys(t *testing.T) {
	fake := &fakeKeyInjector{}
	e := executor.NewKeySequence(fake)
	keys := []event.Key{event.KeyBackspace, event.KeyBackspace}
	result := e.Execute(event.KeySequenceInject{Keys: keys})
	if !result.IsOK() || len(fake.gotKeys) != 2 {
		t.Fatalf("unexpected result: %v %#v", result, fake.gotKeys)
	}
}

func TestKeySequence_EmptyKeysIsNoOp(t *testing.T) {
	fake := &fakeKeyInjector{}
	e := executor.NewKeySequence(fake)
	result := e.Execute(event.KeySequenceInject{})
	if result.Status != dispatch.StatusNoOp {
		t.Fatalf("expected StatusNoOp, got %v", result.Status)
	}
	if fake.gotKeys != nil {
		t.Fatal("expected injector not to be called for an empty sequence")
	}
}

type fakeMenuRenderer struct{ gotItems []event.MenuItem }

func (f *fakeMenuRenderer) ShowMenu(items []event.MenuItem) error {
	f.gotItems = items
	return nil
}

func TestContextMenu_ShowsItems(t *testing.T) {
	fake := &fakeMenuRenderer{}
	e := executor.NewContextMenu(fake)
	items := []event.MenuItem{{ID: 1, Label: "Disable"}}
	result := e.Execute(event.ShowContextMenu{Items: items})
	if !result.IsOK() || len(fake.gotItems) != 1 {
		t.Fatalf("unexpected result: %v %#v", result, fake.gotItems)
	}
}

type fakeIconRenderer struct {
	gotStatus event.IconStatus
	gotColor  string
}

func (f *fakeIconRenderer) SetIcon(status event.IconStatus, colorHex string) error {
	f.gotStatus, f.gotColor = status, colorHex
	return nil
}

func TestIcon_SetsStatusAndTint(t *testing.T) {
	fake := &fakeIconRenderer{}
	e := executor.NewIcon(fake)
	result := e.Execute(event.IconStatusChange{Status: event.IconDisabled})
	if !result.IsOK() || fake.gotStatus != event.IconDisabled {
		t.Fatalf("unexpected result: %v %#v", result, fake)
	}
	if fake.gotColor == "" || fake.gotColor[0] != '#' {
		t.Fatalf("expected a hex tint to be passed through, got %q", fake.gotColor)
	}
}

type fakeTextUIPresenter struct {
	shownTitle, shownBody string
	logsShown             bool
}

func (f *fakeTextUIPresenter) ShowText(title, body string) error {
	f.shownTitle, f.shownBody = title, body
	return nil
}

func (f *fakeTextUIPresenter) ShowLogFile() error {
	f.logsShown = true
	return nil
}

func TestTextUI_RoutesShowTextAndShowLogs(t *testing.T) {
	fake := &fakeTextUIPresenter{}
	e := executor.NewTextUI(fake)

	if !e.Execute(event.ShowText{Title: "t", Body: "b"}).IsOK() || fake.shownTitle != "t" {
		t.Fatal("expected ShowText to reach the presenter")
	}
	if !e.Execute(event.ShowLogs{}).IsOK() || !fake.logsShown {
		t.Fatal("expected ShowLogs to reach the presenter")
	}
}

type fakeSecureInputManager struct{ troubleshotShown, autofixLaunched bool }

func (f *fakeSecureInputManager) ShowTroubleshoot() error {
	f.troubleshotShown = true
	return nil
}

func (f *fakeSecureInputManager) LaunchAutofix() error {
	f.autofixLaunched = true
	return nil
}

func TestSecureInput_RoutesBothEvents(t *testing.T) {
	fake := &fakeSecureInputManager{}
	e := executor.NewSecureInput(fake)

	if !e.Execute(event.ShowSecureInputTroubleshoot{}).IsOK() || !fake.troubleshotShown {
		t.Fatal("expected troubleshoot to be shown")
	}
	if !e.Execute(event.LaunchSecureInputAutofix{}).IsOK() || !fake.autofixLaunched {
		t.Fatal("expected autofix to be launched")
	}
}

type fakeConfigFolderOpener struct{ opened bool }

func (f *fakeConfigFolderOpener) OpenConfigFolder() error {
	f.opened = true
	return nil
}

func TestOpenConfig_OpensFolder(t *testing.T) {
	fake := &fakeConfigFolderOpener{}
	e := executor.NewOpenConfig(fake)
	if !e.Execute(event.ShowConfigFolder{}).IsOK() || !fake.opened {
		t.Fatal("expected config folder to be opened")
	}
}
