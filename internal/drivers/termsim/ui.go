package termsim

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/espanso/espanso-core/internal/event"
)

// ShowMenu implements executor.MenuRenderer by logging the menu items; a
// terminal demo has no popup surface to render one on.
func (d *Driver) ShowMenu(items []event.MenuItem) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendLog("context menu:")
	for _, item := range items {
		d.appendLog(fmt.Sprintf("  [%d] %s", item.ID, item.Label))
	}
	d.render()
	return nil
}

// OnMenuClick registers the callback invoked when the demo driver
// simulates a menu selection (tests drive this directly; there is no real
// popup to click in a terminal).
func (d *Driver) OnMenuClick(fn func(id int)) {
	d.mu.Lock()
	d.onMenuClick = fn
	d.mu.Unlock()
}

// SimulateMenuClick invokes the registered OnMenuClick callback, if any.
func (d *Driver) SimulateMenuClick(id int) {
	d.mu.Lock()
	fn := d.onMenuClick
	d.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}

// SetIcon implements executor.IconRenderer: the tray icon becomes a status
// line rendered at the top of the screen in the Lab-blended color tint.
func (d *Driver) SetIcon(status event.IconStatus, colorHex string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = fmt.Sprintf("[icon %s %s]", iconLabel(status), colorHex)
	d.render()
	return nil
}

func iconLabel(status event.IconStatus) string {
	switch status {
	case event.IconDisabled:
		return "disabled"
	case event.IconSecureInput:
		return "secure-input"
	default:
		return "normal"
	}
}

// ShowText implements executor.TextUIPresenter by appending the block to
// the log panel.
func (d *Driver) ShowText(title, body string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendLog("--- " + title + " ---")
	d.appendLog(body)
	d.render()
	return nil
}

// ShowLogFile implements executor.TextUIPresenter. The log panel already
// is the log; this just marks that it was explicitly requested.
func (d *Driver) ShowLogFile() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendLog("--- logs ---")
	d.render()
	return nil
}

// ShowTroubleshoot implements executor.SecureInputManager.
func (d *Driver) ShowTroubleshoot() error {
	return d.ShowText("Secure input", "macOS secure input is blocking key injection.")
}

// LaunchAutofix implements executor.SecureInputManager. termsim has
// nothing to fix; it only records that autofix was requested.
func (d *Driver) LaunchAutofix() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendLog("secure-input autofix requested")
	d.render()
	return nil
}

// OpenConfigFolder implements executor.ConfigFolderOpener by shelling out
// to the platform's file manager opener, targeting the path given to
// New. Best-effort: a headless demo environment has no file manager
// to receive it, so a failure here is a genuine error the executor
// surfaces, not one this package silently swallows.
func (d *Driver) OpenConfigFolder() error {
	cmd := openerCommand(d.configDir)
	if cmd == nil {
		return fmt.Errorf("termsim: no folder opener for GOOS %q", runtime.GOOS)
	}
	return cmd.Start()
}

func openerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("explorer", path)
	case "linux":
		return exec.Command("xdg-open", path)
	default:
		return nil
	}
}
