package termsim

import "github.com/espanso/espanso-core/internal/event"

// InjectText implements executor.TextInjector: it appends text to the
// simulated focused-application buffer at the cursor and logs the action.
// mode is recorded but not otherwise distinguished; a real driver would
// pick between synthesizing keystrokes and a clipboard paste.
func (d *Driver) InjectText(text string, mode event.InjectMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertAtCursor(text)
	d.appendLog("inject text (" + modeLabel(mode) + "): " + text)
	d.render()
	return nil
}

// InjectHTML implements executor.HtmlInjector. termsim has no rich-text
// surface, so it injects fallback instead, matching what a plain-text-only
// target application would see.
func (d *Driver) InjectHTML(html, fallback string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertAtCursor(fallback)
	d.appendLog("inject html (fallback): " + fallback)
	d.render()
	return nil
}

// InjectImage implements executor.ImageInjector by logging the path; a
// terminal has no image surface.
func (d *Driver) InjectImage(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appendLog("inject image: " + path)
	d.render()
	return nil
}

// InjectKeys implements executor.KeyInjector: each key edits the buffer the
// way the real key would (Backspace deletes, arrows move the cursor,
// anything else is logged as a structural key press with no text effect).
func (d *Driver) InjectKeys(keys []event.Key) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, k := range keys {
		switch k {
		case event.KeyBackspace:
			d.backspaceAtCursor()
		case event.KeyLeftArrow:
			if d.cursor > 0 {
				d.cursor--
			}
		case event.KeyRightArrow:
			if d.cursor < len(d.buffer) {
				d.cursor++
			}
		default:
			d.appendLog("inject key: " + string(k))
		}
	}
	d.render()
	return nil
}

func (d *Driver) insertAtCursor(text string) {
	runes := []rune(text)
	buf := make([]rune, 0, len(d.buffer)+len(runes))
	buf = append(buf, d.buffer[:d.cursor]...)
	buf = append(buf, runes...)
	buf = append(buf, d.buffer[d.cursor:]...)
	d.buffer = buf
	d.cursor += len(runes)
}

func (d *Driver) backspaceAtCursor() {
	if d.cursor == 0 {
		return
	}
	d.buffer = append(d.buffer[:d.cursor-1], d.buffer[d.cursor:]...)
	d.cursor--
}

func (d *Driver) appendLog(line string) {
	d.log = append(d.log, line)
}

func modeLabel(mode event.InjectMode) string {
	switch mode {
	case event.ModeEvent:
		return "event"
	case event.ModeClipboard:
		return "clipboard"
	default:
		return "auto"
	}
}
