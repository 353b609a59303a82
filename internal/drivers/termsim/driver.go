package termsim

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Driver owns the tcell screen shared by the keyboard Detector and every
// executor collaborator this package implements. There is exactly one
// Driver per demo process; internal state is guarded by mu since the
// Detector's poll goroutine and the engine goroutine (calling the
// executor methods) both touch the screen.
type Driver struct {
	mu     sync.Mutex
	screen tcell.Screen

	// buffer simulates the "focused application's" text content: text
	// injection appends to it, and it is what a show-active-app-info-style
	// built-in would read back in a real target application.
	buffer []rune
	cursor int

	log    []string
	status string

	configDir string

	onMenuClick func(id int)
}

// New creates a Driver over a fresh tcell screen without starting it.
func New(configDir string) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Driver{screen: screen, configDir: configDir}, nil
}

// Start initializes the screen: mouse and bracketed paste are enabled by
// default, matching the teacher's terminal backend.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.screen.Init(); err != nil {
		return err
	}
	d.screen.EnableMouse()
	d.screen.EnablePaste()
	d.render()
	return nil
}

// Stop tears down the screen.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.screen.Fini()
}

// Screen exposes the underlying tcell.Screen for Detector to poll.
func (d *Driver) Screen() tcell.Screen {
	return d.screen
}

// Buffer returns the simulated focused-application text, for tests and
// for builtin.Context's app-info summary.
func (d *Driver) Buffer() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return string(d.buffer)
}

// render redraws the log panel and status line. Callers must hold mu.
func (d *Driver) render() {
	width, height := d.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	d.screen.Clear()
	row := 0
	if d.status != "" {
		drawLine(d.screen, 0, row, width, d.status)
		row++
	}
	for _, line := range tail(d.log, height-row) {
		drawLine(d.screen, 0, row, width, line)
		row++
	}
	d.screen.Show()
}

func drawLine(screen tcell.Screen, x, y, width int, line string) {
	style := tcell.StyleDefault
	col := x
	for _, r := range line {
		if col >= width {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func tail(lines []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
