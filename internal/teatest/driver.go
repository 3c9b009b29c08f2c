// Package teatest drives bubbletea models in tests without a tea.Program.
//
// Messages go straight to Update and any returned Cmds run inline, so a
// test sees the same state transitions the runtime would produce.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain bounds how many chained Cmds one message may trigger.
const maxDrain = 50

// cmdTimeout skips Cmds that block on timers, such as spinner ticks.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a model and tracks whether it asked to quit.
type Driver struct {
	t        *testing.T
	model    tea.Model
	quitting bool
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.drain(model.Init(), 0)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Model returns the latest model value.
func (d *Driver) Model() tea.Model { return d.model }

// Quitting reports whether a tea.Quit command was observed.
func (d *Driver) Quitting() bool { return d.quitting }

func (d *Driver) View() string { return d.model.View() }

// Send delivers msg and drains the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	d.deliver(msg, 0)
}

// Press sends one key message per name. Names follow tea.KeyMsg.String,
// so "left", "enter" and "ctrl+c" are special keys and anything else is
// typed as runes.
func (d *Driver) Press(keys ...string) {
	d.t.Helper()
	for _, k := range keys {
		d.Send(KeyMsg(k))
	}
}

// KeyMsg builds the tea.KeyMsg whose String() is name.
func KeyMsg(name string) tea.KeyMsg {
	for kt, s := range keyNames {
		if s == name {
			return tea.KeyMsg{Type: kt}
		}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var keyNames = map[tea.KeyType]string{
	tea.KeyLeft:   "left",
	tea.KeyRight:  "right",
	tea.KeyUp:     "up",
	tea.KeyDown:   "down",
	tea.KeyEnter:  "enter",
	tea.KeyEsc:    "esc",
	tea.KeyTab:    "tab",
	tea.KeyHome:   "home",
	tea.KeyEnd:    "end",
	tea.KeyCtrlC:  "ctrl+c",
	tea.KeyPgUp:   "pgup",
	tea.KeyPgDown: "pgdown",
}

func (d *Driver) deliver(msg tea.Msg, depth int) {
	if _, ok := msg.(tea.QuitMsg); ok {
		d.quitting = true
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			d.drain(cmd, depth+1)
		}
		return
	}
	updated, cmd := d.model.Update(msg)
	d.model = updated
	d.drain(cmd, depth+1)
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	if cmd == nil {
		return
	}
	if depth > maxDrain {
		d.t.Fatalf("teatest: command chain exceeded %d steps", maxDrain)
	}
	msg, ok := run(cmd)
	if !ok || msg == nil {
		return
	}
	d.deliver(msg, depth)
}

func run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
