package spectate

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// visitorTty implements tcell.Tty backed by a gliderlabs/ssh session.
// Every connected visitor gets their own visitorTty → tcell.Screen pair.
type visitorTty struct {
	session gossh.Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func() // resize callback registered by tcell
}

// newVisitorTty wraps an SSH session as a tcell Tty. pty holds the
// initial window size; winCh delivers subsequent resizes.
func newVisitorTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *visitorTty {
	return &visitorTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

// Read reads keyboard input from the visitor's stdin.
func (t *visitorTty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the visitor's terminal.
func (t *visitorTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the SSH channel.
func (t *visitorTty) Close() error { return t.session.Close() }

// Start is a no-op, the SSH channel is already open.
func (t *visitorTty) Start() error { return nil }

// Stop is a no-op, the channel is managed by the server handler.
func (t *visitorTty) Stop() error { return nil }

// Drain is a no-op, SSH flushes writes immediately.
func (t *visitorTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *visitorTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers a callback invoked on every window resize. It
// also starts a goroutine draining the window-change channel for the
// lifetime of the session.
func (t *visitorTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			localCb := t.cb
			t.mu.Unlock()
			if localCb != nil {
				localCb()
			}
		}
	}()
}
