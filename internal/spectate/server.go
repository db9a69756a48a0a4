// Package spectate serves a saved museum over SSH. Visitors browse the
// floors read-only: the exhibition is reconstructed from the save file
// on every connection, so the owner can keep playing while people look
// around the last saved state.
package spectate

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"

	"bot-atelier/assets"
	"bot-atelier/internal/render"
	"bot-atelier/internal/save"
)

// visitFPS is the render rate for a visitor session. Browsing is
// lightweight; it does not need the game's full frame rate.
const visitFPS = 10

// Server accepts SSH visitors and walks each through the saved museum.
type Server struct {
	addr     string
	signer   gossh.Signer
	savePath string
	log      *zap.Logger
}

func New(addr string, signer gossh.Signer, savePath string, log *zap.Logger) *Server {
	return &Server{addr: addr, signer: signer, savePath: savePath, log: log}
}

// ListenAndServe blocks serving visitors until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &gossh.Server{
		Addr:        s.addr,
		Handler:     s.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{s.signer},
	}
	s.log.Info("spectate server listening", zap.String("addr", s.addr))
	return srv.ListenAndServe()
}

// termMu protects os.Setenv("TERM") around screen creation; tcell reads
// the environment while building the terminfo screen.
var termMu sync.Mutex

// handleSession runs one visitor from connect to disconnect.
func (s *Server) handleSession(sess gossh.Session) {
	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "visiting requires a PTY. connect with: ssh -t <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range sess.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	tty := newVisitorTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	tower, rec, err := s.loadMuseum()
	if err != nil {
		fmt.Fprintf(sess, "museum unavailable: %v\n", err)
		return
	}

	s.log.Info("visitor connected", zap.String("user", sess.User()))
	s.runVisit(screen, tower, rec)
	s.log.Info("visitor left", zap.String("user", sess.User()))
}

// loadMuseum rebuilds the exhibition from the save file. A missing save
// presents the default empty museum rather than an error.
func (s *Server) loadMuseum() (*assets.Tower, *save.Record, error) {
	rec, err := save.Load(s.savePath)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		rec = assets.DefaultRecord()
	}

	tower := assets.BuildTower()
	tower.Rooms[assets.MaxFloor].AddFixture(assets.NewSpectatorWindow())
	for _, it := range rec.Inventory {
		p, err := assets.FromSave(it)
		if err != nil {
			return nil, nil, fmt.Errorf("restore exhibit: %w", err)
		}
		if p.Placed {
			tower.Rooms[p.Room].Add(p)
		}
	}
	return tower, rec, nil
}

// runVisit is the per-visitor browse loop: arrow keys move between the
// museum's discovered floors, q or escape leaves.
func (s *Server) runVisit(screen tcell.Screen, tower *assets.Tower, rec *save.Record) {
	discovered := make(map[int]bool)
	for _, n := range rec.Unlocks.DiscoveredFloors {
		discovered[n] = true
	}
	discovered[assets.StartRoom] = true

	renderer := render.New(screen)
	renderer.SetColor(true) // visitors always see the full palette
	floor := assets.StartRoom

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / visitFPS)
	defer ticker.Stop()

	move := func(dir int) {
		target := floor + dir
		if target < 0 || target > assets.MaxFloor || !discovered[target] {
			return
		}
		floor = target
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyUp:
					move(+1)
				case tcell.KeyDown:
					move(-1)
				case tcell.KeyEscape:
					return
				}
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return
				}
			}
		case <-ticker.C:
			tower.Rooms[floor].AdvanceSprites()
			renderer.DrawRoom(tower.Rooms[floor], nil, false)
			renderer.DrawHUD("visiting "+assets.FloorNames[floor], int(rec.Beauty), rec.Gold)
			renderer.DrawDebug("arrows: change floor   q: leave")
			renderer.Show()
		}
	}
}
