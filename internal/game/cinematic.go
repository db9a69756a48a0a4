package game

import (
	"github.com/gdamore/tcell/v2"

	"bot-atelier/assets"
)

// cinematicFrameTicks is how many frame ticks each pre-rendered
// cinematic frame stays on screen.
const cinematicFrameTicks = 60

// playCutscene runs the blocking cinematic sequence: pre-rendered
// frames, then the story dialogue on black, then a fade, then the
// introspection dialogue over the live room. An escape at any point
// sets the finished flag, which every inner loop polls at its top, so
// cancellation unwinds without completing the remaining phases.
func (g *Game) playCutscene(c assets.Cutscene) {
	finished := false

	if len(c.Frames) > 0 {
		g.playFrames(c.Frames, &finished)
	}
	if !finished && c.Dialogue != "" {
		g.playDialogue(c.Dialogue, "narrator", true, &finished)
	}
	if !finished {
		g.playFade(&finished)
	}
	if !finished && c.Introspection != "" {
		g.playDialogue(c.Introspection, "me", false, &finished)
	}
}

// playFrames shows each frame for a fixed number of ticks.
func (g *Game) playFrames(frames [][]string, finished *bool) {
	for _, frame := range frames {
		ticks := 0
		for ticks < cinematicFrameTicks {
			if *finished {
				return
			}
			g.renderer.DrawCinematicFrame(frame)
			g.renderer.Show()
			select {
			case ev, ok := <-g.events:
				if !ok {
					g.quit = true
					*finished = true
					return
				}
				g.cinematicEvent(ev, finished, nil)
			case <-g.ticker.C:
				ticks++
			}
		}
	}
}

// playDialogue runs one story dialogue to completion. dim draws it over
// a blank screen; otherwise the live room shows behind it.
func (g *Game) playDialogue(key, speaker string, dim bool, finished *bool) {
	g.talk.Special(key)
	g.talk.Speaker = speaker
	done := false
	for !done {
		if *finished {
			return
		}
		if dim {
			g.renderer.Clear()
		} else {
			g.drawWorld(nil)
			g.renderer.Dim()
		}
		g.renderer.DrawDialogue(g.talk.Speaker, g.talk.Selected.Visible())
		g.renderer.Show()
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.quit = true
				*finished = true
				return
			}
			g.cinematicEvent(ev, finished, &done)
		case <-g.ticker.C:
			g.talk.Update()
		}
	}
}

// playFade runs the shutter sweep between cinematic phases.
func (g *Game) playFade(finished *bool) {
	for level := 0.0; level <= 1.0; level += 0.05 {
		if *finished {
			return
		}
		g.renderer.Fade(level)
		g.renderer.Show()
		select {
		case ev, ok := <-g.events:
			if !ok {
				g.quit = true
				*finished = true
				return
			}
			g.cinematicEvent(ev, finished, nil)
		case <-g.ticker.C:
		}
	}
}

// cinematicEvent handles input inside a cinematic phase. Escape cancels
// the whole cutscene; a click advances the dialogue when one is up.
func (g *Game) cinematicEvent(ev tcell.Event, finished, dialogueDone *bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape {
			*finished = true
		}
	case *tcell.EventMouse:
		if mouseToAction(ev) == ActionClick && dialogueDone != nil {
			if g.talk.ClickInteraction() {
				*dialogueDone = true
			}
		}
	}
}
