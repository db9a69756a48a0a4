package object

// Sprite is a rune-cell surface: each row is a string of runes, one rune
// per grid unit. A static sprite has exactly one frame; an animated one
// cycles through frames as Advance is called each game frame.
type Sprite struct {
	frames [][]string
	frame  int
	rate   int // Advance calls per frame step
	tick   int
	loop   bool
}

// NewSprite builds a static single-frame sprite. All rows must be the
// same rune length.
func NewSprite(rows []string) *Sprite {
	return &Sprite{frames: [][]string{rows}, rate: 1, loop: true}
}

// NewAnimation builds an animated sprite stepping every rate frames.
// A non-looping animation holds its last frame once finished.
func NewAnimation(frames [][]string, rate int, loop bool) *Sprite {
	if rate < 1 {
		rate = 1
	}
	return &Sprite{frames: frames, rate: rate, loop: loop}
}

// Rows returns the current frame's rows. Callers must not mutate them.
func (s *Sprite) Rows() []string {
	return s.frames[s.frame]
}

// Size returns the sprite dimensions in grid units, taken from the first
// frame (all frames share one footprint).
func (s *Sprite) Size() (w, h int) {
	rows := s.frames[0]
	if len(rows) == 0 {
		return 0, 0
	}
	return len([]rune(rows[0])), len(rows)
}

// Advance steps the animation clock. Static sprites ignore it.
func (s *Sprite) Advance() {
	if len(s.frames) < 2 {
		return
	}
	if !s.loop && s.frame == len(s.frames)-1 {
		return
	}
	s.tick++
	if s.tick < s.rate {
		return
	}
	s.tick = 0
	s.frame++
	if s.frame >= len(s.frames) {
		if s.loop {
			s.frame = 0
		} else {
			s.frame = len(s.frames) - 1
		}
	}
}

// Finished reports whether a non-looping animation has shown its last
// frame. Looping and static sprites are never finished.
func (s *Sprite) Finished() bool {
	return !s.loop && len(s.frames) > 1 && s.frame == len(s.frames)-1
}

// Reset rewinds the animation to its first frame.
func (s *Sprite) Reset() {
	s.frame = 0
	s.tick = 0
}

// Clone returns an independent copy. Frame data is copied, never shared,
// so two instances animate independently.
func (s *Sprite) Clone() *Sprite {
	frames := make([][]string, len(s.frames))
	for i, f := range s.frames {
		frames[i] = append([]string(nil), f...)
	}
	c := *s
	c.frames = frames
	return &c
}
