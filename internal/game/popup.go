package game

// PopupLifetime is how many frames an info popup stays on screen.
const PopupLifetime = 300

// InfoPopup is one transient on-screen notice. User-action rejections
// (insufficient funds, off-limits floors, invalid placement) surface as
// popups, never as errors.
type InfoPopup struct {
	Text     string
	Lifetime int // frames remaining
}

// PopupQueue holds active popups in arrival order.
type PopupQueue struct {
	items []*InfoPopup
}

// Push appends a popup with the default lifetime.
func (q *PopupQueue) Push(text string) {
	q.items = append(q.items, &InfoPopup{Text: text, Lifetime: PopupLifetime})
}

// Update ages every popup one frame and evicts the expired ones.
func (q *PopupQueue) Update() {
	live := q.items[:0]
	for _, p := range q.items {
		p.Lifetime--
		if p.Lifetime > 0 {
			live = append(live, p)
		}
	}
	q.items = live
}

// Items returns the active popups, oldest first.
func (q *PopupQueue) Items() []*InfoPopup { return q.items }

// Prompt is one yes/no confirmation with bound callbacks. OnNo may be
// nil; declining then just pops the prompt.
type Prompt struct {
	Text  string
	OnYes func()
	OnNo  func()
}

// ConfirmStack is the LIFO stack of pending confirmations. While it is
// non-empty the state machine is forced into Confirmation; when it
// empties the machine returns to Interaction, whatever mode pushed the
// first prompt.
type ConfirmStack struct {
	prompts []*Prompt
}

// Push adds a prompt on top of the stack.
func (s *ConfirmStack) Push(p *Prompt) {
	s.prompts = append(s.prompts, p)
}

// Top returns the active prompt, or nil when the stack is empty.
func (s *ConfirmStack) Top() *Prompt {
	if len(s.prompts) == 0 {
		return nil
	}
	return s.prompts[len(s.prompts)-1]
}

// Pop removes the active prompt.
func (s *ConfirmStack) Pop() {
	if len(s.prompts) > 0 {
		s.prompts = s.prompts[:len(s.prompts)-1]
	}
}

// Empty reports whether no prompts are pending.
func (s *ConfirmStack) Empty() bool { return len(s.prompts) == 0 }

// Resolve answers the active prompt. The prompt is popped before its
// callback runs, so a callback pushing a follow-up prompt leaves the
// stack in the right shape.
func (s *ConfirmStack) Resolve(yes bool) {
	p := s.Top()
	if p == nil {
		return
	}
	s.Pop()
	if yes {
		if p.OnYes != nil {
			p.OnYes()
		}
	} else if p.OnNo != nil {
		p.OnNo()
	}
}
