package game

// State tracks the main state machine.
type State uint8

const (
	StateInteraction State = iota // default exploration
	StateBuild
	StateDestruction
	StateInventory
	StateDialog
	StateTransition
	StateConfirmation
	StateShop
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateInteraction:
		return "interaction"
	case StateBuild:
		return "build"
	case StateDestruction:
		return "destruction"
	case StateInventory:
		return "inventory"
	case StateDialog:
		return "dialog"
	case StateTransition:
		return "transition"
	case StateConfirmation:
		return "confirmation"
	case StateShop:
		return "shop"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}
