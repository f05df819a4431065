package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, K - cursor to the top row
	ActionDown           // Down arrow, J - cursor to the cascades
	ActionLeft           // Left arrow, H
	ActionRight          // Right arrow, L
	ActionConfirm        // Enter - pick up or drop a card
	ActionAuto           // Space - send the card under the cursor somewhere useful
	ActionBack           // Esc - drop the selection
	ActionUndo           // U
	ActionFinish         // F - push safe cards to the foundations
	ActionRestart        // R - deal the same deck again
	ActionNewGame        // N - shuffle a new deck
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionAuto:
		return "Auto"
	case ActionBack:
		return "Back"
	case ActionUndo:
		return "Undo"
	case ActionFinish:
		return "Finish"
	case ActionRestart:
		return "Restart"
	case ActionNewGame:
		return "NewGame"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
