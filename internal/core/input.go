package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left
	ActionRight          // D, Right arrow - move paddle right
	ActionLaunch         // Space - launch a ball and start a round
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PaddleIntent is the tri-state paddle command sampled once per tick.
type PaddleIntent int

const (
	IntentStop PaddleIntent = iota
	IntentLeft
	IntentRight
)

// String returns the intent name.
func (p PaddleIntent) String() string {
	switch p {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "stop"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Intent collapses the frame's movement actions into one paddle intent.
// Pressing both directions in the same tick cancels out.
func (f InputFrame) Intent() PaddleIntent {
	left, right := f.Has(ActionLeft), f.Has(ActionRight)
	switch {
	case left && !right:
		return IntentLeft
	case right && !left:
		return IntentRight
	default:
		return IntentStop
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
