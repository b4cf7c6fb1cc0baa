package core

// Action is a semantic input, abstracted from physical keys and mouse clicks.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, W
	ActionDown               // Down arrow, S
	ActionLeft               // Left arrow, A
	ActionRight              // Right arrow, D
	ActionPause              // P or the Pause button
	ActionRestart            // R or the Restart button
	ActionMain               // M or the Main button
	ActionNewPlayer          // N or the New Player button
	ActionLeaderboard        // L or the Leaderboard button
	ActionBack               // Esc, B or the Back button
	ActionConfirm            // Enter
	ActionAnyKey             // Set for every key press; dismisses overlays
	ActionQuit               // Ctrl+C, Q
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
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMain:
		return "Main"
	case ActionNewPlayer:
		return "NewPlayer"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionBack:
		return "Back"
	case ActionConfirm:
		return "Confirm"
	case ActionAnyKey:
		return "AnyKey"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame collects the actions triggered between two ticks.
type InputFrame struct {
	Actions map[Action]bool

	// order keeps directional presses in arrival order so a quick
	// "up, left" between two moves is not collapsed into one.
	order []Action
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
	if a.IsDirectional() {
		f.order = append(f.order, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Directions returns the directional actions in the order they arrived.
func (f InputFrame) Directions() []Action {
	return f.order
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}
