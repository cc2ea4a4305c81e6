package sim

// State is the current phase of a game session.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns a readable name for logging.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Message returns the text surfaced to the player for terminal states,
// or an empty string while playing.
func (s State) Message() string {
	switch s {
	case StateWon:
		return "You Win!"
	case StateLost:
		return "Game Over!"
	default:
		return ""
	}
}
