package quiz

// Mode selects the rules of a play-through.
type Mode int

const (
	// ModeUnused is the zero-value sentinel. Game components reject it.
	ModeUnused Mode = iota
	ModeArcade
	ModeMarathon
	ModeSprint
	ModeError
	ModeAITasks
)

// String returns the mode name used in persistence and display.
func (m Mode) String() string {
	switch m {
	case ModeArcade:
		return "arcade"
	case ModeMarathon:
		return "marathon"
	case ModeSprint:
		return "sprint"
	case ModeError:
		return "error"
	case ModeAITasks:
		return "ai-tasks"
	}
	return "unused"
}

// HasRecord reports whether the mode persists a best-score record.
func (m Mode) HasRecord() bool {
	return m == ModeArcade || m == ModeMarathon || m == ModeSprint
}
