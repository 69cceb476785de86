package play

import (
	"time"

	"quizard/internal/game"
	"quizard/internal/quiz"
)

// sessionInitMsg is sent when the id queue has been loaded and the process
// built.
type sessionInitMsg struct {
	Manager *game.DataManager
	Process *game.Process
	Err     error
}

// questionReadyMsg is sent when the next question has been resolved.
type questionReadyMsg struct {
	Question *quiz.Question
	Err      error
}

// clockTickMsg is sent every second while the sprint clock runs.
type clockTickMsg time.Time

// feedbackDoneMsg is sent when the player dismisses the answer feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg triggers the end-of-game flow.
type sessionEndMsg struct{}

// persistedMsg is sent when the end-of-game writes have finished.
type persistedMsg struct {
	Result           *game.Result
	SectionsComplete int
	Err              error
}
