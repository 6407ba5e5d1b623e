package model

// AnswerState represents the resolution state of a quiz round
type AnswerState string

const (
	// AnswerUnanswered means the round is still waiting for the player
	AnswerUnanswered AnswerState = "Unanswered"

	// AnswerCorrect means the player classified the number correctly
	AnswerCorrect AnswerState = "Correct"

	// AnswerIncorrect means the player answered wrong or the countdown expired
	AnswerIncorrect AnswerState = "Incorrect"
)

// String returns the string representation of AnswerState
func (as AnswerState) String() string {
	return string(as)
}

// IsResolved returns true if the round has reached a terminal state
func (as AnswerState) IsResolved() bool {
	return as == AnswerCorrect || as == AnswerIncorrect
}
