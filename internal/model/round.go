package model

import "time"

// Round represents a single presented number awaiting a prime/not-prime
// judgment from the player
type Round struct {
	ID            string
	Number        int         // the number to classify
	Answer        AnswerState // resolution state, Unanswered until resolved
	TimeRemaining int         // countdown seconds left, floor 0
	StartedAt     time.Time   // when the round was presented
	ResolvedAt    time.Time   // zero until the round resolves
}

// Resolved returns true once the round has been answered or timed out
func (r *Round) Resolved() bool {
	return r.Answer.IsResolved()
}

// ScoreTally accumulates resolved rounds between summary dialogs.
// CorrectCount + WrongCount == TotalAttempts holds at all times.
type ScoreTally struct {
	CorrectCount  int
	WrongCount    int
	TotalAttempts int
}

// Record counts one resolved round
func (st *ScoreTally) Record(correct bool) {
	if correct {
		st.CorrectCount++
	} else {
		st.WrongCount++
	}
	st.TotalAttempts++
}

// Reset zeroes all counters
func (st *ScoreTally) Reset() {
	st.CorrectCount = 0
	st.WrongCount = 0
	st.TotalAttempts = 0
}

// SummaryDue reports whether the tally just hit a positive multiple of the
// summary interval
func (st *ScoreTally) SummaryDue(interval int) bool {
	if interval <= 0 {
		return false
	}
	return st.TotalAttempts > 0 && st.TotalAttempts%interval == 0
}

// Accuracy returns the fraction of correct answers, 0.0 when nothing has
// been attempted yet
func (st *ScoreTally) Accuracy() float64 {
	if st.TotalAttempts == 0 {
		return 0.0
	}
	return float64(st.CorrectCount) / float64(st.TotalAttempts)
}
