package model

import "testing"

func TestAnswerState_IsResolved(t *testing.T) {
	tests := []struct {
		state    AnswerState
		expected bool
	}{
		{AnswerUnanswered, false},
		{AnswerCorrect, true},
		{AnswerIncorrect, true},
	}

	for _, test := range tests {
		result := test.state.IsResolved()
		if result != test.expected {
			t.Errorf("AnswerState(%s).IsResolved() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestAnswerState_String(t *testing.T) {
	state := AnswerCorrect
	expected := "Correct"
	result := state.String()

	if result != expected {
		t.Errorf("AnswerState.String() = %s, expected %s", result, expected)
	}
}
