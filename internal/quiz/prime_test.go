package quiz

import "testing"

func TestIsPrime_KnownValues(t *testing.T) {
	tests := []struct {
		n        int
		expected bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{9, false},
		{25, false},
		{49, false},
		{91, false}, // 7 * 13
		{97, true},
		{100, false},
	}

	for _, test := range tests {
		result := IsPrime(test.n)
		if result != test.expected {
			t.Errorf("IsPrime(%d) = %v, expected %v", test.n, result, test.expected)
		}
	}
}

func TestIsPrime_MatchesTrialDivisionInRange(t *testing.T) {
	// Ground truth by exhaustive trial division over the full game range
	for n := MinNumber; n <= MaxNumber; n++ {
		expected := true
		for d := 2; d < n; d++ {
			if n%d == 0 {
				expected = false
				break
			}
		}

		if result := IsPrime(n); result != expected {
			t.Errorf("IsPrime(%d) = %v, expected %v", n, result, expected)
		}
	}
}
