package quiz

import "math"

// IsPrime reports whether n is a prime number. Handles n < 2 and even n,
// then trial-divides by odd numbers up to floor(sqrt(n)).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	limit := int(math.Sqrt(float64(n)))
	for i := 3; i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
