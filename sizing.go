package assoc

import "math/bits"

// Sizing selects the capacity progression used for both tables.
type Sizing int

const (
	// SizingPrime keeps every capacity prime. Growth goes to the smallest
	// prime strictly greater than capacity*factor.
	SizingPrime Sizing = iota
	// SizingPowerOfTwo keeps every capacity a power of two.
	SizingPowerOfTwo
)

func (s Sizing) String() string {
	switch s {
	case SizingPrime:
		return "prime"
	case SizingPowerOfTwo:
		return "pow2"
	default:
		return "unknown"
	}
}

// initial rounds a requested starting capacity up to a size the policy
// accepts.
func (s Sizing) initial(n int) int {
	if n < 2 {
		n = 2
	}
	if s == SizingPowerOfTwo {
		return nextPow2(n)
	}
	if isPrime(n) {
		return n
	}
	return nextPrime(n)
}

// grow returns the capacity following n when scaled by factor.
func (s Sizing) grow(n, factor int) int {
	if s == SizingPowerOfTwo {
		return nextPow2(n * factor)
	}
	return nextPrime(n * factor)
}

// nextPrime returns the smallest prime strictly greater than n.
func nextPrime(n int) int {
	if n < 2 {
		return 2
	}
	i := n + 1
	if i > 2 && i%2 == 0 {
		i++
	}
	for !isPrime(i) {
		i += 2
	}
	return i
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
