package container

// Two large primes feeding the double-hashing scheme. They only need to
// be distinct and coprime to any table size, which is guaranteed because
// table sizes are themselves prime.
const (
	hashPrime1 uint64 = 101
	hashPrime2 uint64 = 173
)

// hashString computes a polynomial rolling hash of s in [0, m).
// Horner form of sum(s[i] * prime^(len-1-i)) with a reduction modulo m
// after every term, so the accumulator never overflows.
func hashString(s string, prime, m uint64) uint64 {
	var hash uint64
	for i := 0; i < len(s); i++ {
		hash = (hash*prime + uint64(s[i])) % m
	}
	return hash
}

// probeIndex returns the slot index for s on the given probe attempt.
// A zero secondary hash degenerates the sequence into one that never
// advances, so it is substituted with a step of 1.
func probeIndex(s string, m uint64, attempt int) uint64 {
	hashA := hashString(s, hashPrime1, m)
	hashB := hashString(s, hashPrime2, m)
	if hashB == 0 {
		hashB = 1
	}
	return (hashA + uint64(attempt)*hashB) % m
}

func isPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 {
		return false
	}
	for i := 3; i*i <= v; i += 2 {
		if v%i == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime >= v.
func nextPrime(v int) int {
	for !isPrime(v) {
		v++
	}
	return v
}
