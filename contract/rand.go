package main

//
// Deterministic expansion of the oracle seed into a turn order.
//
// The contract cannot pull randomness itself; the oracle delivers one seed
// string and every node must expand it to the identical permutation. A
// splitmix64 stream keyed by a 64-bit fold of the seed drives a
// Fisher-Yates shuffle over the ticket numbers.
//

// foldSeed hashes the seed string into the initial prng state (FNV-1a 64).
func foldSeed(seed string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(seed); i++ {
		h ^= uint64(seed[i])
		h *= 1099511628211
	}
	return h
}

// prng is a splitmix64 stream. Small, allocation free, identical output
// on every wasm runtime.
type prng struct {
	state uint64
}

func newPrng(seed string) *prng {
	return &prng{state: foldSeed(seed)}
}

func (p *prng) next() uint64 {
	p.state += 0x9e3779b97f4a7c15
	z := p.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// shuffledTickets returns the ticket numbers [1..n] in seeded
// Fisher-Yates order. n must fit in a byte.
func shuffledTickets(n uint64, seed string) []byte {
	order := make([]byte, n)
	for i := uint64(0); i < n; i++ {
		order[i] = byte(i + 1)
	}
	rng := newPrng(seed)
	for i := n - 1; i > 0; i-- {
		j := rng.next() % (i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
