package seed

import "math/rand"

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it; tests can substitute a fixed sequence.
type Source interface {
	Intn(n int) int
}

// NewSource returns a pseudo-random Source initialised from value.
func NewSource(value int64) Source {
	// #nosec G404 -- seed placement is not security sensitive
	return rand.New(rand.NewSource(value))
}

// FromConfig resolves config to a seed value and returns a Source for it.
func FromConfig(config Config) (Source, int64, error) {
	value, err := Calculate(config)
	if err != nil {
		return nil, 0, err
	}
	return NewSource(value), value, nil
}
