package random

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/fastrand"
)

// Source yields uniformly distributed integers in [0, n).
// Implementations must be safe for concurrent use.
type Source interface {
	Uint32n(n uint32) uint32
}

type globalSource struct{}

func (globalSource) Uint32n(n uint32) uint32 {
	return fastrand.Uint32n(n)
}

// Default returns the process-wide source.
func Default() Source {
	return globalSource{}
}

// seededSource is a deterministic source guarded by a mutex.
type seededSource struct {
	mu  sync.Mutex
	rng fastrand.RNG
}

// NewSeeded returns a deterministic source. Two sources with the same seed
// produce the same sequence. A zero seed is replaced by a random one.
func NewSeeded(seed uint32) Source {
	s := &seededSource{}
	s.rng.Seed(seed)
	return s
}

func (s *seededSource) Uint32n(n uint32) uint32 {
	s.mu.Lock()
	v := s.rng.Uint32n(n)
	s.mu.Unlock()
	return v
}

// SeedFromPhrase derives a seed from an arbitrary string.
func SeedFromPhrase(phrase string) uint32 {
	h := xxhash.Sum64String(phrase)
	return uint32(h ^ (h >> 32))
}

// Intn returns a value in [0, n). It returns 0 for n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(src.Uint32n(uint32(n)))
}

// IntRange returns a value in [min, max], swapping the bounds if max < min.
func IntRange(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + Intn(src, max-min+1)
}

// String returns n runes sampled uniformly with replacement from alphabet.
// It returns "" for n <= 0 or an empty alphabet.
func String(src Source, n int, alphabet string) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	runes := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[Intn(src, len(runes))]
	}
	return string(out)
}
