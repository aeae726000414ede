package bot

import (
	"math/rand"
	"sync"
)

// Rand is the source of randomness for broadcast decisions and quip ids.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a seeded Rand that is safe for concurrent invocations
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// quip ids skip n and v
const (
	idAlphabet = "1234567890abcdefghijklmopqrstuwxyz"
	idLength   = 10
)

// NewQuipID draws a fresh quip id. Uniqueness is only probabilistic.
func NewQuipID(r Rand) string {
	id := make([]byte, idLength)
	for i := range id {
		id[i] = idAlphabet[r.Intn(len(idAlphabet))]
	}
	return string(id)
}
