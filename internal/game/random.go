package game

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

// Random is the source of every stochastic decision in the game: accident
// draws, the market shuffle and flight numbers.
type Random interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n).
	Intn(n int) int
}

type pcgRandom struct {
	r *pcg.PCG32
}

// NewRandom returns a PCG32 backed source. A zero seed seeds from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &pcgRandom{r: pcg.NewPCG32()}
	r.r.Seed(uint64(seed), 0xda3e39cb94b95bdb)
	return r
}

func (p *pcgRandom) Float64() float64 {
	return float64(p.r.Random()) / (1 << 32)
}

func (p *pcgRandom) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(p.r.Bounded(uint32(n)))
}

// Shuffle permutes s in place (Fisher-Yates).
func Shuffle[T any](rng Random, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
