package randomizer

import (
	cryptorand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"sync"
)

// SeedSize размер сида ChaCha8 в байтах.
const SeedSize = 32

type randomizerImpl struct {
	mu  sync.Mutex // Защищает доступ к генератору случайных чисел
	rnd *rand.Rand
}

// New создаёт потокобезопасный randomizer на базе ChaCha8.
// Сид берётся один раз из crypto/rand, дальнейшие значения выдаёт быстрый некриптографический генератор.
func New() (Randomizer, error) {
	var seed [SeedSize]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return newFromSeed(seed), nil
}

// MustNew аналогичен New, но паникует при ошибке чтения энтропии.
func MustNew() Randomizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func newFromSeed(seed [SeedSize]byte) *randomizerImpl {
	return &randomizerImpl{
		rnd: rand.New(rand.NewChaCha8(seed)), // #nosec G404
	}
}

// Uint64N возвращает число из [0, n). Потокобезопасна благодаря мьютексу.
func (r *randomizerImpl) Uint64N(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Uint64N(n)
}
