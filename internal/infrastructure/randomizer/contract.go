package randomizer

// Randomizer предоставляет абстракцию над генератором псевдослучайных чисел.
type Randomizer interface {
	// Uint64N возвращает равномерно распределённое число из [0, n). Паникует при n == 0.
	Uint64N(n uint64) uint64
}
