// Package random содержит примитивы рандомизации и построенные на них составные операции.
//
// Все операции опираются на два примитива: равномерное целое из диапазона и тасование Фишера-Йетса.
// Нарушение предусловий возвращает ошибку, оборачивающую domain.ErrInvalidArgument.
package random

import (
	"fmt"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/infrastructure/randomizer"
)

// DefaultDiceSides число граней кости, если вызывающий не указал своё.
const DefaultDiceSides = 6

// Service владеет генератором и выдаёт случайные значения.
type Service struct {
	gen randomizer.Randomizer
}

func New(gen randomizer.Randomizer) *Service {
	return &Service{gen: gen}
}

// UniformInt возвращает число из [min, max). Верхняя граница не входит в диапазон.
func (s *Service) UniformInt(min, max int) (int, error) {
	if min >= max {
		return 0, invalidArgument("min must be less than max (min=%d, max=%d)", min, max)
	}
	// Разность в беззнаковой арифметике не переполняется даже для [MinInt, MaxInt).
	width := uint64(uint(max) - uint(min))
	return min + int(s.gen.Uint64N(width)), nil
}

// FlipCoin возвращает true (орёл) или false (решка) с равной вероятностью.
func (s *Service) FlipCoin() bool {
	return s.intn(2) == 0
}

// RollDice возвращает результат броска кости из [1, sides].
func (s *Service) RollDice(sides int) (int, error) {
	if sides < 2 {
		return 0, invalidArgument("dice must have at least 2 sides, got %d", sides)
	}
	return 1 + s.intn(sides), nil
}

// RollDefaultDice бросает обычную шестигранную кость.
func (s *Service) RollDefaultDice() int {
	return 1 + s.intn(DefaultDiceSides)
}

// RollDiceN бросает count одинаковых костей и считает сумму.
func (s *Service) RollDiceN(count, sides int) (domain.DiceRoll, error) {
	if count < 1 {
		return domain.DiceRoll{}, invalidArgument("dice count must be positive, got %d", count)
	}
	if sides < 2 {
		return domain.DiceRoll{}, invalidArgument("dice must have at least 2 sides, got %d", sides)
	}
	roll := domain.DiceRoll{Sides: sides, Rolls: make([]int, count)}
	for i := range roll.Rolls {
		roll.Rolls[i] = 1 + s.intn(sides)
		roll.Total += roll.Rolls[i]
	}
	return roll, nil
}

// intn возвращает число из [0, n), n > 0.
func (s *Service) intn(n int) int {
	return int(s.gen.Uint64N(uint64(n)))
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
