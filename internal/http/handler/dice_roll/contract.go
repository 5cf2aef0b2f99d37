package diceroll

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	RollDice(ctx context.Context, sides, count int) (domain.DiceRoll, error)
}
