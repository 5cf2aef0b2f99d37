package coinflip

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	FlipCoin(ctx context.Context) domain.CoinSide
}
