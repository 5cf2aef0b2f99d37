package wheelshuffle

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	ShuffleWheel(ctx context.Context, wheelID string) (domain.Wheel, error)
}
