package wheelspin

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	SpinWheel(ctx context.Context, wheelID string, removeWinner bool) (domain.Spin, error)
}
