package wheelget

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	GetWheel(ctx context.Context, wheelID string) (domain.Wheel, error)
}
