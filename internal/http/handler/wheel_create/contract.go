package wheelcreate

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	CreateWheel(ctx context.Context, name string, entries []domain.WheelEntry) (domain.Wheel, error)
}
