package wheelhistory

import (
	"context"

	"randomizer-tools/internal/domain"
)

type UseCase interface {
	WheelHistory(ctx context.Context, wheelID string, limit int) ([]domain.Spin, error)
}
