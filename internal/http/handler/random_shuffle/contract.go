package randomshuffle

import "context"

type UseCase interface {
	ShuffleItems(ctx context.Context, items []string) ([]string, error)
}
