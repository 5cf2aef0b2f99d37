package randompick

import "context"

type UseCase interface {
	PickItem(ctx context.Context, items []string) (string, error)
}
