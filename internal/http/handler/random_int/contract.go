package randomint

import "context"

type UseCase interface {
	RandomInt(ctx context.Context, min, max int) (int, error)
}
