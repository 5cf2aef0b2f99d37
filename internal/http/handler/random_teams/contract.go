package randomteams

import "context"

type UseCase interface {
	SplitTeams(ctx context.Context, items []string, teamCount int) ([][]string, error)
}
