package random

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"randomizer-tools/internal/domain"
)

func TestPickRandomReturnsMember(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	items := []string{"alice", "bob", "carol"}
	for i := 0; i < 1000; i++ {
		item, err := PickRandom(svc, items)
		require.NoError(t, err)
		require.Contains(t, items, item)
	}
}

func TestPickRandomUsesDrawnIndex(t *testing.T) {
	t.Parallel()
	gen := &scriptedGen{next: func(uint64) uint64 { return 2 }}
	item, err := PickRandom(New(gen), []int{10, 20, 30, 40})
	require.NoError(t, err)
	require.Equal(t, 30, item)
	require.Equal(t, []uint64{4}, gen.requested)
}

func TestPickRandomRejectsEmpty(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	_, err := PickRandom(svc, []string{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = PickRandom[int](svc, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestShuffleIsPermutationAndKeepsInput(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	items := []int{1, 2, 2, 3, 4, 5, 6, 7, 8, 9}
	original := append([]int(nil), items...)
	for i := 0; i < 200; i++ {
		shuffled := Shuffle(svc, items)
		require.Len(t, shuffled, len(items))
		require.ElementsMatch(t, original, shuffled)
		require.Equal(t, original, items)
	}
}

func TestShuffleEmptyInput(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	require.Equal(t, []string{}, Shuffle(svc, []string{}))
	require.Equal(t, []string{}, Shuffle[string](svc, nil))
}

func TestShuffleFisherYatesOrder(t *testing.T) {
	t.Parallel()
	script := []uint64{0, 2, 0}
	gen := &scriptedGen{}
	gen.next = func(uint64) uint64 {
		v := script[0]
		script = script[1:]
		return v
	}

	shuffled := Shuffle(New(gen), []string{"a", "b", "c", "d"})

	// i=3 -> j=0, i=2 -> j=2, i=1 -> j=0
	require.Equal(t, []string{"b", "d", "c", "a"}, shuffled)
	require.Equal(t, []uint64{4, 3, 2}, gen.requested)
}

func TestShufflePermutationsAreUniform(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	const trials = 60_000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle(svc, []int{1, 2, 3}))]++
	}
	require.Len(t, counts, 6)
	for perm, cnt := range counts {
		require.InDeltaf(t, trials/6, cnt, 600, "permutation %s", perm)
	}
}

func TestCreateRandomTeamsProperties(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for k := 1; k <= len(items); k++ {
		teams, err := CreateRandomTeams(svc, items, k)
		require.NoError(t, err)
		require.Len(t, teams, k)

		var all []string
		minSize, maxSize := len(items), 0
		for _, team := range teams {
			require.NotEmpty(t, team)
			minSize = min(minSize, len(team))
			maxSize = max(maxSize, len(team))
			all = append(all, team...)
		}
		require.LessOrEqual(t, maxSize-minSize, 1)
		require.ElementsMatch(t, items, all)
	}
}

func TestCreateRandomTeamsRoundRobin(t *testing.T) {
	t.Parallel()
	// highest() всегда выбирает j=i, поэтому перестановка тождественная.
	teams, err := CreateRandomTeams(New(highest()), []int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3, 5}, {2, 4}}, teams)
}

func TestCreateRandomTeamsValidation(t *testing.T) {
	t.Parallel()
	svc := newRealService(t)
	cases := []struct {
		name  string
		items []int
		count int
	}{
		{name: "zero teams", items: []int{1, 2}, count: 0},
		{name: "negative teams", items: []int{1, 2}, count: -1},
		{name: "more teams than items", items: []int{1, 2}, count: 3},
		{name: "empty items", items: []int{}, count: 1},
		{name: "nil items", items: nil, count: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateRandomTeams(svc, tc.items, tc.count)
			require.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}
