package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/infrastructure/randomizer"
)

// firstGen всегда выбирает первый вариант.
type firstGen struct{}

func (firstGen) Uint64N(uint64) uint64 { return 0 }

// lastGen всегда выбирает последний вариант.
type lastGen struct{}

func (lastGen) Uint64N(n uint64) uint64 { return n - 1 }

func run(t *testing.T, gen randomizer.Randomizer, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(gen)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIntCommand(t *testing.T) {
	out, err := run(t, lastGen{}, "int", "1", "10")
	require.NoError(t, err)
	require.Equal(t, "9\n", out)

	_, err = run(t, lastGen{}, "int", "5", "5")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = run(t, lastGen{}, "int", "x", "5")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPickCommand(t *testing.T) {
	out, err := run(t, lastGen{}, "pick", "a", "b", "c")
	require.NoError(t, err)
	require.Equal(t, "c\n", out)

	_, err = run(t, lastGen{}, "pick")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestShuffleCommand(t *testing.T) {
	out, err := run(t, lastGen{}, "shuffle", "a", "b", "c")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a", "b", "c"}, strings.Fields(out))

	out, err = run(t, lastGen{}, "--json", "shuffle")
	require.NoError(t, err)
	require.JSONEq(t, `{"items":[]}`, out)
}

func TestCoinCommand(t *testing.T) {
	out, err := run(t, firstGen{}, "coin")
	require.NoError(t, err)
	require.Equal(t, "heads\n", out)

	out, err = run(t, lastGen{}, "--json", "coin")
	require.NoError(t, err)
	require.JSONEq(t, `{"heads":false,"side":"tails"}`, out)
}

func TestDiceCommand(t *testing.T) {
	out, err := run(t, lastGen{}, "dice")
	require.NoError(t, err)
	require.Equal(t, "6\n", out)

	out, err = run(t, lastGen{}, "dice", "--sides", "20", "--count", "2")
	require.NoError(t, err)
	require.Equal(t, "20 20 = 40\n", out)

	out, err = run(t, firstGen{}, "--json", "dice", "-n", "3")
	require.NoError(t, err)
	var roll domain.DiceRoll
	require.NoError(t, json.Unmarshal([]byte(out), &roll))
	require.Equal(t, domain.DiceRoll{Sides: 6, Rolls: []int{1, 1, 1}, Total: 3}, roll)

	_, err = run(t, firstGen{}, "dice", "--sides", "1")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestTeamsCommand(t *testing.T) {
	out, err := run(t, firstGen{}, "--json", "teams", "--count", "2", "a", "b", "c")
	require.NoError(t, err)
	var body map[string][][]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	require.Len(t, body["teams"], 2)
	require.Len(t, body["teams"][0], 2)
	require.Len(t, body["teams"][1], 1)

	out, err = run(t, firstGen{}, "teams", "-k", "1", "a")
	require.NoError(t, err)
	require.Equal(t, "Team 1: a\n", out)

	_, err = run(t, firstGen{}, "teams", "-k", "3", "a")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
