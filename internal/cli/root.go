// Package cli реализует консольную утилиту randomizer поверх тех же операций, что и HTTP API.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/infrastructure/randomizer"
	"randomizer-tools/internal/logging"
	"randomizer-tools/internal/random"
)

type options struct {
	jsonOutput bool
	logLevel   string
}

// NewRootCmd собирает дерево команд. gen nil означает генератор с криптографическим зерном.
func NewRootCmd(gen randomizer.Randomizer) *cobra.Command {
	opts := &options{}
	var rnd *random.Service

	root := &cobra.Command{
		Use:           "randomizer",
		Short:         "Random numbers, picks, shuffles, coins, dice and teams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(logging.NewJSONLogger(cmd.ErrOrStderr(), opts.logLevel))
			if gen == nil {
				var err error
				if gen, err = randomizer.New(); err != nil {
					return err
				}
			}
			rnd = random.New(gen)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output results in JSON format")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	service := func() *random.Service { return rnd }
	root.AddCommand(
		newIntCmd(opts, service),
		newPickCmd(opts, service),
		newShuffleCmd(opts, service),
		newCoinCmd(opts, service),
		newDiceCmd(opts, service),
		newTeamsCmd(opts, service),
	)
	return root
}

func newIntCmd(opts *options, service func() *random.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "int MIN MAX",
		Short: "Print a random integer in [MIN, MAX)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lower, err := parseIntArg("MIN", args[0])
			if err != nil {
				return err
			}
			upper, err := parseIntArg("MAX", args[1])
			if err != nil {
				return err
			}
			value, err := service().UniformInt(lower, upper)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), map[string]int{"value": value}, strconv.Itoa(value))
		},
	}
}

func newPickCmd(opts *options, service func() *random.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "pick ITEM...",
		Short: "Print one random item",
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := random.PickRandom(service(), args)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), map[string]string{"item": item}, item)
		},
	}
}

func newShuffleCmd(opts *options, service func() *random.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle [ITEM...]",
		Short: "Print items in random order, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := random.Shuffle(service(), args)
			return opts.print(cmd.OutOrStdout(), map[string][]string{"items": items}, strings.Join(items, "\n"))
		},
	}
}

func newCoinCmd(opts *options, service func() *random.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "coin",
		Short: "Flip a coin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			heads := service().FlipCoin()
			side := domain.SideOf(heads)
			return opts.print(cmd.OutOrStdout(), map[string]any{"heads": heads, "side": side}, string(side))
		},
	}
}

func newDiceCmd(opts *options, service func() *random.Service) *cobra.Command {
	var sides, count int
	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Roll dice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roll, err := service().RollDiceN(count, sides)
			if err != nil {
				return err
			}
			rolls := make([]string, len(roll.Rolls))
			for i, r := range roll.Rolls {
				rolls[i] = strconv.Itoa(r)
			}
			text := strings.Join(rolls, " ")
			if len(roll.Rolls) > 1 {
				text = fmt.Sprintf("%s = %d", text, roll.Total)
			}
			return opts.print(cmd.OutOrStdout(), roll, text)
		},
	}
	cmd.Flags().IntVarP(&sides, "sides", "s", random.DefaultDiceSides, "Number of sides")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of dice")
	return cmd
}

func newTeamsCmd(opts *options, service func() *random.Service) *cobra.Command {
	var teamCount int
	cmd := &cobra.Command{
		Use:   "teams --count K ITEM...",
		Short: "Split items into K random teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := random.CreateRandomTeams(service(), args, teamCount)
			if err != nil {
				return err
			}
			lines := make([]string, len(teams))
			for i, team := range teams {
				lines[i] = fmt.Sprintf("Team %d: %s", i+1, strings.Join(team, ", "))
			}
			return opts.print(cmd.OutOrStdout(), map[string][][]string{"teams": teams}, strings.Join(lines, "\n"))
		},
	}
	cmd.Flags().IntVarP(&teamCount, "count", "k", 2, "Number of teams")
	return cmd
}

// print пишет результат в JSON или в виде текста.
func (o *options) print(w io.Writer, payload any, text string) error {
	if o.jsonOutput {
		return json.NewEncoder(w).Encode(payload)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func parseIntArg(name, raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidArgument, name, raw)
	}
	return value, nil
}
