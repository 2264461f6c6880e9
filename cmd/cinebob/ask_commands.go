package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cinebob/internal/bot"
	"cinebob/internal/loader"
	"cinebob/internal/logging"
	"cinebob/internal/recommend"
)

func newAskCommand(ctx *commandContext) *cobra.Command {
	askCmd := &cobra.Command{
		Use:   "ask",
		Short: "Run a chat command locally against the configured catalog",
	}

	askCmd.AddCommand(
		newAskSubcommand(ctx, "recommend [genre]", "recommend", "Recommend a movie, optionally by genre", cobra.MaximumNArgs(1)),
		newAskSubcommand(ctx, "genres", "genres", "List known genres", cobra.NoArgs),
		newAskSubcommand(ctx, "popular [n]", "popular", "Show top movies by rating", cobra.MaximumNArgs(1)),
		newAskSubcommand(ctx, "random", "random", "Pick a completely random movie", cobra.NoArgs),
	)

	return askCmd
}

func newAskSubcommand(ctx *commandContext, use, command, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			reply, err := askLocal(ctx, cmd, command, strings.Join(cmdArgs, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bot.PlainText(reply))
			return nil
		},
	}
}

func askLocal(ctx *commandContext, cmd *cobra.Command, command, argument string) (string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return "", err
	}

	logger := logging.NewNop()
	cat, err := loader.Load(cmd.Context(), cfg, logger)
	if err != nil {
		return "", err
	}

	svc := recommend.NewService(cat,
		recommend.WithPopularLimits(cfg.Commands.PopularCount, cfg.Commands.PopularMax))
	dispatcher := bot.NewDispatcher(svc, logger)

	return dispatcher.Dispatch(cmd.Context(), bot.Request{Command: command, Args: argument})
}
