package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flw-cn/go-gifbot"
	"github.com/flw-cn/go-gifbot/internal/rtm"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Slack and answer mentions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		token, err := cfg.ResolveToken()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		bot, err := gifbot.NewWithOpts(
			gifbot.WithLogger(logger),
			gifbot.WithSession(rtm.New(token, rtm.WithLogger(logger))),
			gifbot.WithRules(cfg.Rules()...),
		)
		if err != nil {
			return fmt.Errorf("creating bot: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.WithField("triggers", len(cfg.Triggers)).Info("starting")
		return bot.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

