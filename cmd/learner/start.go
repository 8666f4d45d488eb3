package main

import (
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
)

type startFlags struct {
	topic    string
	duration string
}

func newStartCmd(root *rootFlags) *cobra.Command {
	flags := &startFlags{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Emit a learning intent without the interactive screen",
		Long: `Run the onboarding screen headlessly: set the topic, select the duration and
press start. The resulting message is printed to stdout. An empty topic falls
back to the configured example topic.`,
		Example: "  learner start --topic Go --duration month",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := domain.ParseDuration(flags.duration)
			if err != nil {
				return fmt.Errorf("invalid --duration: %w", err)
			}

			app, err := newAppContext(root, cmd.OutOrStdout(), cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.start")
			screen := app.NewScreen(ctx)
			screen.SetTopic(ctx, flags.topic)
			screen.SelectDuration(ctx, duration)
			intent := screen.Submit(ctx)
			logger.Debug(ctx, "headless submission", "topic", intent.EffectiveTopic, "duration", intent.Duration)

			fmt.Fprintln(cmd.OutOrStdout(), intent.Message())
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.topic, "topic", "t", "", "Topic to learn (empty uses the example topic)")
	cmd.Flags().StringVarP(&flags.duration, "duration", "d", domain.Week.String(), "Learning period: week, month or year")

	return cmd
}
