package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/learner/internal/tui/onboarding"
)

var errNotTerminal = errors.New("the onboarding screen needs an interactive terminal; use `learner start --topic <topic> --duration <week|month|year>` instead")

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "learner",
		Short:         "Pick something to learn and how long to learn it for",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return errNotTerminal
			}

			app, err := newAppContext(flags, out, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.screen")
			logger.Info(ctx, "launching onboarding screen")
			if err := runScreen(ctx, app, out); err != nil {
				logger.Error(ctx, "onboarding screen failed", "error", err)
				return err
			}
			return nil
		},
	}

	flags.register(cmd)

	cmd.AddCommand(newStartCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runScreen(ctx context.Context, app *AppContext, out io.Writer) error {
	screen := app.NewScreen(ctx)
	model := onboarding.NewModel(ctx, screen)

	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(out)}
	if app.Config.Screen.AltScreen {
		options = append(options, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(model, options...).Run(); err != nil {
		return fmt.Errorf("run onboarding screen: %w", err)
	}

	// Lines printed above the program are wiped with the alternate screen.
	if app.Config.Screen.AltScreen {
		echoMessages(out, app.SubmittedMessages())
	}
	return nil
}

func echoMessages(out io.Writer, messages []string) {
	for _, msg := range messages {
		fmt.Fprintln(out, msg)
	}
}

