package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/alexisbeaulieu97/learner/internal/application/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/config"
	domain "github.com/alexisbeaulieu97/learner/internal/domain/onboarding"
	"github.com/alexisbeaulieu97/learner/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/learner/internal/infrastructure/feedback"
	"github.com/alexisbeaulieu97/learner/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/learner/internal/ports"
)

// AppContext bundles the long-lived services one command invocation uses.
type AppContext struct {
	Config    *config.Config
	Logger    ports.Logger
	Events    ports.EventPublisher
	Feedback  ports.Feedback
	Submitted *events.Collector

	closers []io.Closer
}

// newAppContext loads configuration and wires logging, events and feedback.
// Interactive runs keep logs off the terminal unless a log file is set, and
// ring the bell on stdout.
func newAppContext(flags *rootFlags, stdout, stderr io.Writer, interactive bool) (*AppContext, error) {
	buffer := logging.NewBuffer(0)
	boot := buffer.Logger().With("component", "bootstrap")

	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if path != "" {
		boot.Debug(context.Background(), "configuration loaded", "path", path)
	} else {
		boot.Debug(context.Background(), "no configuration file, using defaults")
	}

	applyOverrides(cfg, flags)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	a := &AppContext{Config: cfg}

	var logOut io.Writer = stderr
	switch {
	case cfg.Log.File != "":
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		logOut = file
	case interactive:
		logOut = io.Discard
	}

	logger, err := logging.New(logging.Options{
		Writer:        logOut,
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.HumanReadable,
		Layer:         "interface",
		Component:     "cli",
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	buffer.Flush(logger)
	a.Logger = logger

	publisher := events.NewLoggingPublisher(logger.With("component", "publisher"))
	a.Submitted = &events.Collector{}
	if _, err := publisher.Subscribe(ports.EventLearningStarted, a.Submitted.Handle); err != nil {
		a.Close()
		return nil, fmt.Errorf("subscribe to submissions: %w", err)
	}
	a.Events = publisher

	mode := feedback.Mode(cfg.Feedback.Mode)
	if !interactive {
		mode = feedback.ModeNone
	}
	fb, err := feedback.New(mode, cfg.Feedback.Threshold, stdout)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	a.Feedback = fb

	return a, nil
}

func applyOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.noFeedback {
		cfg.Feedback.Mode = string(feedback.ModeNone)
	}
}

// CommandContext returns a context tagged with a fresh correlation ID and a
// logger scoped to component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, _ := logging.NewCommandContext(parent)
	return ctx, a.logger().With("component", component)
}

func (a *AppContext) logger() ports.Logger {
	if a.Logger == nil {
		return logging.Discard{}
	}
	return a.Logger
}

// NewScreen mounts an onboarding screen wired to the app's ports. State
// changes are traced at debug level.
func (a *AppContext) NewScreen(ctx context.Context) *app.Screen {
	screen := app.NewScreen(app.Options{
		Defaults: domain.Defaults{
			Placeholder:   a.Config.Screen.Placeholder,
			FallbackTopic: a.Config.Screen.FallbackTopic,
		},
		Feedback: a.Feedback,
		Events:   a.Events,
		Logger:   a.logger().With("component", "screen"),
	})

	trace := a.logger().With("component", "render")
	screen.Subscribe(func(s domain.State) {
		trace.Debug(ctx, "state changed", "topic_length", len(s.Topic), "duration", s.Duration, "placeholder_visible", s.PlaceholderVisible())
	})
	return screen
}

// SubmittedMessages returns every message emitted so far, in order.
func (a *AppContext) SubmittedMessages() []string {
	if a.Submitted == nil {
		return nil
	}
	var messages []string
	for _, event := range a.Submitted.Events() {
		if intent, ok := app.IntentFromEvent(event); ok {
			messages = append(messages, intent.Message())
		}
	}
	return messages
}

// Close releases files opened for logging.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
