package config

// Config represents learner's configuration document.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Log      LogConfig      `yaml:"log"`
}

// ScreenConfig holds the onboarding screen's example values and terminal mode.
type ScreenConfig struct {
	Placeholder   string `yaml:"placeholder" validate:"required,max=64,single_line"`
	FallbackTopic string `yaml:"fallback_topic" validate:"required,max=64,single_line"`
	AltScreen     bool   `yaml:"alt_screen"`
}

// FeedbackConfig selects how tactile feedback is rendered in a terminal.
type FeedbackConfig struct {
	Mode      string `yaml:"mode" validate:"required,oneof=none bell"`
	Threshold string `yaml:"threshold" validate:"required,oneof=light medium"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level         string `yaml:"level" validate:"required,oneof=debug info warn error"`
	File          string `yaml:"file,omitempty"`
	HumanReadable bool   `yaml:"human_readable"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Placeholder:   "Swift",
			FallbackTopic: "Swift",
		},
		Feedback: FeedbackConfig{
			Mode:      "bell",
			Threshold: "light",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
