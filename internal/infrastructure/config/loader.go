package configinfra

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	configdomain "qform.io/cli/internal/core/domain/config"
	configports "qform.io/cli/internal/core/ports/config"
)

// ErrMissingURL is returned when no questionnaire URL is configured.
var ErrMissingURL = errors.New("questionnaire URL is not configured (set QF_QUESTIONNAIRE_URL or --url)")

// CompositeLoader merges every loader on top of the defaults.
type CompositeLoader struct {
	loaders []configports.Loader
}

func NewCompositeLoader(loaders ...configports.Loader) *CompositeLoader {
	return &CompositeLoader{loaders: loaders}
}

// NewStandardLoader wires the usual sources: config file, .env in the
// working directory and QF_* environment variables.
func NewStandardLoader(configPath string) *CompositeLoader {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return NewCompositeLoader(
		NewFileLoader(configPath),
		NewDotenvLoader(".env"),
		NewEnvLoader(),
	)
}

// Load returns the merged snapshot. overrides are applied with flag priority.
func (l *CompositeLoader) Load(ctx context.Context, overrides map[string]interface{}) (configdomain.Snapshot, error) {
	snap := configdomain.Defaults()
	for _, loader := range l.loaders {
		s, err := loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s config: %w", loader.Name(), err)
		}
		snap.Merge(s)
	}

	flags := make(configdomain.Snapshot)
	for k, v := range overrides {
		flags[k] = configdomain.Entry{Key: k, Value: v, Source: "cli", SourcePath: "command_line_flag", Priority: configdomain.PriorityFlag}
	}
	snap.Merge(flags)
	return snap, nil
}

// Validate checks the values a submission cannot run without.
func Validate(cfg configdomain.Config) error {
	if cfg.QuestionnaireURL == "" {
		return ErrMissingURL
	}
	u, err := url.Parse(cfg.QuestionnaireURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid questionnaire URL %q", cfg.QuestionnaireURL)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}
	return nil
}
