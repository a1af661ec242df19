package di

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	apphttp "qform.io/cli/internal/application/http"
	configdomain "qform.io/cli/internal/core/domain/config"
	httpdomain "qform.io/cli/internal/core/domain/http"
	httpports "qform.io/cli/internal/core/ports/http"
	"qform.io/cli/internal/infrastructure/auth"
	configinfra "qform.io/cli/internal/infrastructure/config"
	httpinfra "qform.io/cli/internal/infrastructure/http"
	"qform.io/cli/internal/infrastructure/logging"
	"qform.io/cli/internal/interfaces/cli"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	Config   configdomain.Config
	Snapshot configdomain.Snapshot

	// Infrastructure
	HTTPClient httpports.Doer
	Logger     hclog.Logger

	// Application
	QuestionnaireClient *apphttp.QuestionnaireClient

	// CLI
	CLIContainer *cli.CLIContainer

	logOutput io.Writer
	newLoader func(configPath string) *configinfra.CompositeLoader
}

// NewContainer creates the container. Components are built lazily by
// Bootstrap once flags are known.
func NewContainer() *Container {
	c := &Container{
		logOutput: os.Stderr,
		newLoader: func(configPath string) *configinfra.CompositeLoader {
			return configinfra.NewStandardLoader(configPath)
		},
	}
	c.CLIContainer = &cli.CLIContainer{Bootstrap: c.Bootstrap}
	return c
}

// Bootstrap loads configuration and wires every component.
func (c *Container) Bootstrap(ctx context.Context, configPath string, overrides map[string]interface{}) (*cli.Runtime, error) {
	snap, err := c.newLoader(configPath).Load(ctx, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	c.Snapshot = snap
	c.Config = configdomain.FromSnapshot(snap)

	c.Logger = logging.NewLogger(c.Config.LogLevel, c.Config.Debug, c.logOutput)

	tokens, err := auth.NewTokenSource(c.Config.Token, c.Config.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to set up token source: %w", err)
	}
	authHeaders := httpports.ChainHeaderProviders(
		apphttp.RequestIDProvider{},
		apphttp.NewAuthHeaderService(tokens, c.Logger.Named("auth")),
	)

	if c.HTTPClient == nil {
		c.HTTPClient = httpinfra.NewClient(c.Config.Timeout, c.Logger.Named("http"))
	}

	c.QuestionnaireClient = apphttp.NewQuestionnaireClient(
		httpdomain.Endpoint{URL: c.Config.QuestionnaireURL, UserAgent: c.Config.UserAgent},
		c.HTTPClient,
		authHeaders,
		c.Logger.Named("questionnaire"),
	)

	c.Logger.Debug("container initialized", "url", c.Config.QuestionnaireURL, "timeout", c.Config.Timeout)

	return &cli.Runtime{
		Config:   c.Config,
		Snapshot: c.Snapshot,
		Logger:   c.Logger,
		Client:   c.QuestionnaireClient,
	}, nil
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}
