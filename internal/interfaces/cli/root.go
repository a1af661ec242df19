package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	configdomain "qform.io/cli/internal/core/domain/config"
	"qform.io/cli/internal/core/domain/questionnaire"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// Submitter sends one questionnaire and returns the raw response.
type Submitter interface {
	Submit(ctx context.Context, q questionnaire.Questionnaire) (*http.Response, error)
}

// Runtime is everything a command needs once configuration is resolved.
type Runtime struct {
	Config   configdomain.Config
	Snapshot configdomain.Snapshot
	Logger   hclog.Logger
	Client   Submitter
}

// BootstrapFunc resolves configuration and builds the runtime. It is
// provided by the DI container so this package does not import it.
type BootstrapFunc func(ctx context.Context, configPath string, overrides map[string]interface{}) (*Runtime, error)

// CLIContainer holds the dependencies for CLI commands
type CLIContainer struct {
	Bootstrap BootstrapFunc

	runtime *Runtime
}

// Runtime returns the runtime built by the root command's pre-run hook.
func (c *CLIContainer) Runtime() *Runtime {
	return c.runtime
}

// NewRootCommand RootCommand represents the base command when called without any subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "qf",
		Short: "Questionnaire submission client",
		Long: `qf submits a questionnaire (personal details and identity photos)
to the backend as a multipart form, authenticated with a bearer token.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			overrides, err := collectOverrides(cmd)
			if err != nil {
				return err
			}

			rt, err := container.Bootstrap(cmd.Context(), configPath, overrides)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			container.runtime = rt
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().String("config", "", "Config file path (default is $HOME/.qform/config.json)")
	rootCmd.PersistentFlags().String("url", "", "Questionnaire endpoint URL")
	rootCmd.PersistentFlags().String("token", "", "Bearer token")
	rootCmd.PersistentFlags().String("token-file", "", "File holding the bearer token")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout, 0 for none")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(NewSubmitCommand(container))
	rootCmd.AddCommand(NewFieldsCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// collectOverrides turns explicitly set flags into config overrides.
func collectOverrides(cmd *cobra.Command) (map[string]interface{}, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()

	strFlags := map[string]string{
		"url":        configdomain.KeyQuestionnaireURL,
		"token":      configdomain.KeyToken,
		"token-file": configdomain.KeyTokenFile,
		"log-level":  configdomain.KeyLogLevel,
	}
	for flag, key := range strFlags {
		if !flags.Changed(flag) {
			continue
		}
		v, err := flags.GetString(flag)
		if err != nil {
			return nil, err
		}
		overrides[key] = v
	}

	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return nil, err
		}
		overrides[configdomain.KeyTimeout] = v
	}
	if flags.Changed("debug") {
		v, err := flags.GetBool("debug")
		if err != nil {
			return nil, err
		}
		overrides[configdomain.KeyDebug] = v
	}
	return overrides, nil
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

