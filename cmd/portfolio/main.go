package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vkarpe.dev/internal/config"
	"vkarpe.dev/internal/logging"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or export the portfolio page",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("content", "", "YAML content file (defaults to the compiled-in content)")
	root.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "", "Log format (console|json)")

	root.AddCommand(newServeCmd(), newExportCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("portfolio %s (%s)\n", version, commit)
		},
	}
}

// loadConfig reads the environment, applies flag overrides, sets up logging
// and only then loads the content
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if err := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}

	// --content is relative to the working directory, unlike CONTENT_FILE
	if v, _ := flags.GetString("content"); v != "" {
		abs, err := filepath.Abs(v)
		if err != nil {
			return nil, fmt.Errorf("resolve --content: %w", err)
		}
		cfg.ContentFile = abs
	}
	if err := cfg.LoadContent(); err != nil {
		return nil, err
	}

	source := "compiled-in"
	if cfg.ContentFile != "" {
		source = cfg.ContentPath()
	}
	log.Debug().
		Str("content", source).
		Int("projects", len(cfg.Content.Projects)).
		Int("skill_groups", len(cfg.Content.SkillGroups)).
		Msg("content loaded")

	return cfg, nil
}
