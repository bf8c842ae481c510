package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"vkarpe.dev/internal/export"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <output-dir>",
		Short: "Write the page and its assets as static files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			opts := export.Options{
				OutputDir: args[0],
				StaticDir: cfg.StaticDir,
			}
			written, err := export.Write(cmd.Context(), opts, cfg.Content)
			if err != nil {
				log.Error().Err(err).Msg("export failed")
				return err
			}

			for _, path := range written {
				log.Info().Str("file", path).Msg("created")
			}
			log.Info().Str("dir", opts.OutputDir).Int("files", len(written)).Msg("done")
			return nil
		},
	}
}
