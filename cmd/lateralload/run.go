package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/lateralload-go/internal/config"
	"github.com/ukaji3/lateralload-go/internal/logger"
	"github.com/ukaji3/lateralload-go/pkg/lateralload"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/output"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid logging flags: %w", err)
	}
	if err := logger.Configure(cfg.Logging, os.Stderr); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	runner := lateralload.NewRunner(func(e lateralload.Event) {
		log.Debug().Str("run_id", e.RunID).Stringer("state", e.State).Msg("run state changed")
	})
	if _, err := runner.Start(cmd.Context(), opts); err != nil {
		return err
	}

	var spin *spinner
	if cfg.Spinner && !noSpinner {
		spin = startSpinner()
	}
	result, err := runner.Wait()
	spin.Stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := output.ToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	return output.WriteSummary(out, result, showPoints)
}

// buildOptions merges flags over configuration defaults. The elevation is
// only parsed once it is present, so missing fields are reported together.
func buildOptions(cfg *config.Config) (lateralload.Options, error) {
	opts := lateralload.Options{
		Folder:         firstNonEmpty(folder, cfg.Folder),
		ColumnFile:     columnFile,
		WallFile:       wallFile,
		CoordinateFile: coordFile,
		OutputFile:     firstNonEmpty(outputFile, cfg.OutputFile),
	}
	if zText != "" {
		z, err := lateralload.ParseElevation(zText)
		if err != nil {
			return opts, err
		}
		opts.Elevation = &z
	}
	return opts, opts.Validate()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
