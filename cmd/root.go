// Package cmd implements the hoopvision command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hoopvision/internal/appearance"
	"hoopvision/internal/catalog"
	"hoopvision/internal/landmark"
	"hoopvision/internal/version"
)

// Shared state built by the root PersistentPreRunE and used by subcommands.
var (
	logger   *zap.Logger
	cat      *catalog.Catalog
	analyzer *appearance.Analyzer
	cascade  *landmark.CascadeDetector
)

var (
	catalogPath string
	logLevel    string
	faceCascade string
	eyeCascade  string
)

var rootCmd = &cobra.Command{
	Use:     "hoopvision",
	Short:   "Appearance inference and catalog matching for player headshots",
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if logger, err = buildLogger(); err != nil {
			return err
		}

		if catalogPath != "" {
			if cat, err = catalog.LoadFile(catalogPath); err != nil {
				return err
			}
			logger.Info("catalog loaded", zap.String("path", catalogPath), zap.Int("total_styles", cat.TotalStyles))
		} else {
			cat = catalog.Default()
		}

		analyzer = appearance.New(cat, appearance.DefaultParams()).WithLogger(logger)
		if faceCascade != "" {
			cascade, err = landmark.NewCascadeDetector(faceCascade, eyeCascade)
			if err != nil {
				return fmt.Errorf("load cascades: %w", err)
			}
			analyzer = analyzer.WithDetector(cascade)
			logger.Info("cascade landmark detection enabled", zap.String("face", faceCascade), zap.String("eyes", eyeCascade))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cascade != nil {
			cascade.Close()
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildLogger returns a production JSON logger. The --log-level flag wins
// over the LOG_LEVEL environment variable; both default to info.
func buildLogger() (*zap.Logger, error) {
	level := logLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// Execute runs the CLI with a context cancelled by SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(fmt.Sprintf("hoopvision %s\n", version.String()))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog mappings JSON (default: embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&faceCascade, "face-cascade", "", "path to a Haar face cascade XML for landmark refinement")
	rootCmd.PersistentFlags().StringVar(&eyeCascade, "eye-cascade", "", "path to a Haar eye cascade XML (requires --face-cascade)")
}
