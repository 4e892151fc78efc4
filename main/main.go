package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nineblocker/config"
	"nineblocker/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "nineblocker",
		Short:         "NINEBLOCKER league statistics",
		Long:          `nineblocker converts league record sheets (local xlsx or Google Sheets) into per-season JSON.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New("nineblocker", logging.AppModeFromEnv())
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.LocalPath, "Config file path")

	rootCmd.AddCommand(
		newConvertCmd(a),
		newSyncCmd(a),
		newPublishCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// loadConfig reads the config file once; the value is handed to every
// component from here on.
func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Read(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	a.logger.Info("using config", zap.String("file", a.configPath))
	return cfg, nil
}
