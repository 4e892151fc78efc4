package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"nineblocker/config"
	googleClient "nineblocker/internal/client/google"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the local configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(a), newConfigCheckCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Copy the configuration template to the local config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			}
			if err := os.MkdirAll(filepath.Dir(a.configPath), 0o755); err != nil {
				return err
			}
			// holds secrets once edited
			if err := renameio.WriteFile(a.configPath, config.TemplateYAML(), 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", a.configPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s; fill in %s and %s\n", a.configPath, config.PathSpreadsheetId, config.PathApiKey)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Fail unless the Google Sheets credentials are filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := googleClient.CheckConfigured(cfg.GoogleSheets); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "google sheets configured")
			return nil
		},
	}
}
