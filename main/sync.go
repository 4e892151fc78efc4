package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nineblocker/config"
	googleClient "nineblocker/internal/client/google"
	"nineblocker/internal/cron"
	"nineblocker/internal/stats"
	"nineblocker/internal/worker"
)

func (a *app) newStatsService(ctx context.Context, cfg config.Config) (*stats.ServiceStats, error) {
	gClient, err := googleClient.NewGoogleClient(ctx, cfg.GoogleSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google client: %w", err)
	}

	repo := stats.NewRepositorySheets(a.logger, cfg.GoogleSheets, gClient)
	return stats.NewServiceStats(a.logger, repo), nil
}

func newSyncCmd(a *app) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Export configured seasons from Google Sheets to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Sync.Seasons) == 0 {
				return fmt.Errorf("no seasons configured (sync.seasons)")
			}

			service, err := a.newStatsService(ctx, cfg)
			if err != nil {
				return err
			}
			w := worker.NewWorker(a.logger, service, cfg.Sync)

			if once {
				if synced := w.SyncSeasons(ctx); synced != len(cfg.Sync.Seasons) {
					return fmt.Errorf("synced %d of %d seasons", synced, len(cfg.Sync.Seasons))
				}
				return nil
			}

			s := cron.NewScheduler(a.logger, w, cfg.Sync.Schedule)
			if err := s.Start(ctx); err != nil {
				return err
			}
			defer s.Stop()

			<-ctx.Done()
			a.logger.Info("shutting down", zap.Error(ctx.Err()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Sync once and exit")
	return cmd
}

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "publish <seasonCode> <range> [<seasonCode> <range>...]",
		Short:   "Write season summary tables back to the spreadsheet",
		Long:    `publish needs googleSheets.serviceAccountFile; an API key can only read.`,
		Example: `  nineblocker publish 202601 "요약!A1" 202602 "요약!M1"`,
		Args:    publishArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, _ := publishTargets(args)

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			service, err := a.newStatsService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return service.Publish(cmd.Context(), targets)
		},
	}
}

func publishArgs(cmd *cobra.Command, args []string) error {
	_, err := publishTargets(args)
	return err
}

// publishTargets pairs season codes with write ranges.
func publishTargets(args []string) (map[string]string, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("expected <seasonCode> <range> pairs, got %d args", len(args))
	}

	targets := make(map[string]string, len(args)/2)
	ranges := make(map[string]bool, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		code, writeRange := args[i], args[i+1]
		if _, ok := targets[code]; ok {
			return nil, fmt.Errorf("season %s given twice", code)
		}
		if ranges[writeRange] {
			return nil, fmt.Errorf("range %s given twice", writeRange)
		}
		targets[code] = writeRange
		ranges[writeRange] = true
	}
	return targets, nil
}
