package worker

import (
	"context"

	"go.uber.org/zap"

	"nineblocker/config"
	"nineblocker/internal/league"
)

type exporter interface {
	Export(ctx context.Context, code, dir string) (string, league.Season, error)
}

type Worker struct {
	logger  *zap.Logger
	service exporter
	cfg     config.Sync
}

func NewWorker(logger *zap.Logger, service exporter, cfg config.Sync) *Worker {
	return &Worker{
		logger:  logger,
		service: service,
		cfg:     cfg,
	}
}

// SyncSeasons exports every configured season. A failing season is logged
// and skipped; the number of exported seasons is returned.
func (w *Worker) SyncSeasons(ctx context.Context) int {
	synced := 0
	for _, code := range w.cfg.Seasons {
		if ctx.Err() != nil {
			w.logger.Warn("Sync interrupted", zap.Error(ctx.Err()))
			break
		}

		w.logger.Info("Syncing season", zap.String("season", code))

		path, _, err := w.service.Export(ctx, code, w.cfg.OutputDir)
		if err != nil {
			w.logger.Error("Failed to sync season", zap.String("season", code), zap.Error(err))
			continue
		}

		w.logger.Info("Successfully synced season", zap.String("season", code), zap.String("path", path))
		synced++
	}
	return synced
}
