package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nineblocker/config"
	googleClient "nineblocker/internal/client/google"
	"nineblocker/internal/league"
)

type sheetClient interface {
	BatchRead(ctx context.Context, ranges ...string) ([][][]interface{}, error)
	BatchUpdate(ctx context.Context, data map[string][][]interface{}) error
}

// RepositorySheets reads league records from the configured spreadsheet.
type RepositorySheets struct {
	logger *zap.Logger
	cfg    config.GoogleSheets
	client sheetClient
}

func NewRepositorySheets(logger *zap.Logger, cfg config.GoogleSheets, client *googleClient.Client) *RepositorySheets {
	return newRepositorySheets(logger, cfg, client)
}

func newRepositorySheets(logger *zap.Logger, cfg config.GoogleSheets, client sheetClient) *RepositorySheets {
	return &RepositorySheets{
		logger: logger,
		cfg:    cfg,
		client: client,
	}
}

func (r *RepositorySheets) FetchSeason(ctx context.Context, code string) (league.Season, error) {
	data, err := r.client.BatchRead(ctx, r.cfg.ScoreRange, r.cfg.StatRange)
	if err != nil {
		return league.Season{}, fmt.Errorf("unable to read league sheets: %w", err)
	}

	season, err := league.Build(googleClient.Strings(data[0]), googleClient.Strings(data[1]), code)
	if err != nil {
		return league.Season{}, fmt.Errorf("unable to build season %s: %w", code, err)
	}

	r.logger.Debug("season read from sheet",
		zap.String("season", code),
		zap.Int("rows", len(data[0])),
		zap.Int("players", season.PlayerCount),
	)
	return season, nil
}

func (r *RepositorySheets) PublishSeasons(ctx context.Context, seasons map[string]league.Season) error {
	updates := make(map[string][][]interface{}, len(seasons))
	rows := 0
	for writeRange, season := range seasons {
		updates[writeRange] = season.Table()
		rows += len(updates[writeRange])
	}

	if err := r.client.BatchUpdate(ctx, updates); err != nil {
		return fmt.Errorf("unable to write seasons to sheet: %w", err)
	}

	r.logger.Debug("seasons written to sheet", zap.Int("ranges", len(updates)), zap.Int("rowsWritten", rows))
	return nil
}
