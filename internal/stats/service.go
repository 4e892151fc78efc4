package stats

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"nineblocker/internal/export"
	"nineblocker/internal/league"
)

type ServiceStats struct {
	logger     *zap.Logger
	repository Repository
}

func NewServiceStats(logger *zap.Logger, repository Repository) *ServiceStats {
	return &ServiceStats{
		logger:     logger,
		repository: repository,
	}
}

// Export fetches a season and writes it to dir, returning the file path.
func (s *ServiceStats) Export(ctx context.Context, code, dir string) (string, league.Season, error) {
	season, err := s.repository.FetchSeason(ctx, code)
	if err != nil {
		s.logger.Error("Failed to fetch season", zap.String("season", code), zap.Error(err))
		return "", league.Season{}, err
	}

	path := filepath.Join(dir, league.FileName(code))
	if err := export.WriteJSON(path, season); err != nil {
		s.logger.Error("Failed to write season", zap.String("path", path), zap.Error(err))
		return "", league.Season{}, err
	}

	s.logger.Info("season exported",
		zap.String("season", season.Name),
		zap.Int("rounds", season.TotalRounds),
		zap.Int("players", season.PlayerCount),
		zap.String("path", path),
	)
	return path, season, nil
}

// Publish writes the summary table of each season code to its target range
// in a single batch. Nothing is written if any season fails to load.
func (s *ServiceStats) Publish(ctx context.Context, targets map[string]string) error {
	seasons := make(map[string]league.Season, len(targets))
	for code, writeRange := range targets {
		season, err := s.repository.FetchSeason(ctx, code)
		if err != nil {
			return err
		}
		seasons[writeRange] = season
	}

	if err := s.repository.PublishSeasons(ctx, seasons); err != nil {
		s.logger.Error("Failed to publish seasons", zap.Int("seasons", len(targets)), zap.Error(err))
		return err
	}

	s.logger.Info("seasons published", zap.Any("targets", targets))
	return nil
}
