package stats

import (
	"context"

	"nineblocker/internal/league"
)

type Repository interface {
	FetchSeason(ctx context.Context, code string) (league.Season, error)
	// PublishSeasons writes each season's table to its range, keyed by range.
	PublishSeasons(ctx context.Context, seasons map[string]league.Season) error
}
