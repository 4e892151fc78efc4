package stats

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nineblocker/config"
	"nineblocker/internal/league"
)

type fakeSheets struct {
	ranges  []string
	data    [][][]interface{}
	readErr error

	batches int
	written map[string][][]interface{}
}

func (f *fakeSheets) BatchRead(_ context.Context, ranges ...string) ([][][]interface{}, error) {
	f.ranges = ranges
	return f.data, f.readErr
}

func (f *fakeSheets) BatchUpdate(_ context.Context, data map[string][][]interface{}) error {
	f.batches++
	f.written = data
	return nil
}

func sheetsFixture() *fakeSheets {
	score := [][]interface{}{
		{"팀", "선수명", "번호", "1라운드"},
		{"블루", "김철수", 7.0, 12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 12, nil, 12},
	}
	stat := [][]interface{}{
		{"부가기록"},
		{},
		{"김철수", 7.0, 2, 1, 0, 0, 1, 2, 1, 0, 0, 1},
	}
	return &fakeSheets{data: [][][]interface{}{score, stat}}
}

func gsConfig() config.GoogleSheets {
	return config.GoogleSheets{ScoreRange: "'전체득점'!A1:Z", StatRange: "'부가기록 계산'!A1:L"}
}

func TestRepositorySheets_FetchSeason(t *testing.T) {
	fake := sheetsFixture()
	repo := newRepositorySheets(zap.NewNop(), gsConfig(), fake)

	season, err := repo.FetchSeason(t.Context(), "202601")
	require.NoError(t, err)

	assert.Equal(t, []string{"'전체득점'!A1:Z", "'부가기록 계산'!A1:L"}, fake.ranges)
	assert.Equal(t, 1, season.TotalRounds)
	require.Len(t, season.Players, 1)
	assert.Equal(t, 7, season.Players[0].Number)
	assert.Equal(t, league.Score{Total: 12, Average: 12}, season.Players[0].Score)
	assert.Equal(t, league.Stat{Total: 2, Average: 2}, season.Players[0].Extra.Rebound)
}

func TestRepositorySheets_ReadError(t *testing.T) {
	fake := &fakeSheets{readErr: errors.New("quota exceeded")}
	repo := newRepositorySheets(zap.NewNop(), gsConfig(), fake)

	_, err := repo.FetchSeason(t.Context(), "202601")
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestServiceStats_Export(t *testing.T) {
	repo := newRepositorySheets(zap.NewNop(), gsConfig(), sheetsFixture())
	svc := NewServiceStats(zap.NewNop(), repo)
	dir := t.TempDir()

	path, season, err := svc.Export(t.Context(), "202601", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "league_stats_202601.json"), path)
	assert.Equal(t, 1, season.PlayerCount)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "2026년 1월", doc["시즌"])
	assert.EqualValues(t, 1, doc["총선수수"])
}

func TestServiceStats_ExportInvalidCode(t *testing.T) {
	repo := newRepositorySheets(zap.NewNop(), gsConfig(), sheetsFixture())
	svc := NewServiceStats(zap.NewNop(), repo)

	_, _, err := svc.Export(t.Context(), "2026", t.TempDir())
	assert.ErrorIs(t, err, league.ErrInvalidSeasonCode)
}

func TestServiceStats_Publish(t *testing.T) {
	fake := sheetsFixture()
	svc := NewServiceStats(zap.NewNop(), newRepositorySheets(zap.NewNop(), gsConfig(), fake))

	err := svc.Publish(t.Context(), map[string]string{"202601": "요약!A1", "202602": "요약!M1"})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.batches, "all seasons go out in one batch")
	require.Len(t, fake.written, 2)
	assert.Len(t, fake.written["요약!A1"], 2)
	assert.Len(t, fake.written["요약!M1"], 2)
}

func TestServiceStats_PublishWritesNothingOnFetchError(t *testing.T) {
	fake := sheetsFixture()
	svc := NewServiceStats(zap.NewNop(), newRepositorySheets(zap.NewNop(), gsConfig(), fake))

	err := svc.Publish(t.Context(), map[string]string{"202601": "요약!A1", "2026": "요약!M1"})
	assert.ErrorIs(t, err, league.ErrInvalidSeasonCode)
	assert.Zero(t, fake.batches)
}
