package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nineblocker/internal/league"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("GOOGLE_SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "config.local.yaml")

	_, err := run(t, "config", "init", "-c", path)
	require.NoError(t, err)

	_, err = run(t, "config", "check", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")

	_, err = run(t, "config", "init", "-c", path)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, os.WriteFile(path, []byte("googleSheets:\n  spreadsheetId: 1AbC\n  apiKey: AIza\n"), 0o600))
	out, err := run(t, "config", "check", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "google sheets configured")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	_, err := f.NewSheet(league.ScoreSheet)
	require.NoError(t, err)
	_, err = f.NewSheet(league.StatSheet)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(league.ScoreSheet, "D1", "1라운드"))
	require.NoError(t, f.SetCellValue(league.ScoreSheet, "B2", "김철수"))
	require.NoError(t, f.SetCellValue(league.ScoreSheet, "C2", 7))
	input := filepath.Join(dir, "league.xlsx")
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	out, err := run(t, "convert", input, "202601", "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "시즌: 2026년 1월")
	assert.Contains(t, out, "총 라운드: 1")
	assert.Contains(t, out, "총 선수 수: 1")
	assert.FileExists(t, filepath.Join(dir, "league_stats_202601.json"))
}

func TestConvert_MissingFile(t *testing.T) {
	_, err := run(t, "convert", filepath.Join(t.TempDir(), "none.xlsx"), "202601")
	assert.ErrorContains(t, err, "file not found")
}

func TestPublishTargets(t *testing.T) {
	targets, err := publishTargets([]string{"202601", "요약!A1", "202602", "요약!M1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"202601": "요약!A1", "202602": "요약!M1"}, targets)

	for _, args := range [][]string{
		nil,
		{"202601"},
		{"202601", "요약!A1", "202601", "요약!M1"},
		{"202601", "요약!A1", "202602", "요약!A1"},
	} {
		_, err := publishTargets(args)
		assert.Error(t, err, "%v", args)
	}
}
