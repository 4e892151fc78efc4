package league

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, withStats bool) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(ScoreSheet)
	require.NoError(t, err)
	for cell, v := range map[string]interface{}{
		"A1": "팀", "B1": "선수명", "C1": "번호", "D1": "1라운드", "E1": "2라운드",
		"A2": "블루", "B2": "김철수", "C2": 7, "S2": 2, "T2": 31, "V2": 15.5,
		"B3": "이영희", "C3": 11, "S3": 1, "T3": 8, "V3": 8,
	} {
		require.NoError(t, f.SetCellValue(ScoreSheet, cell, v))
	}

	if withStats {
		_, err = f.NewSheet(StatSheet)
		require.NoError(t, err)
		for cell, v := range map[string]interface{}{
			"A1": "부가기록",
			"A3": "이영희", "B3": 11, "C3": 4, "D3": 6, "H3": 4, "I3": 6,
		} {
			require.NoError(t, f.SetCellValue(StatSheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "2026-01 리그 기록.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestConvertFile(t *testing.T) {
	season, err := ConvertFile(writeWorkbook(t, true), "202601")
	require.NoError(t, err)

	assert.Equal(t, "2026년 1월", season.Name)
	assert.Equal(t, 2, season.TotalRounds)
	require.Len(t, season.Players, 2)

	assert.Equal(t, 15.5, season.Players[0].Score.Average)
	assert.Equal(t, ptr("블루"), season.Players[1].Team)
	assert.Equal(t, Stat{Total: 4, Average: 4}, season.Players[1].Extra.Rebound)
	assert.Equal(t, Stat{Total: 6, Average: 6}, season.Players[1].Extra.Assist)
}

func TestConvertFile_MissingStatSheet(t *testing.T) {
	_, err := ConvertFile(writeWorkbook(t, false), "202601")
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestConvertFile_NoFile(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "missing.xlsx"), "202601")
	assert.Error(t, err)
}
