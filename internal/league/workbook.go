package league

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ConvertFile reads a league record workbook from disk.
func ConvertFile(path, code string) (Season, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Season{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return ParseWorkbook(f, code)
}

// ParseWorkbook builds a season from the score and extra stats sheets of an
// open workbook. Cached formula results are used as cell values.
func ParseWorkbook(f *excelize.File, code string) (Season, error) {
	scoreRows, err := sheetRows(f, ScoreSheet)
	if err != nil {
		return Season{}, err
	}
	statRows, err := sheetRows(f, StatSheet)
	if err != nil {
		return Season{}, err
	}
	return Build(scoreRows, statRows, code)
}

func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}
