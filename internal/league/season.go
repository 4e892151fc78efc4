package league

import (
	"fmt"
	"strconv"
)

// SeasonName renders a YYYYMM season code, e.g. "202601" -> "2026년 1월".
func SeasonName(code string) (string, error) {
	if len(code) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeasonCode, code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidSeasonCode, code)
		}
	}
	month, _ := strconv.Atoi(code[4:])
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidSeasonCode, code)
	}
	return fmt.Sprintf("%s년 %d월", code[:4], month), nil
}

// FileName is the output file for a season code.
func FileName(code string) string {
	return "league_stats_" + code + ".json"
}
