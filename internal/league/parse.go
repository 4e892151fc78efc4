package league

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ScoreSheet = "전체득점"
	StatSheet  = "부가기록 계산"

	roundMarker = "라운드"
)

// Column indexes (0-based) in the score sheet.
const (
	colTeam       = 0  // A
	colName       = 1  // B
	colNumber     = 2  // C
	colAttendance = 18 // S
	colTotalScore = 19 // T
	colAvgScore   = 21 // V
)

// Column indexes (0-based) in the extra stats sheet. Totals run C..G and
// averages H..L, both in the order rebound, assist, steal, block, 3pt.
const (
	colStatName   = 0
	colStatNumber = 1
	colStatTotal  = 2
	colStatAvg    = 7
)

// Build assembles a season from the rows of the score sheet and the extra
// stats sheet, both starting at sheet row 1.
func Build(scoreRows, statRows [][]string, code string) (Season, error) {
	name, err := SeasonName(code)
	if err != nil {
		return Season{}, err
	}

	var rounds int
	if len(scoreRows) > 0 {
		rounds = CountRounds(scoreRows[0])
	}

	players, err := parseScores(scoreRows)
	if err != nil {
		return Season{}, err
	}
	extras, err := parseExtraStats(statRows)
	if err != nil {
		return Season{}, err
	}

	for i := range players {
		key := playerKey{name: players[i].Name, number: players[i].Number}
		if extra, ok := extras[key]; ok {
			players[i].Extra = extra
		}
	}

	return Season{
		Name:        name,
		TotalRounds: rounds,
		PlayerCount: len(players),
		Players:     players,
	}, nil
}

// CountRounds counts the header cells that name a round.
func CountRounds(header []string) int {
	n := 0
	for _, cell := range header {
		if strings.Contains(cell, roundMarker) {
			n++
		}
	}
	return n
}

func parseScores(rows [][]string) ([]Player, error) {
	players := []Player{}
	var team *string

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		sheetRow := i + 1

		if t := cell(row, colTeam); t != "" {
			team = &t
		}

		name := cell(row, colName)
		if name == "" || cell(row, colNumber) == "" {
			continue
		}

		r := rowReader{sheet: ScoreSheet, row: sheetRow, cells: row}
		p := Player{
			Number:     r.intAt(colNumber),
			Team:       team,
			Name:       name,
			Attendance: r.intAt(colAttendance),
			Score: Score{
				Total:   r.intAt(colTotalScore),
				Average: round1(r.floatAt(colAvgScore)),
			},
		}
		if r.err != nil {
			return nil, r.err
		}
		players = append(players, p)
	}

	return players, nil
}

func parseExtraStats(rows [][]string) (map[playerKey]ExtraStats, error) {
	stats := make(map[playerKey]ExtraStats)

	for i := 2; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, colStatName)
		if name == "" || cell(row, colStatNumber) == "" {
			continue
		}

		r := rowReader{sheet: StatSheet, row: i + 1, cells: row}
		stat := func(offset int) Stat {
			return Stat{
				Total:   r.intAt(colStatTotal + offset),
				Average: round1(r.floatAt(colStatAvg + offset)),
			}
		}
		key := playerKey{name: name, number: r.intAt(colStatNumber)}
		extra := ExtraStats{
			Rebound:    stat(0),
			Assist:     stat(1),
			Steal:      stat(2),
			Block:      stat(3),
			ThreePoint: stat(4),
		}
		if r.err != nil {
			return nil, r.err
		}
		stats[key] = extra
	}

	return stats, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowReader reads numeric cells from one row and keeps the first error.
type rowReader struct {
	sheet string
	row   int
	cells []string
	err   error
}

func (r *rowReader) floatAt(idx int) float64 {
	s := strings.ReplaceAll(cell(r.cells, idx), ",", "")
	if s == "" || r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		colName, _ := excelize.ColumnNumberToName(idx + 1)
		r.err = &ParseError{Sheet: r.sheet, Row: r.row, Column: colName, Err: err}
		return 0
	}
	return v
}

func (r *rowReader) intAt(idx int) int {
	return int(r.floatAt(idx))
}

// round1 rounds the exact binary value to one decimal, ties to even.
func round1(v float64) float64 {
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return v
}
