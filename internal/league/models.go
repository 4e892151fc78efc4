// Package league turns the league record sheets into season statistics.
package league

// Season is the JSON document written per season code.
type Season struct {
	Name        string   `json:"시즌"`
	TotalRounds int      `json:"총라운드"`
	PlayerCount int      `json:"총선수수"`
	Players     []Player `json:"선수목록"`
}

// Player.Team is nil for rows above the first team cell and encodes as null.
type Player struct {
	Number     int        `json:"번호"`
	Team       *string    `json:"팀"`
	Name       string     `json:"선수명"`
	Score      Score      `json:"득점"`
	Attendance int        `json:"출석"`
	Extra      ExtraStats `json:"부가기록"`
}

type Score struct {
	Total   int     `json:"누적득점"`
	Average float64 `json:"평균득점"`
}

type Stat struct {
	Total   int     `json:"누적"`
	Average float64 `json:"평균"`
}

// ExtraStats field order is the order the site renders them in.
type ExtraStats struct {
	Assist     Stat `json:"어시스트"`
	Rebound    Stat `json:"리바운드"`
	Steal      Stat `json:"스틸"`
	Block      Stat `json:"블록"`
	ThreePoint Stat `json:"3점슛"`
}

type playerKey struct {
	name   string
	number int
}
