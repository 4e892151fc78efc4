package league

// Table lays the season out as sheet rows, header first.
func (s Season) Table() [][]interface{} {
	values := [][]interface{}{{
		"번호", "팀", "선수명", "누적득점", "평균득점", "출석",
		"어시스트", "리바운드", "스틸", "블록", "3점슛",
	}}
	for _, p := range s.Players {
		values = append(values, []interface{}{
			p.Number, teamName(p.Team), p.Name, p.Score.Total, p.Score.Average, p.Attendance,
			p.Extra.Assist.Total, p.Extra.Rebound.Total, p.Extra.Steal.Total,
			p.Extra.Block.Total, p.Extra.ThreePoint.Total,
		})
	}
	return values
}

func teamName(team *string) string {
	if team == nil {
		return ""
	}
	return *team
}
