package standing

import (
	"errors"
	"sort"
)

var ErrNegativeGoals = errors.New("goals must be non-negative")

// ApplyResult folds one final score into both participating rows. It is a
// pure in-memory transformation; persistence belongs to the caller. The
// update is symmetric in home/away: ordering carries no ranking meaning.
func ApplyResult(home, away *Standing, homeGoals, awayGoals int) error {
	if homeGoals < 0 || awayGoals < 0 {
		return ErrNegativeGoals
	}

	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals
	home.GoalDifference = home.GoalsFor - home.GoalsAgainst
	away.GoalDifference = away.GoalsFor - away.GoalsAgainst

	home.Played++
	away.Played++

	switch {
	case homeGoals > awayGoals:
		home.Won++
		home.Points += 3
		away.Lost++
	case homeGoals < awayGoals:
		away.Won++
		away.Points += 3
		home.Lost++
	default:
		home.Drawn++
		away.Drawn++
		home.Points++
		away.Points++
	}

	return nil
}

// SortTable orders rows for display: points descending, then goal difference
// descending. Remaining ties keep their incoming order; no third key is
// applied. Positions are assigned 1..n after sorting.
func SortTable(rows []Standing) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDifference > rows[j].GoalDifference
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}
