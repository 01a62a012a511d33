package pickvalue

import "frontoffice/internal/config"

// minRookieSalary pads the schedule when a league drafts more players
// than the configured scale covers.
const minRookieSalary = 500

// RookieSalaries fits the configured rookie salary scale to the league's
// draft size: truncate when the league drafts fewer players, pad with the
// minimum when it drafts more. The returned slice is indexed by overall
// pick number minus one.
func RookieSalaries(cfg *config.SportConfig, numTeams int) []float64 {
	target := numTeams * cfg.DraftRounds
	salaries := append([]float64(nil), cfg.RookieSalaries...)

	for len(salaries) < target {
		salaries = append(salaries, minRookieSalary)
	}
	if len(salaries) > target {
		salaries = salaries[:target]
	}
	return salaries
}
