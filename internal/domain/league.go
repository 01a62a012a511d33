package domain

// Phase is the league calendar phase. Ordering matters: trade rules and
// valuation penalties key off phase ranges.
type Phase int

const (
	PhasePreseason Phase = iota
	PhaseRegularSeason
	PhaseAfterTradeDeadline
	PhasePlayoffs
	PhaseBeforeDraft
	PhaseDraft
	PhaseAfterDraft
	PhaseResignPlayers
	PhaseFreeAgency
)

// LeagueState is the league-wide snapshot valuation runs against.
type LeagueState struct {
	Season     int
	Phase      Phase
	UserTeamID int64
	NumTeams   int

	// SalaryCap is in thousands of currency units, matching Contract.Amount.
	SalaryCap float64

	// DaysLeftInFreeAgency drives the cap-space penalty ramp during free
	// agency; 30 at the start, 0 at the end.
	DaysLeftInFreeAgency int
}

// TradingAllowed reports whether the calendar permits trades at all.
// Trades are frozen from the trade deadline through the end of playoffs.
func (l *LeagueState) TradingAllowed() bool {
	return l.Phase < PhaseAfterTradeDeadline || l.Phase > PhasePlayoffs
}

// InSigningWindow reports whether the league is in the re-sign/free-agency
// stretch where teams guard cap space.
func (l *LeagueState) InSigningWindow() bool {
	return l.Phase >= PhaseResignPlayers && l.Phase <= PhaseFreeAgency
}
