package domain

// TradeSide is one team's half of a proposed trade: the assets it sends.
type TradeSide struct {
	TeamID    int64
	PlayerIDs []int64
	PickIDs   []int64
}

// clone returns a deep copy of the side.
func (s TradeSide) clone() TradeSide {
	out := TradeSide{TeamID: s.TeamID}
	out.PlayerIDs = append([]int64(nil), s.PlayerIDs...)
	out.PickIDs = append([]int64(nil), s.PickIDs...)
	return out
}

// equal reports whether two sides name the same team and assets in the
// same order.
func (s TradeSide) equal(o TradeSide) bool {
	if s.TeamID != o.TeamID || len(s.PlayerIDs) != len(o.PlayerIDs) || len(s.PickIDs) != len(o.PickIDs) {
		return false
	}
	for i := range s.PlayerIDs {
		if s.PlayerIDs[i] != o.PlayerIDs[i] {
			return false
		}
	}
	for i := range s.PickIDs {
		if s.PickIDs[i] != o.PickIDs[i] {
			return false
		}
	}
	return true
}

// TradeProposal is a two-sided trade. Sides[0] is always the user's team,
// Sides[1] the AI team, matching how the negotiation engine evaluates it.
type TradeProposal struct {
	Sides [2]TradeSide
}

// Clone returns a deep copy, safe to mutate during negotiation.
func (t *TradeProposal) Clone() *TradeProposal {
	return &TradeProposal{Sides: [2]TradeSide{t.Sides[0].clone(), t.Sides[1].clone()}}
}

// Equal reports whether both proposals carry the same teams and assets.
func (t *TradeProposal) Equal(o *TradeProposal) bool {
	return t.Sides[0].equal(o.Sides[0]) && t.Sides[1].equal(o.Sides[1])
}

// Empty reports whether no assets are on either side.
func (t *TradeProposal) Empty() bool {
	return len(t.Sides[0].PlayerIDs) == 0 && len(t.Sides[0].PickIDs) == 0 &&
		len(t.Sides[1].PlayerIDs) == 0 && len(t.Sides[1].PickIDs) == 0
}
