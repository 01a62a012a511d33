package fixture

import (
	"context"
	"testing"

	"frontoffice/internal/config"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	stores := NewStores()

	league, err := Seed(ctx, stores, config.Default("basketball"))
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if league.NumTeams != 8 || league.UserTeamID != 1 {
		t.Errorf("league = %+v", league)
	}

	stored, err := stores.League.Get(ctx)
	if err != nil {
		t.Fatalf("league not persisted: %v", err)
	}
	if stored.Season != league.Season || stored.NumTeams != league.NumTeams ||
		stored.UserTeamID != league.UserTeamID || stored.SalaryCap != league.SalaryCap {
		t.Errorf("stored league = %+v, want %+v", stored, league)
	}

	all, err := stores.Teams.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("teams = %d, want 8", len(all))
	}

	for _, tm := range all {
		roster, err := stores.Players.GetByTeam(ctx, tm.TeamID)
		if err != nil {
			t.Fatalf("roster %d: %v", tm.TeamID, err)
		}
		if len(roster) != 10 {
			t.Errorf("team %d roster = %d players, want 10", tm.TeamID, len(roster))
		}
		// Rosters come out pre-sorted, star first.
		for i := 1; i < len(roster); i++ {
			if roster[i-1].Value < roster[i].Value {
				t.Errorf("team %d roster out of order at slot %d", tm.TeamID, i)
			}
		}

		picks, err := stores.Picks.GetByTeam(ctx, tm.TeamID)
		if err != nil {
			t.Fatalf("picks %d: %v", tm.TeamID, err)
		}
		if len(picks) != 2 {
			t.Errorf("team %d picks = %d, want 2", tm.TeamID, len(picks))
		}
		for _, dp := range picks {
			if dp.Season <= league.Season || dp.Round != 1 {
				t.Errorf("team %d pick = %+v", tm.TeamID, dp)
			}
		}
	}

	// Everybody can afford their roster under the fixture cap.
	for _, tm := range all {
		roster, _ := stores.Players.GetByTeam(ctx, tm.TeamID)
		var payroll float64
		for _, p := range roster {
			payroll += p.Contract.Amount
		}
		if payroll >= league.SalaryCap {
			t.Errorf("team %d payroll %v exceeds cap %v", tm.TeamID, payroll, league.SalaryCap)
		}
	}

	// Seeding twice into the same stores must fail loudly, not double up.
	if _, err := Seed(ctx, stores, config.Default("basketball")); err == nil {
		t.Error("second Seed into the same stores succeeded")
	}
}

func TestSeed_Deterministic(t *testing.T) {
	ctx := context.Background()

	a := NewStores()
	b := NewStores()
	if _, err := Seed(ctx, a, config.Default("basketball")); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if _, err := Seed(ctx, b, config.Default("basketball")); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	pa, err := a.Players.GetByID(ctx, 101)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	pb, err := b.Players.GetByID(ctx, 101)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if pa.Name != pb.Name || pa.Value != pb.Value {
		t.Errorf("fixture not deterministic: %+v vs %+v", pa, pb)
	}
}
