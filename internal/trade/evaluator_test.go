package trade

import (
	"context"
	"math"
	"testing"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/pickvalue"
	"frontoffice/internal/storage/memory"
	"frontoffice/internal/team"
)

type testEnv struct {
	players *memory.PlayerStore
	teams   *memory.TeamStore
	picks   *memory.DraftPickStore
	trades  *memory.TradeStore
	events  *memory.EventStore
	cfg     *config.SportConfig
	eval    *Evaluator
	league  *domain.LeagueState
}

// newTestEnv builds a two-team league: team 1 is the user's, team 2 the
// AI's, both mid-season at .500.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	env := &testEnv{
		players: memory.NewPlayerStore(),
		teams:   memory.NewTeamStore(),
		picks:   memory.NewDraftPickStore(),
		trades:  memory.NewTradeStore(),
		events:  memory.NewEventStore(),
		cfg:     config.Default("basketball"),
	}
	env.league = &domain.LeagueState{
		Season:     2026,
		Phase:      domain.PhaseRegularSeason,
		UserTeamID: 1,
		NumTeams:   2,
		SalaryCap:  90000,
	}

	for teamID := int64(1); teamID <= 2; teamID++ {
		err := env.teams.Insert(ctx, &domain.TeamRecord{
			TeamID: teamID,
			Region: "City", Name: "Team", Abbrev: "TST",
			Strategy: domain.StrategyContending,
			Seasons: []domain.TeamSeason{
				{Season: 2025, Won: 41, Lost: 41},
				{Season: 2026, Won: 21, Lost: 21},
			},
		})
		if err != nil {
			t.Fatalf("insert team: %v", err)
		}
	}

	eval, err := NewEvaluator(EvaluatorOptions{
		Players:   env.players,
		Teams:     env.teams,
		Picks:     env.picks,
		Payrolls:  team.NewPayrolls(env.players),
		Estimator: pickvalue.New(env.teams, env.players, env.cfg),
		Config:    env.cfg,
	})
	if err != nil {
		t.Fatalf("NewEvaluator: %v", err)
	}
	env.eval = eval
	return env
}

func (env *testEnv) addPlayer(t *testing.T, id, teamID int64, value, amount float64, expYear int) *domain.PlayerRecord {
	t.Helper()
	p := &domain.PlayerRecord{
		PlayerID: id, TeamID: teamID,
		Name:     "Player",
		BornYear: 2001, // age 25, outside every age multiplier band
		Value:    value, ValueWithContract: value,
		Contract:    domain.Contract{Amount: amount, ExpYear: expYear},
		MarketWorth: domain.Contract{Amount: amount, ExpYear: expYear},
		Injury:      domain.Healthy,
		RosterOrder: int(id % 100),
	}
	if err := env.players.Insert(context.Background(), p); err != nil {
		t.Fatalf("insert player: %v", err)
	}
	return p
}

func (env *testEnv) addPick(t *testing.T, id, teamID int64, season, round int) {
	t.Helper()
	err := env.picks.Insert(context.Background(), &domain.DraftPickRecord{
		PickID: id, TeamID: teamID, OriginalTeamID: teamID, Season: season, Round: round,
	})
	if err != nil {
		t.Fatalf("insert pick: %v", err)
	}
}

func (env *testEnv) setStrategy(t *testing.T, teamID int64, s domain.Strategy) {
	t.Helper()
	ctx := context.Background()
	tm, err := env.teams.GetByID(ctx, teamID)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	tm.Strategy = s
	if err := env.teams.Update(ctx, tm); err != nil {
		t.Fatalf("update team: %v", err)
	}
}

func TestValueChange_HardRejectsIncomingPicks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Arbitrarily favorable player content must not leak past the guard.
	env.addPlayer(t, 101, 1, 90, 2000, 2028)
	env.addPlayer(t, 201, 2, 46, 2000, 2027)
	env.addPick(t, 1, 1, 2027, 1)

	dv, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101},
		PlayersRemove: []int64{201},
		PicksAdd:      []int64{1},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}
	if dv != RejectedDV {
		t.Errorf("dv = %v, want sentinel %v", dv, RejectedDV)
	}

	// The rule keys on the evaluated team: the pick's sender evaluates
	// the same trade without tripping it.
	dv, err = env.eval.ValueChange(ctx, env.league, 1, Swap{
		PlayersAdd:    []int64{201},
		PlayersRemove: []int64{101},
		PicksRemove:   []int64{1},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}
	if dv == RejectedDV {
		t.Error("outgoing picks must not trigger the incoming-pick rejection")
	}
}

func TestValueChange_FavorableSwapAccepted(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 4000, 2028)
	env.addPlayer(t, 201, 2, 48, 4000, 2028)

	dv, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101},
		PlayersRemove: []int64{201},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}
	if dv <= 0 {
		t.Errorf("dv = %v, want > 0 for a clearly favorable swap", dv)
	}

	// The same swap from the other side is a clear loss.
	dv, err = env.eval.ValueChange(ctx, env.league, 1, Swap{
		PlayersAdd:    []int64{201},
		PlayersRemove: []int64{101},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}
	if dv >= 0 {
		t.Errorf("dv = %v, want < 0 from the losing side", dv)
	}
}

func TestValueChange_Monotonicity(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 60, 3000, 2028)
	env.addPlayer(t, 102, 1, 55, 3000, 2028)
	env.addPlayer(t, 201, 2, 60, 3000, 2028)
	env.addPlayer(t, 202, 2, 55, 3000, 2028)

	base, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101},
		PlayersRemove: []int64{201, 202},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	grown, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101, 102},
		PlayersRemove: []int64{201, 202},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	if grown < base {
		t.Errorf("adding a positive asset decreased dv: %v -> %v", base, grown)
	}
}

func TestValueChange_RebuildingWeighsSalaryDump(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 201, 2, 50, 10000, 2028)

	dump := Swap{PlayersRemove: []int64{201}}

	contending, err := env.eval.ValueChange(ctx, env.league, 2, dump)
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	env.setStrategy(t, 2, domain.StrategyRebuilding)
	rebuilding, err := env.eval.ValueChange(ctx, env.league, 2, dump)
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	if rebuilding <= contending {
		t.Errorf("rebuilding dv %v should beat contending dv %v for a pure salary dump", rebuilding, contending)
	}
}

func TestValueChange_DepthPenalty(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 3000, 2028)
	// A zero-impact throw-in: below replacement, no salary, no surplus.
	env.addPlayer(t, 102, 1, 40, 0, 2028)
	env.addPlayer(t, 201, 2, 60, 3000, 2028)

	without, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101},
		PlayersRemove: []int64{201},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	with, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101, 102},
		PlayersRemove: []int64{201},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	if math.Abs(with-0.9*without) > 1e-9 {
		t.Errorf("with throw-in dv = %v, want exactly 0.9 * %v", with, without)
	}
}

func TestValueChange_GuardsCapSpaceInFreeAgency(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 12000, 2028)
	env.addPlayer(t, 201, 2, 50, 2000, 2028)

	swap := Swap{PlayersAdd: []int64{101}, PlayersRemove: []int64{201}}

	regular, err := env.eval.ValueChange(ctx, env.league, 2, swap)
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	fa := *env.league
	fa.Phase = domain.PhaseFreeAgency
	fa.DaysLeftInFreeAgency = 30
	guarded, err := env.eval.ValueChange(ctx, &fa, 2, swap)
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	if guarded >= regular {
		t.Errorf("free-agency dv %v should trail regular-season dv %v when salary is added", guarded, regular)
	}
}

func TestValueChange_SynergyPremium(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Two equal players; one carries a skill the AI roster lacks.
	skilled := env.addPlayer(t, 101, 1, 60, 3000, 2028)
	skilled.Skills = []domain.SkillTag{"R"}
	if err := env.players.Update(ctx, skilled); err != nil {
		t.Fatalf("update player: %v", err)
	}
	env.addPlayer(t, 102, 1, 60, 3000, 2028)
	env.addPlayer(t, 201, 2, 50, 3000, 2028)

	withSkill, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{101},
		PlayersRemove: []int64{201},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}
	plain, err := env.eval.ValueChange(ctx, env.league, 2, Swap{
		PlayersAdd:    []int64{102},
		PlayersRemove: []int64{201},
	})
	if err != nil {
		t.Fatalf("ValueChange: %v", err)
	}

	if withSkill <= plain {
		t.Errorf("scarce skill should add value: %v vs %v", withSkill, plain)
	}
}
