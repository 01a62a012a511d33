package trade

import (
	"context"
	"testing"

	"frontoffice/internal/domain"
)

func (env *testEnv) newNegotiator(t *testing.T, policy StopPolicy) *Negotiator {
	t.Helper()
	n, err := NewNegotiator(NegotiatorOptions{
		Evaluator: env.eval,
		Players:   env.players,
		Picks:     env.picks,
		Teams:     env.teams,
		Trades:    env.trades,
		Validator: env.newValidator(t),
		Policy:    policy,
	})
	if err != nil {
		t.Fatalf("NewNegotiator: %v", err)
	}
	return n
}

func proposalFor(userIDs, aiIDs []int64) *domain.TradeProposal {
	return &domain.TradeProposal{
		Sides: [2]domain.TradeSide{
			{TeamID: 1, PlayerIDs: userIDs},
			{TeamID: 2, PlayerIDs: aiIDs},
		},
	}
}

func TestCounterPolicy(t *testing.T) {
	p := CounterPolicy{MaxFree: 2}
	if p.ShouldStop(1) {
		t.Error("stopped before MaxFree")
	}
	if !p.ShouldStop(2) {
		t.Error("did not stop at MaxFree")
	}
}

func TestRandomPolicy_Bounds(t *testing.T) {
	p := NewRandomPolicy(1)
	if p.ShouldStop(0) {
		t.Error("must never stop before the first concession")
	}
	if !p.ShouldStop(3) {
		t.Error("must always stop after the third concession")
	}
}

func TestSelectCandidate(t *testing.T) {
	picked := selectCandidate([]*candidate{
		{playerID: 1, dv: 5},
		{playerID: 2, dv: 1},
		{playerID: 3, dv: -2},
	})
	if picked.playerID != 2 {
		t.Errorf("picked player %d, want 2 (smallest non-negative dv)", picked.playerID)
	}

	picked = selectCandidate([]*candidate{
		{playerID: 1, dv: -5},
		{playerID: 2, dv: -1},
	})
	if picked.playerID != 2 {
		t.Errorf("picked player %d, want 2 (least bad when all negative)", picked.playerID)
	}
}

func TestMakeItWork_GrowsUnfavorableOffer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 68, 3000, 2028)
	env.addPlayer(t, 102, 1, 66, 3000, 2028)
	env.addPlayer(t, 103, 1, 64, 3000, 2028)
	env.addPlayer(t, 104, 1, 62, 3000, 2028)
	env.addPlayer(t, 201, 2, 70, 3000, 2028)

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 0})

	// One mid player for the AI's star: not close, but the user roster has
	// the depth to get there.
	proposal := proposalFor([]int64{101}, []int64{201})
	final, dv, ok, err := n.MakeItWork(ctx, env.league, proposal, false)
	if err != nil {
		t.Fatalf("MakeItWork: %v", err)
	}
	if !ok {
		t.Fatalf("no deal found, final dv = %v", dv)
	}
	if dv < 0 {
		t.Errorf("accepted with dv = %v", dv)
	}
	if len(final.Sides[userSide].PlayerIDs) <= 1 {
		t.Errorf("user side did not grow: %v", final.Sides[userSide].PlayerIDs)
	}
	if len(proposal.Sides[userSide].PlayerIDs) != 1 {
		t.Errorf("input proposal mutated: %v", proposal.Sides[userSide].PlayerIDs)
	}
}

func TestMakeItWork_ExhaustsWhenNothingToAdd(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 50, 3000, 2028)
	env.addPlayer(t, 201, 2, 70, 3000, 2028)
	frozen := env.addPlayer(t, 202, 2, 55, 3000, 2028)
	frozen.GamesUntilTradable = 10
	if err := env.players.Update(ctx, frozen); err != nil {
		t.Fatalf("update player: %v", err)
	}

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 0})

	_, _, ok, err := n.MakeItWork(ctx, env.league, proposalFor([]int64{101}, []int64{201}), false)
	if err != nil {
		t.Fatalf("MakeItWork: %v", err)
	}
	if ok {
		t.Error("deal accepted with nothing to balance it")
	}
}

func TestMakeItWork_HoldUserConstant(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 3000, 2028)
	env.addPlayer(t, 102, 1, 65, 3000, 2028)
	env.addPlayer(t, 201, 2, 48, 3000, 2028)
	env.addPlayer(t, 202, 2, 55, 3000, 2028)
	env.addPick(t, 1, 2, 2027, 1)

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 1})

	// The user's star for a scrub already favors the AI; the policy makes
	// it concede exactly one asset, and only from its own side.
	final, dv, ok, err := n.MakeItWork(ctx, env.league, proposalFor([]int64{101}, []int64{201}), true)
	if err != nil {
		t.Fatalf("MakeItWork: %v", err)
	}
	if !ok || dv < 0 {
		t.Fatalf("ok = %v, dv = %v; want accepted", ok, dv)
	}

	if got := final.Sides[userSide].PlayerIDs; len(got) != 1 || got[0] != 101 {
		t.Errorf("user side changed under holdUserConstant: %v", got)
	}
	aiAssets := len(final.Sides[aiSide].PlayerIDs) + len(final.Sides[aiSide].PickIDs)
	if aiAssets != 2 {
		t.Errorf("AI side has %d assets, want 2 (one concession)", aiAssets)
	}
}

func TestMakeItWorkTrade_Messages(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 3000, 2028)
	env.addPlayer(t, 201, 2, 48, 3000, 2028)

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 0})

	// Favorable as proposed: the AI settles immediately and the
	// counter-offer becomes the current negotiation.
	msg, final, err := n.MakeItWorkTrade(ctx, env.league, proposalFor([]int64{101}, []int64{201}))
	if err != nil {
		t.Fatalf("MakeItWorkTrade: %v", err)
	}
	if final == nil {
		t.Fatal("no proposal returned on success")
	}
	if want := `City GM: "How does this sound?"`; msg != want {
		t.Errorf("msg = %q, want %q", msg, want)
	}
	saved, err := env.trades.Get(ctx)
	if err != nil {
		t.Fatalf("load saved negotiation: %v", err)
	}
	if saved.Sides[aiSide].PlayerIDs[0] != 201 {
		t.Errorf("saved negotiation = %+v, want the accepted counter-offer", saved)
	}
}

func TestMakeItWorkTrade_CapWarning(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 70, 10000, 2028)
	env.addPlayer(t, 201, 2, 40, 1000, 2028)
	// Ballast contract pushing the AI team over the cap without entering
	// the trade.
	env.addPlayer(t, 202, 2, 30, 95000, 2028)

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 0})

	// The AI likes the deal, but it is over the cap and taking back far
	// more salary than it sends out.
	msg, final, err := n.MakeItWorkTrade(ctx, env.league, proposalFor([]int64{101}, []int64{201}))
	if err != nil {
		t.Fatalf("MakeItWorkTrade: %v", err)
	}
	if final == nil {
		t.Fatal("no proposal returned")
	}
	want := `City GM: "Something like this would work if you can figure out how to get it done without breaking the salary cap rules."`
	if msg != want {
		t.Errorf("msg = %q, want %q", msg, want)
	}
	if _, err := env.trades.Get(ctx); err != nil {
		t.Errorf("counter-offer not saved as the current negotiation: %v", err)
	}
}

func TestMakeItWorkTrade_Refusal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.addPlayer(t, 101, 1, 48, 3000, 2028)
	env.addPlayer(t, 201, 2, 70, 3000, 2028)

	n := env.newNegotiator(t, CounterPolicy{MaxFree: 0})

	msg, final, err := n.MakeItWorkTrade(ctx, env.league, proposalFor([]int64{101}, []int64{201}))
	if err != nil {
		t.Fatalf("MakeItWorkTrade: %v", err)
	}
	if final != nil {
		t.Errorf("refusal returned a proposal: %+v", final)
	}
	if want := `City GM: "I can't afford to give up so much."`; msg != want {
		t.Errorf("msg = %q, want %q", msg, want)
	}
}
