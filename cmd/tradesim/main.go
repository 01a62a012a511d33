// Package main negotiates a single trade against a fixture league:
// seed teams, rosters, and picks into memory stores, let the engine grow
// the user's opening offer into something the AI accepts, then commit it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/fixture"
	"frontoffice/internal/team"
	"frontoffice/internal/trade"
)

func main() {
	// .env is optional; flags and FRONTOFFICE_* env vars still apply.
	_ = godotenv.Load()

	sport := flag.String("sport", "basketball", "Sport variant: basketball, baseball, hockey")
	seed := flag.Int64("seed", 1, "Seed for the AI's haggling behavior")
	force := flag.Bool("force", false, "Commit the trade even if the AI rejects it")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling...\n", sig)
		cancel()
	}()

	cfg, err := config.Load(*sport)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	stores := fixture.NewStores()
	if _, err := fixture.Seed(ctx, stores, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding fixtures: %v\n", err)
		os.Exit(1)
	}
	league, err := stores.League.Get(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading league state: %v\n", err)
		os.Exit(1)
	}

	eng, err := buildEngine(stores, cfg, trade.NewRandomPolicy(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building engine: %v\n", err)
		os.Exit(1)
	}

	// The user offers a role player for the AI team's best player.
	opening := &domain.TradeProposal{Sides: [2]domain.TradeSide{
		{TeamID: league.UserTeamID, PlayerIDs: []int64{nthPlayer(ctx, stores, league.UserTeamID, 3)}},
		{TeamID: 2, PlayerIDs: []int64{nthPlayer(ctx, stores, 2, 0)}},
	}}

	fmt.Println("=== Trade Negotiation ===")
	printProposal(ctx, stores, opening)

	msg, final, err := eng.negotiator.MakeItWorkTrade(ctx, league, opening)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Negotiation error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(msg)
	if final == nil {
		fmt.Println("No deal could be reached.")
		return
	}
	printProposal(ctx, stores, final)

	if *verbose {
		summary, err := eng.validator.Summarize(ctx, league, final)
		if err == nil {
			for _, side := range summary.Sides {
				fmt.Printf("  %s: salary out %.0f, payroll after %.0f\n",
					side.Name, side.SalaryOut, side.PayrollAfter)
			}
			if summary.Warning != "" {
				fmt.Printf("  Warning: %s\n", summary.Warning)
			}
		}
	}

	fmt.Println("\n=== Execution ===")
	accepted, msg, err := eng.executor.Propose(ctx, league, final, *force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(msg)

	if accepted {
		events, err := stores.Events.GetBySeason(ctx, league.Season)
		if err == nil {
			for _, e := range events {
				fmt.Printf("League log: %s\n", e.Text)
			}
		}
		if err := team.UpdateStrategies(ctx, stores.Teams, stores.Players, league); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating strategies: %v\n", err)
			os.Exit(1)
		}
	}
}

// nthPlayer returns the player in the nth roster slot of a team.
func nthPlayer(ctx context.Context, stores *fixture.Stores, teamID int64, nth int) int64 {
	players, err := stores.Players.GetByTeam(ctx, teamID)
	if err != nil || nth >= len(players) {
		return 0
	}
	return players[nth].PlayerID
}

func printProposal(ctx context.Context, stores *fixture.Stores, p *domain.TradeProposal) {
	for side := range p.Sides {
		t, err := stores.Teams.GetByID(ctx, p.Sides[side].TeamID)
		if err != nil {
			continue
		}
		fmt.Printf("%s %s send:\n", t.Region, t.Name)
		for _, id := range p.Sides[side].PlayerIDs {
			pl, err := stores.Players.GetByID(ctx, id)
			if err != nil {
				continue
			}
			fmt.Printf("  %s (value %.0f, $%.0fk through %d)\n",
				pl.Name, pl.Value, pl.Contract.Amount, pl.Contract.ExpYear)
		}
		for _, id := range p.Sides[side].PickIDs {
			dp, err := stores.Picks.GetByID(ctx, id)
			if err != nil {
				continue
			}
			fmt.Printf("  %d round %d pick\n", dp.Season, dp.Round)
		}
	}
}
