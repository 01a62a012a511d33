// Package main puts a player on the trading block and solicits offers
// from every AI team in a fixture league, printing each acceptable
// package the negotiation search finds.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
	"frontoffice/internal/fixture"
	"frontoffice/internal/observability"
	"frontoffice/internal/pickvalue"
	"frontoffice/internal/team"
	"frontoffice/internal/trade"
)

const pickCacheTTL = 5 * time.Minute

func main() {
	// .env is optional; flags and FRONTOFFICE_* env vars still apply.
	_ = godotenv.Load()

	sport := flag.String("sport", "basketball", "Sport variant: basketball, baseball, hockey")
	seed := flag.Int64("seed", 1, "Seed for the AI's haggling behavior")
	slot := flag.Int("slot", 1, "Roster slot of the user player to shop (0 = best)")
	timeout := flag.Duration("timeout", 30*time.Second, "Deadline for the offer fan-out")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics at this address (e.g. :9090)")
	flag.Parse()

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			}
		}()
	}

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

	negotiator, err := buildNegotiator(stores, cfg, trade.NewRandomPolicy(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building engine: %v\n", err)
		os.Exit(1)
	}

	roster, err := stores.Players.GetByTeam(ctx, league.UserTeamID)
	if err != nil || *slot >= len(roster) {
		fmt.Fprintln(os.Stderr, "Error: no player in that roster slot")
		os.Exit(1)
	}
	shopped := roster[*slot]

	fmt.Printf("=== Trading Block: %s (value %.0f) ===\n", shopped.Name, shopped.Value)

	block := domain.TradeSide{
		TeamID:    league.UserTeamID,
		PlayerIDs: []int64{shopped.PlayerID},
	}
	offers, err := negotiator.AskForOffers(ctx, league, block, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error soliciting offers: %v\n", err)
		os.Exit(1)
	}

	if len(offers) == 0 {
		fmt.Println("No takers.")
		return
	}

	for _, offer := range offers {
		t, err := stores.Teams.GetByID(ctx, offer.TeamID)
		if err != nil {
			continue
		}
		fmt.Printf("\n%s %s offer:\n", t.Region, t.Name)
		for _, id := range offer.Proposal.Sides[1].PlayerIDs {
			p, err := stores.Players.GetByID(ctx, id)
			if err != nil {
				continue
			}
			fmt.Printf("  %s (value %.0f, $%.0fk through %d)\n",
				p.Name, p.Value, p.Contract.Amount, p.Contract.ExpYear)
		}
		for _, id := range offer.Proposal.Sides[1].PickIDs {
			dp, err := stores.Picks.GetByID(ctx, id)
			if err != nil {
				continue
			}
			fmt.Printf("  %d round %d pick\n", dp.Season, dp.Round)
		}
	}
}

func buildNegotiator(stores *fixture.Stores, cfg *config.SportConfig, policy trade.StopPolicy) (*trade.Negotiator, error) {
	payrolls := team.NewPayrolls(stores.Players)
	estimator := pickvalue.New(stores.Teams, stores.Players, cfg)

	evaluator, err := trade.NewEvaluator(trade.EvaluatorOptions{
		Players:   stores.Players,
		Teams:     stores.Teams,
		Picks:     stores.Picks,
		Payrolls:  payrolls,
		Estimator: estimator,
		Config:    cfg,
		PickCache: pickvalue.NewCache(pickCacheTTL),
	})
	if err != nil {
		return nil, err
	}

	return trade.NewNegotiator(trade.NegotiatorOptions{
		Evaluator: evaluator,
		Players:   stores.Players,
		Picks:     stores.Picks,
		Teams:     stores.Teams,
		Policy:    policy,
	})
}
