package main

import (
	"time"

	"frontoffice/internal/config"
	"frontoffice/internal/fixture"
	"frontoffice/internal/pickvalue"
	"frontoffice/internal/team"
	"frontoffice/internal/trade"
)

// pickCacheTTL covers one negotiation session comfortably.
const pickCacheTTL = 5 * time.Minute

// engine bundles the wired trade components.
type engine struct {
	negotiator *trade.Negotiator
	validator  *trade.Validator
	executor   *trade.Executor
}

func buildEngine(stores *fixture.Stores, cfg *config.SportConfig, policy trade.StopPolicy) (*engine, error) {
	payrolls := team.NewPayrolls(stores.Players)
	estimator := pickvalue.New(stores.Teams, stores.Players, cfg)
	cache := pickvalue.NewCache(pickCacheTTL)

	evaluator, err := trade.NewEvaluator(trade.EvaluatorOptions{
		Players:   stores.Players,
		Teams:     stores.Teams,
		Picks:     stores.Picks,
		Payrolls:  payrolls,
		Estimator: estimator,
		Config:    cfg,
		PickCache: cache,
	})
	if err != nil {
		return nil, err
	}

	validator, err := trade.NewValidator(trade.ValidatorOptions{
		Players:  stores.Players,
		Picks:    stores.Picks,
		Teams:    stores.Teams,
		Payrolls: payrolls,
	})
	if err != nil {
		return nil, err
	}

	negotiator, err := trade.NewNegotiator(trade.NegotiatorOptions{
		Evaluator: evaluator,
		Players:   stores.Players,
		Picks:     stores.Picks,
		Teams:     stores.Teams,
		Trades:    stores.Trades,
		Validator: validator,
		Policy:    policy,
	})
	if err != nil {
		return nil, err
	}

	executor, err := trade.NewExecutor(trade.ExecutorOptions{
		Players:   stores.Players,
		Teams:     stores.Teams,
		Picks:     stores.Picks,
		Trades:    stores.Trades,
		Events:    stores.Events,
		Evaluator: evaluator,
		Validator: validator,
		Sorter:    team.NewRosterSorter(stores.Players),
		PickCache: cache,
	})
	if err != nil {
		return nil, err
	}

	return &engine{negotiator: negotiator, validator: validator, executor: executor}, nil
}
