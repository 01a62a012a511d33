package valuation

import (
	"math"

	"frontoffice/internal/domain"
)

// SumValues collapses assets into one scalar of net worth to the
// evaluating team. Aggregation is a sign-preserving power mean: each
// asset contributes sign(v)*|v|^e and the total is mapped back through
// the inverse transform, so one star outweighs several role players.
//
// includeInjuries applies the games-missed discount; it is only used for
// incoming assets, and only when an AI team is evaluating.
func SumValues(ctx Context, assets []Asset, includeInjuries bool) float64 {
	if len(assets) == 0 {
		return 0
	}

	cfg := ctx.Config
	base := cfg.ValueExponent

	var exponential float64
	for _, a := range assets {
		playerValue := a.Value

		if ctx.Strategy == domain.StrategyRebuilding {
			// Value young/cheap players and draft picks more; penalize old ones.
			if a.DraftPick {
				playerValue *= 1.15
			} else {
				switch {
				case a.Age <= 19:
					playerValue *= 1.15
				case a.Age == 20:
					playerValue *= 1.1
				case a.Age == 21:
					playerValue *= 1.075
				case a.Age == 22:
					playerValue *= 1.05
				case a.Age == 23:
					playerValue *= 1.025
				case a.Age == 27:
					playerValue *= 0.975
				case a.Age == 28:
					playerValue *= 0.95
				case a.Age >= 29:
					playerValue *= 0.9
				}
			}
		}

		// Anything below replacement level is worthless in trade.
		playerValue -= cfg.ReplacementLevel

		if includeInjuries && ctx.AITeam {
			if a.Injury.GamesRemaining > 75 {
				playerValue -= playerValue * 0.75
			} else {
				playerValue -= playerValue * float64(a.Injury.GamesRemaining) / 100
			}
		}

		contractValue := (a.Worth.Amount - a.Contract.Amount) / 1000

		remaining := ContractSeasonsRemaining(a.Contract.ExpYear, ctx.Season,
			float64(cfg.GamesPerSeason)-ctx.GamesPlayedAvg, float64(cfg.GamesPerSeason))
		if remaining > 1 {
			// Dampen multi-year commitments without inverting sign.
			contractValue *= math.Pow(remaining, 0.25)
		} else {
			// Raising <1 to a <1 power would overstate short remainders.
			contractValue *= remaining
		}

		// Really bad players just get no playing time.
		if playerValue < 0 {
			playerValue = 0
		}

		value := playerValue + cfg.ContractValueWeight*contractValue
		if value == 0 {
			continue
		}
		exponential += math.Pow(math.Abs(value), base) * sign(value)
	}

	if exponential == 0 {
		return 0
	}
	return math.Pow(math.Abs(exponential), 1/base) * sign(exponential)
}

// SumContracts sums salary commitments in millions of currency units,
// scaled by remaining seasons to the 0.25 power. With onlyThisSeason,
// amounts after the current season are ignored. Draft picks carry no
// current salary burden and contribute nothing.
func SumContracts(ctx Context, assets []Asset, onlyThisSeason bool) float64 {
	if len(assets) == 0 {
		return 0
	}

	cfg := ctx.Config
	exponent := 0.25
	if onlyThisSeason {
		exponent = 0
	}

	var sum float64
	for _, a := range assets {
		if a.DraftPick {
			continue
		}
		remaining := ContractSeasonsRemaining(a.Contract.ExpYear, ctx.Season,
			float64(cfg.GamesPerSeason)-ctx.GamesPlayedAvg, float64(cfg.GamesPerSeason))
		sum += a.Contract.Amount / 1000 * math.Pow(remaining, exponent)
	}
	return sum
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
