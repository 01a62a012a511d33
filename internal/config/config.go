// Package config defines the per-sport valuation configuration.
//
// Every tuning constant the trade engine uses lives here, so sport
// variants ship different tables without code forks. Values are loaded by
// layering: built-in sport defaults, then an optional YAML file, then
// environment variables.
package config

// SportConfig carries the valuation tables and constants for one sport
// variant. All salary figures are in thousands of currency units.
type SportConfig struct {
	// Sport selects the built-in defaults: "basketball", "baseball", "hockey".
	Sport string `koanf:"sport"`

	// GamesPerSeason is the regular-season length per team.
	GamesPerSeason int `koanf:"games_per_season"`

	// DraftRounds is the number of rounds in the entry draft.
	DraftRounds int `koanf:"draft_rounds"`

	// ReplacementLevel is the value baseline below which a player carries
	// no positive trade value. Also gates which roster players count when
	// measuring skill coverage.
	ReplacementLevel float64 `koanf:"replacement_level"`

	// ValueExponent is the exponent of the sign-preserving power mean used
	// to aggregate asset values. Above 1 it concentrates worth in stars.
	ValueExponent float64 `koanf:"value_exponent"`

	// ContractValueWeight scales contract surplus into the asset value.
	ContractValueWeight float64 `koanf:"contract_value_weight"`

	// FudgeFactor inflates the value of an AI team's own outgoing players.
	FudgeFactor float64 `koanf:"fudge_factor"`

	// ContractsFactor weights shed salary in the trade delta, by strategy.
	RebuildingContractsFactor float64 `koanf:"rebuilding_contracts_factor"`
	ContendingContractsFactor float64 `koanf:"contending_contracts_factor"`

	// RookiePickPremium is added to generated prospects' values when
	// building pick-value tables.
	RookiePickPremium float64 `koanf:"rookie_pick_premium"`

	// MinCapSpaceBuffer: the free-agency penalty only applies to teams with
	// at least this much room under the cap.
	MinCapSpaceBuffer float64 `koanf:"min_cap_space_buffer"`

	// SkillsNeeded maps skill tags to how many carriers a roster wants.
	SkillsNeeded map[string]int `koanf:"skills_needed"`

	// RookieSalaries is the rookie-scale salary schedule indexed by overall
	// pick, stretched or truncated to the league's draft size.
	RookieSalaries []float64 `koanf:"rookie_salaries"`
}

// rookieScale is the base 60-pick rookie salary schedule shared by the
// sport defaults.
var rookieScale = []float64{
	5000, 4500, 4000, 3500, 3000, 2750, 2500, 2250, 2000, 1900,
	1800, 1700, 1600, 1500, 1400, 1300, 1200, 1100, 1000, 1000,
	1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000, 1000,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500,
}

// Default returns the built-in configuration for a sport. Unknown sports
// get the basketball tables.
func Default(sport string) *SportConfig {
	cfg := &SportConfig{
		Sport:                     sport,
		GamesPerSeason:            82,
		DraftRounds:               2,
		ReplacementLevel:          45,
		ValueExponent:             1.25,
		ContractValueWeight:       0.5,
		FudgeFactor:               1.05,
		RebuildingContractsFactor: 0.3,
		ContendingContractsFactor: 0.1,
		RookiePickPremium:         4,
		MinCapSpaceBuffer:         2000,
		RookieSalaries:            append([]float64(nil), rookieScale...),
	}

	switch sport {
	case "baseball":
		cfg.GamesPerSeason = 162
		cfg.DraftRounds = 5
		cfg.SkillsNeeded = map[string]int{
			"St": 1, // stamina arm
			"L":  2, // contact
			"Pp": 4, // power pitching
			"Di": 3, // infield defense
			"Do": 2, // outfield defense
			"H":  3, // hitting
			"Ph": 3, // power hitting
			"Fp": 4, // finesse pitching
			"Cl": 1, // closer
		}
	case "hockey":
		cfg.DraftRounds = 7
		cfg.SkillsNeeded = map[string]int{
			"Pm": 2, // playmaking
			"Sn": 3, // sniping
			"En": 3, // enforcing
			"Df": 4, // defending
			"Gk": 2, // goaltending
			"Sk": 4, // skating
		}
	default: // basketball
		cfg.Sport = "basketball"
		cfg.SkillsNeeded = map[string]int{
			"3":  5, // three-point shooting
			"A":  5, // athleticism
			"B":  3, // ball handling
			"Di": 2, // interior defense
			"Dp": 2, // perimeter defense
			"Po": 2, // post play
			"Ps": 4, // passing
			"R":  3, // rebounding
		}
	}

	return cfg
}
