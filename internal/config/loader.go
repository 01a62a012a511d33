package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a SportConfig by layering, lowest precedence first:
//  1. built-in defaults for the requested sport
//  2. YAML file named by FRONTOFFICE_CONFIG, if set
//  3. environment variables with prefix FRONTOFFICE_
//
// Env keys map flat: FRONTOFFICE_REPLACEMENT_LEVEL -> replacement_level.
func Load(sport string) (*SportConfig, error) {
	k := koanf.New(".")

	if path := os.Getenv("FRONTOFFICE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("FRONTOFFICE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "frontoffice_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if s := k.String("sport"); s != "" {
		sport = s
	}

	cfg := *Default(sport)
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	return &cfg, cfg.Validate()
}

// Validate rejects configurations the valuation math cannot run on.
func (c *SportConfig) Validate() error {
	if c.GamesPerSeason <= 0 {
		return errors.New("games_per_season must be positive")
	}
	if c.DraftRounds <= 0 {
		return errors.New("draft_rounds must be positive")
	}
	if c.ValueExponent <= 0 {
		return errors.New("value_exponent must be positive")
	}
	if c.FudgeFactor < 1 {
		return errors.New("fudge_factor must be >= 1")
	}
	if len(c.RookieSalaries) == 0 {
		return errors.New("rookie_salaries must not be empty")
	}
	return nil
}
