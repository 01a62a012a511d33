package valuation

import (
	"sort"

	"frontoffice/internal/config"
	"frontoffice/internal/domain"
)

// ApplySkillBonuses rescales assets by how scarce their skill tags are on
// the receiving roster. Assets are processed in descending value order so
// premium players claim scarcity bonuses first; each bonus increments the
// running count, so redundant skills in the same batch earn less.
//
// The roster side counts only players at or above replacement level; a
// fringe player holding a skill does not satisfy the need for it.
//
// Inputs are not mutated; a rescaled copy is returned.
func ApplySkillBonuses(cfg *config.SportConfig, assets []Asset, roster []Asset) []Asset {
	if len(assets) == 0 {
		return nil
	}

	counts := make(map[domain.SkillTag]int)
	for _, r := range roster {
		if r.Value < cfg.ReplacementLevel {
			continue
		}
		for _, s := range r.Skills {
			counts[s]++
		}
	}

	out := make([]Asset, len(assets))
	copy(out, assets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	for i := range out {
		for _, s := range out[i].Skills {
			needed, ok := cfg.SkillsNeeded[string(s)]
			if !ok {
				continue
			}
			switch {
			case counts[s] <= needed-2:
				out[i].Value *= 1.1
			case counts[s] <= needed-1:
				out[i].Value *= 1.05
			case counts[s] <= needed:
				out[i].Value *= 1.025
			}
			counts[s]++
		}
	}

	return out
}
