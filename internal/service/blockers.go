package service

import (
	"fmt"

	"aquafarm.io/steward/internal/domain"
)

// FindBiomassBlockers inspects the tank-bearing equipment of an affected
// closure and returns the delete blockers. Any tank with live biomass
// vetoes deletion unconditionally; the cascade flag never overrides it.
//
// All blocking tanks are summarized into exactly one message carrying the
// tank count and the summed biomass at two-decimal precision.
//
// The result is never nil: previews embed it directly and a clean preview
// must serialize as an empty list, not null.
func FindBiomassBlockers(tanks []*domain.Equipment) []string {
	var count int
	var total float64
	for _, tank := range tanks {
		if !tank.IsTank || tank.CurrentBiomass <= 0 {
			continue
		}
		count++
		total += tank.CurrentBiomass
	}
	if count == 0 {
		return []string{}
	}
	return []string{fmt.Sprintf(
		"%d tank(s) contain %.2f kg of active biomass. Please harvest or transfer fish before deleting.",
		count, total,
	)}
}
