package pricing

import (
	"fmt"
	"math"
	"strings"
)

// FallbackReason is used when no individual signal produced a clause.
const FallbackReason = "Standard pricing applied based on current market conditions."

const reasonSeparator = "; "

// explain lists a clause for every signal that moved the price, in fixed
// order: demand, competitor, inventory, time, segment. It does not depend on
// the selected strategy.
func explain(req Request) []string {
	reasons := make([]string, 0, 5)

	switch {
	case req.DemandScore > 0.7:
		reasons = append(reasons, "High demand detected, price increase to optimize revenue")
	case req.DemandScore < 0.3:
		reasons = append(reasons, "Low demand detected, consider reduction to stimulate sales")
	}

	if req.HasCompetitor() {
		diff := (*req.CompetitorPrice - req.BasePrice) / req.BasePrice
		switch {
		case diff > 0.1:
			reasons = append(reasons, fmt.Sprintf("Competitor higher by %.1f%%, opportunity to increase price", diff*100))
		case diff < -0.1:
			reasons = append(reasons, fmt.Sprintf("Competitor lower by %.1f%%, stay competitive", math.Abs(diff)*100))
		}
	}

	switch ratio := req.InventoryRatio(); {
	case ratio < 0.2:
		reasons = append(reasons, "Low inventory levels, increase price to manage demand")
	case ratio > 0.8:
		reasons = append(reasons, "High inventory levels, reduce price to accelerate sales")
	}

	switch {
	case req.TimeFactor > 1.1:
		reasons = append(reasons, "Peak period, premium pricing")
	case req.TimeFactor < 0.9:
		reasons = append(reasons, "Off-peak period, discount applied")
	}

	switch req.Segment {
	case SegmentPremium:
		reasons = append(reasons, "Premium segment pricing")
	case SegmentBudget:
		reasons = append(reasons, "Budget segment, competitive pricing")
	}

	if len(reasons) == 0 {
		return []string{FallbackReason}
	}
	return reasons
}

func joinReasons(reasons []string) string {
	return strings.Join(reasons, reasonSeparator)
}
