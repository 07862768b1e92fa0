package calculator

import "github.com/de-tools/retention-atlas/pkg/models/domain"

const (
	aggressiveThreshold = 10.0
	balancedThreshold   = 7.0
)

// Recommend classifies a target retention rate into a strategy tier.
// Lower bounds are inclusive: 10.0 is aggressive, 7.0 is balanced.
func Recommend(targetRate, roiPercent float64) domain.Recommendation {
	switch {
	case targetRate >= aggressiveThreshold:
		return domain.Recommendation{
			Tier:     domain.TierAggressive,
			Strategy: "Aggressive Growth Strategy",
			Actions: []string{
				"Launch comprehensive loyalty program",
				"Implement AI-powered personalization",
				"Deploy multi-channel retention campaigns",
			},
			ExpectedROIPercent: roiPercent,
		}
	case targetRate >= balancedThreshold:
		return domain.Recommendation{
			Tier:     domain.TierBalanced,
			Strategy: "Balanced Growth Strategy",
			Actions: []string{
				"Email marketing to potential loyalists",
				"Basic loyalty point system",
				"Targeted product recommendations",
			},
			ExpectedROIPercent: roiPercent,
		}
	default:
		return domain.Recommendation{
			Tier:     domain.TierConservative,
			Strategy: "Conservative Strategy",
			Actions: []string{
				"Focus on customer satisfaction",
				"Improve product quality and service",
				"Basic follow-up campaigns",
			},
			ExpectedROIPercent: roiPercent,
		}
	}
}
