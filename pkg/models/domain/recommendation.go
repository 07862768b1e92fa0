package domain

type Tier string

const (
	TierAggressive   Tier = "Aggressive"
	TierBalanced     Tier = "Balanced"
	TierConservative Tier = "Conservative"
)

type Recommendation struct {
	Tier               Tier
	Strategy           string
	Actions            []string
	ExpectedROIPercent float64
}
