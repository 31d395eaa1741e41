package pricing

import (
	"fmt"
	"strings"
)

// Strategy names the signal that receives the dominant weight in the blend.
type Strategy uint8

const (
	StrategyDemandBased Strategy = iota
	StrategyCompetitionBased
	StrategyInventoryBased
	StrategyTimeBased
)

// blendOrder fixes the factor order used by Weights.
var blendOrder = [...]Strategy{StrategyDemandBased, StrategyCompetitionBased, StrategyInventoryBased, StrategyTimeBased}

// Strategies lists every strategy in blend order. The slice is a fresh copy.
func Strategies() []Strategy {
	out := make([]Strategy, len(blendOrder))
	copy(out, blendOrder[:])
	return out
}

// ParseStrategy maps a wire value such as "demand_based" onto a Strategy.
func ParseStrategy(raw string) (Strategy, error) {
	for _, s := range blendOrder {
		if strings.EqualFold(strings.TrimSpace(raw), s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", raw)
}

func (s Strategy) String() string {
	switch s {
	case StrategyDemandBased:
		return "demand_based"
	case StrategyCompetitionBased:
		return "competition_based"
	case StrategyInventoryBased:
		return "inventory_based"
	case StrategyTimeBased:
		return "time_based"
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

func (s Strategy) MarshalText() ([]byte, error) {
	if int(s) >= len(blendOrder) {
		return nil, fmt.Errorf("cannot marshal invalid %s", s)
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

const primaryWeight = 0.6

// secondaryWeights are handed out in factor order to the factors that are not
// primary.
var secondaryWeights = [3]float64{0.2, 0.1, 0.1}

// Weights are the blend weights over the four blended factors.
type Weights struct {
	Demand      float64 `json:"demand"`
	Competition float64 `json:"competition"`
	Inventory   float64 `json:"inventory"`
	Time        float64 `json:"time"`
}

// Weights returns the blend weights for the strategy. The primary factor gets
// 0.6 and the others take 0.2, 0.1, 0.1 in demand, competition, inventory,
// time order.
func (s Strategy) Weights() Weights {
	var w [4]float64
	next := 0
	for i, candidate := range blendOrder {
		if candidate == s {
			w[i] = primaryWeight
			continue
		}
		w[i] = secondaryWeights[next]
		next++
	}
	return Weights{Demand: w[0], Competition: w[1], Inventory: w[2], Time: w[3]}
}

func (w Weights) blend(f Factors) float64 {
	return f.Demand*w.Demand + f.Competition*w.Competition + f.Inventory*w.Inventory + f.Time*w.Time
}
