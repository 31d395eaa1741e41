package pricing

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
	"github.com/yanqian/dynamic-pricing/pkg/money"
)

// Confidence bounds and adjustments.
const (
	baseConfidence       = 0.5
	minConfidence        = 0.1
	maxConfidence        = 1.0
	competitorConfidence = 0.2
	demandConfidence     = 0.2
	inventoryConfidence  = 0.1
	extremeMovePenalty   = 0.2
	extremeMoveThreshold = 0.5
)

// Engine turns a Request into a bounded price recommendation. It holds only
// read-only configuration, so one Engine may serve any number of goroutines.
type Engine struct {
	cfg EngineConfig
}

// NewEngine validates cfg and builds an Engine around a copy of it.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine constants.
func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// Validate checks that the multiplier band is usable.
func (c EngineConfig) Validate() error {
	for name, v := range map[string]float64{
		"min_price_multiplier":    c.MinPriceMultiplier,
		"max_price_multiplier":    c.MaxPriceMultiplier,
		"demand_sensitivity":      c.DemandSensitivity,
		"competition_sensitivity": c.CompetitionSensitivity,
		"inventory_sensitivity":   c.InventorySensitivity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite", name)
		}
	}
	if c.MinPriceMultiplier <= 0 {
		return errors.New("min_price_multiplier must be positive")
	}
	if c.MaxPriceMultiplier < c.MinPriceMultiplier {
		return errors.New("max_price_multiplier must not be below min_price_multiplier")
	}
	if c.DemandSensitivity < 0 {
		return errors.New("demand_sensitivity cannot be negative")
	}
	return nil
}

// Compute produces the recommendation for req. Requests that would divide by
// zero or carry non-finite numbers are rejected with an invalid_input error and
// no partial result.
func (e *Engine) Compute(req Request) (Result, error) {
	if err := checkComputable(req); err != nil {
		return Result{}, err
	}

	factors := Factors{
		Demand:      e.demandMultiplier(req.DemandScore),
		Competition: competitionMultiplier(req.BasePrice, req.CompetitorPrice),
		Inventory:   inventoryMultiplier(req.InventoryRatio()),
		Segment:     req.Segment.Multiplier(),
		Time:        req.TimeFactor,
	}

	strategy := selectStrategy(req)
	factors.Weights = strategy.Weights()
	factors.Blended = factors.Weights.blend(factors)
	factors.Final = e.clamp(factors.Blended * factors.Segment)

	price := money.Round2(req.BasePrice * factors.Final)
	reasons := explain(req)

	return Result{
		RecommendedPrice:      price,
		PriceChangePercentage: money.Round2(money.PercentChange(req.BasePrice, price)),
		StrategyUsed:          strategy,
		ConfidenceScore:       money.Round2(confidence(req, factors.Final)),
		Reasoning:             joinReasons(reasons),
		Reasons:               reasons,
		Factors:               factors,
	}, nil
}

func (e *Engine) demandMultiplier(demand float64) float64 {
	return 1.0 + (demand-0.5)*e.cfg.DemandSensitivity
}

func competitionMultiplier(basePrice float64, competitor *float64) float64 {
	if competitor == nil {
		return 1.0
	}
	ratio := *competitor / basePrice
	switch {
	case ratio > 1.1:
		// undercut the pricier competitor, capped at +10%
		return math.Min(1.1, ratio*0.95)
	case ratio < 0.9:
		return math.Max(0.9, ratio*1.05)
	default:
		return 1.0
	}
}

func inventoryMultiplier(ratio float64) float64 {
	switch {
	case ratio < 0.1:
		return 1.2
	case ratio < 0.3:
		return 1.1
	case ratio > 0.8:
		return 0.9
	default:
		return 1.0
	}
}

// selectStrategy applies the priority rules; the first match wins.
func selectStrategy(req Request) Strategy {
	if req.DemandScore > 0.8 {
		return StrategyDemandBased
	}
	if req.HasCompetitor() && math.Abs(*req.CompetitorPrice-req.BasePrice)/req.BasePrice > 0.15 {
		return StrategyCompetitionBased
	}
	if ratio := req.InventoryRatio(); ratio < 0.2 || ratio > 0.8 {
		return StrategyInventoryBased
	}
	if req.TimeFactor != 1.0 {
		return StrategyTimeBased
	}
	return StrategyDemandBased
}

func (e *Engine) clamp(multiplier float64) float64 {
	return math.Max(e.cfg.MinPriceMultiplier, math.Min(e.cfg.MaxPriceMultiplier, multiplier))
}

// confidence scores how much signal backed the recommendation. The extreme
// move penalty is judged on the clamped multiplier.
func confidence(req Request, finalMultiplier float64) float64 {
	score := baseConfidence
	if req.HasCompetitor() {
		score += competitorConfidence
	}
	if req.DemandScore > 0.1 {
		score += demandConfidence
	}
	if req.InventoryLevel > 0 {
		score += inventoryConfidence
	}
	if math.Abs(finalMultiplier-1.0) > extremeMoveThreshold {
		score -= extremeMovePenalty
	}
	return math.Max(minConfidence, math.Min(maxConfidence, score))
}

func checkComputable(req Request) error {
	switch {
	case !finite(req.BasePrice) || req.BasePrice <= 0:
		return invalidInput("base_price must be a positive number")
	case req.MaxInventory <= 0:
		return invalidInput("max_inventory must be positive")
	case !finite(req.DemandScore):
		return invalidInput("demand_score must be a finite number")
	case !finite(req.TimeFactor):
		return invalidInput("time_factor must be a finite number")
	case req.HasCompetitor() && !finite(*req.CompetitorPrice):
		return invalidInput("competitor_price must be a finite number")
	case !finite(req.MarginTarget):
		return invalidInput("margin_target must be a finite number")
	case !req.Segment.Valid():
		return invalidInput(fmt.Sprintf("unknown customer_segment %s", req.Segment))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalidInput(message string) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, message, nil)
}
