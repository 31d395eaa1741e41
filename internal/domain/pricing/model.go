package pricing

// Request captures the signals a price recommendation is computed from.
// Build it with NewRequest or RequestFromMap so defaults are applied.
type Request struct {
	BasePrice       float64  `json:"base_price" validate:"gt=0"`
	DemandScore     float64  `json:"demand_score"`
	CompetitorPrice *float64 `json:"competitor_price,omitempty" validate:"omitempty,gt=0"`
	InventoryLevel  int      `json:"inventory_level" validate:"gte=0"`
	MaxInventory    int      `json:"max_inventory" validate:"gt=0"`
	Segment         Segment  `json:"customer_segment"`
	TimeFactor      float64  `json:"time_factor" validate:"gt=0"`
	// MarginTarget is accepted for forward compatibility and does not take part
	// in the calculation.
	MarginTarget float64 `json:"margin_target"`
}

// HasCompetitor reports whether a competitor price signal is present.
func (r Request) HasCompetitor() bool {
	return r.CompetitorPrice != nil
}

// InventoryRatio is inventory_level / max_inventory.
func (r Request) InventoryRatio() float64 {
	return float64(r.InventoryLevel) / float64(r.MaxInventory)
}

// Result is the price recommendation returned to callers.
type Result struct {
	RecommendedPrice      float64  `json:"recommended_price"`
	PriceChangePercentage float64  `json:"price_change_percentage"`
	StrategyUsed          Strategy `json:"strategy_used"`
	ConfidenceScore       float64  `json:"confidence_score"`
	Reasoning             string   `json:"reasoning"`
	Reasons               []string `json:"reasons"`
	Factors               Factors  `json:"factors"`
}

// Factors traces the multipliers that produced a result.
type Factors struct {
	Demand      float64 `json:"demand"`
	Competition float64 `json:"competition"`
	Inventory   float64 `json:"inventory"`
	Segment     float64 `json:"segment"`
	Time        float64 `json:"time"`
	Weights     Weights `json:"weights"`
	// Blended is the weighted sum before the segment adjustment.
	Blended float64 `json:"blended"`
	// Final is the clamped multiplier applied to the base price.
	Final float64 `json:"final"`
}

// EngineConfig holds the engine constants. It is copied into the engine at
// construction and never changes afterwards.
type EngineConfig struct {
	MinPriceMultiplier float64 `json:"min_price_multiplier"`
	MaxPriceMultiplier float64 `json:"max_price_multiplier"`
	DemandSensitivity  float64 `json:"demand_sensitivity"`
	// CompetitionSensitivity and InventorySensitivity are published with the
	// configuration but the competition and inventory multipliers use fixed
	// thresholds and do not read them.
	CompetitionSensitivity float64 `json:"competition_sensitivity"`
	InventorySensitivity   float64 `json:"inventory_sensitivity"`
}

// DefaultEngineConfig returns the stock engine constants.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MinPriceMultiplier:     0.7,
		MaxPriceMultiplier:     2.0,
		DemandSensitivity:      0.5,
		CompetitionSensitivity: 0.3,
		InventorySensitivity:   0.4,
	}
}
