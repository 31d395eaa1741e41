package pricing

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultEngineConfig())
	require.NoError(t, err)
	return engine
}

func TestEngineComputeScenarios(t *testing.T) {
	cases := []struct {
		name       string
		req        Request
		strategy   Strategy
		price      float64
		change     float64
		confidence float64
	}{
		{
			name: "low inventory outranks moderate competitor gap",
			req: NewRequest(100, 0.8,
				WithCompetitorPrice(110),
				WithInventory(50, 1000),
				WithSegment(SegmentPremium),
				WithTimeFactor(1.2),
			),
			strategy:   StrategyInventoryBased,
			price:      140.4,
			change:     40.4,
			confidence: 1.0,
		},
		{
			name:       "high demand",
			req:        NewRequest(100, 0.9, WithInventory(500, 1000)),
			strategy:   StrategyDemandBased,
			price:      112.0,
			change:     12.0,
			confidence: 0.8,
		},
		{
			name:       "empty stock budget customer",
			req:        NewRequest(50, 0.5, WithInventory(0, 1000), WithSegment(SegmentBudget)),
			strategy:   StrategyInventoryBased,
			price:      47.6,
			change:     -4.8,
			confidence: 0.7,
		},
		{
			name:       "pricier competitor",
			req:        NewRequest(100, 0.5, WithCompetitorPrice(130), WithInventory(500, 1000)),
			strategy:   StrategyCompetitionBased,
			price:      106.0,
			change:     6.0,
			confidence: 1.0,
		},
		{
			name:       "cheaper competitor",
			req:        NewRequest(100, 0.5, WithCompetitorPrice(70), WithInventory(500, 1000)),
			strategy:   StrategyCompetitionBased,
			price:      94.0,
			change:     -6.0,
			confidence: 1.0,
		},
		{
			name:       "off-peak",
			req:        NewRequest(100, 0.5, WithInventory(500, 1000), WithTimeFactor(0.8)),
			strategy:   StrategyTimeBased,
			price:      88.0,
			change:     -12.0,
			confidence: 0.8,
		},
		{
			name:       "clamped to ceiling",
			req:        NewRequest(100, 0.5, WithInventory(500, 1000), WithTimeFactor(5), WithSegment(SegmentPremium)),
			strategy:   StrategyTimeBased,
			price:      200.0,
			change:     100.0,
			confidence: 0.6,
		},
		{
			name:       "clamped to floor",
			req:        NewRequest(100, 0.5, WithInventory(500, 1000), WithTimeFactor(0.1), WithSegment(SegmentBudget)),
			strategy:   StrategyTimeBased,
			price:      70.0,
			change:     -30.0,
			confidence: 0.8,
		},
		{
			name:       "overstocked",
			req:        NewRequest(100, 0.5, WithInventory(900, 1000)),
			strategy:   StrategyInventoryBased,
			price:      94.0,
			change:     -6.0,
			confidence: 0.8,
		},
		{
			name:       "low demand falls back to demand strategy",
			req:        NewRequest(100, 0.2, WithInventory(500, 1000)),
			strategy:   StrategyDemandBased,
			price:      91.0,
			change:     -9.0,
			confidence: 0.8,
		},
	}

	engine := newTestEngine(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := engine.Compute(tc.req)
			require.NoError(t, err)
			require.Equal(t, tc.strategy, res.StrategyUsed)
			require.InDelta(t, tc.price, res.RecommendedPrice, 1e-9)
			require.InDelta(t, tc.change, res.PriceChangePercentage, 1e-9)
			require.InDelta(t, tc.confidence, res.ConfidenceScore, 1e-9)
		})
	}
}

func TestEngineHighDemandBlend(t *testing.T) {
	res, err := newTestEngine(t).Compute(NewRequest(100, 0.9, WithInventory(500, 1000)))
	require.NoError(t, err)

	require.InDelta(t, 1.2, res.Factors.Demand, 1e-9)
	require.Equal(t, 1.0, res.Factors.Competition)
	require.Equal(t, 1.0, res.Factors.Inventory)
	require.Equal(t, 1.0, res.Factors.Time)
	require.InDelta(t, 1.12, res.Factors.Final, 1e-9)
	require.Equal(t, []string{"High demand detected, price increase to optimize revenue"}, res.Reasons)
}

func TestEngineBudgetInventoryReasoning(t *testing.T) {
	res, err := newTestEngine(t).Compute(NewRequest(50, 0.5, WithInventory(0, 1000), WithSegment(SegmentBudget)))
	require.NoError(t, err)

	require.Equal(t, 1.2, res.Factors.Inventory)
	require.InDelta(t, 1.12, res.Factors.Blended, 1e-9)
	require.InDelta(t, 0.952, res.Factors.Final, 1e-9)
	require.Len(t, res.Reasons, 2)
	require.Equal(t, strings.Join(res.Reasons, "; "), res.Reasoning)
	require.Contains(t, strings.ToLower(res.Reasons[0]), "low inventory")
	require.Contains(t, strings.ToLower(res.Reasons[1]), "budget segment")
}

func TestEngineReasoningListsEverySignal(t *testing.T) {
	req := NewRequest(100, 0.8,
		WithCompetitorPrice(110),
		WithInventory(50, 1000),
		WithSegment(SegmentPremium),
		WithTimeFactor(1.2),
	)
	res, err := newTestEngine(t).Compute(req)
	require.NoError(t, err)
	require.Equal(t, StrategyInventoryBased, res.StrategyUsed)
	// demand is not the primary strategy but still explained
	require.Equal(t, []string{
		"High demand detected, price increase to optimize revenue",
		"Low inventory levels, increase price to manage demand",
		"Peak period, premium pricing",
		"Premium segment pricing",
	}, res.Reasons)
}

func TestEngineCompetitorReasoning(t *testing.T) {
	engine := newTestEngine(t)

	res, err := engine.Compute(NewRequest(100, 0.5, WithCompetitorPrice(125), WithInventory(500, 1000)))
	require.NoError(t, err)
	require.Equal(t, "Competitor higher by 25.0%, opportunity to increase price", res.Reasoning)

	res, err = engine.Compute(NewRequest(100, 0.5, WithCompetitorPrice(80), WithInventory(500, 1000)))
	require.NoError(t, err)
	require.Equal(t, "Competitor lower by 20.0%, stay competitive", res.Reasoning)
}

func TestEngineFallbackReasoning(t *testing.T) {
	res, err := newTestEngine(t).Compute(NewRequest(100, 0.5, WithInventory(500, 1000)))
	require.NoError(t, err)
	require.Equal(t, FallbackReason, res.Reasoning)
	require.Equal(t, StrategyDemandBased, res.StrategyUsed)
	require.Equal(t, 100.0, res.RecommendedPrice)
}

func TestInventoryMultiplierBoundaries(t *testing.T) {
	cases := []struct {
		ratio float64
		want  float64
	}{
		{ratio: 0, want: 1.2},
		{ratio: 0.09, want: 1.2},
		{ratio: 0.1, want: 1.1},
		{ratio: 0.29, want: 1.1},
		{ratio: 0.3, want: 1.0},
		{ratio: 0.8, want: 1.0},
		{ratio: 0.81, want: 0.9},
		{ratio: 1.5, want: 0.9},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, inventoryMultiplier(tc.ratio), "ratio %v", tc.ratio)
	}

	req := NewRequest(100, 0.5, WithInventory(800, 1000))
	require.Equal(t, 0.8, req.InventoryRatio())
	res, err := newTestEngine(t).Compute(req)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Factors.Inventory)
}

func TestCompetitionMultiplier(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	require.Equal(t, 1.0, competitionMultiplier(100, nil))
	require.Equal(t, 1.0, competitionMultiplier(100, price(110)))
	require.Equal(t, 1.0, competitionMultiplier(100, price(90)))
	require.InDelta(t, 1.064, competitionMultiplier(100, price(112)), 1e-9)
	require.Equal(t, 1.1, competitionMultiplier(100, price(200)))
	require.Equal(t, 0.9, competitionMultiplier(100, price(10)))
	require.InDelta(t, 0.9345, competitionMultiplier(100, price(89)), 1e-9)
}

func TestDemandMultiplierMonotone(t *testing.T) {
	engine := newTestEngine(t)
	require.Equal(t, 1.0, engine.demandMultiplier(0.5))

	prev := engine.demandMultiplier(0.5)
	for d := 0.5; d <= 1.0; d += 0.05 {
		got := engine.demandMultiplier(d)
		require.GreaterOrEqual(t, got, prev)
		prev = got
	}
	require.InDelta(t, 1.25, engine.demandMultiplier(1.0), 1e-9)
}

func TestSelectStrategyPriority(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want Strategy
	}{
		{name: "demand wins over everything", req: NewRequest(100, 0.81, WithCompetitorPrice(200), WithInventory(0, 1000), WithTimeFactor(2)), want: StrategyDemandBased},
		{name: "demand at 0.8 is not high", req: NewRequest(100, 0.8, WithInventory(500, 1000)), want: StrategyDemandBased},
		{name: "competitor gap above 15%", req: NewRequest(100, 0.5, WithCompetitorPrice(116), WithInventory(0, 1000)), want: StrategyCompetitionBased},
		{name: "competitor gap at 15% is ignored", req: NewRequest(100, 0.5, WithCompetitorPrice(115), WithInventory(500, 1000), WithTimeFactor(1.05)), want: StrategyTimeBased},
		{name: "inventory below 20%", req: NewRequest(100, 0.5, WithInventory(199, 1000), WithTimeFactor(2)), want: StrategyInventoryBased},
		{name: "inventory above 80%", req: NewRequest(100, 0.5, WithInventory(801, 1000)), want: StrategyInventoryBased},
		{name: "time factor off neutral", req: NewRequest(100, 0.5, WithInventory(500, 1000), WithTimeFactor(0.99)), want: StrategyTimeBased},
		{name: "nothing stands out", req: NewRequest(100, 0.5, WithInventory(500, 1000)), want: StrategyDemandBased},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, selectStrategy(tc.req), tc.name)
	}
}

func TestStrategyWeights(t *testing.T) {
	require.Equal(t, Weights{Demand: 0.6, Competition: 0.2, Inventory: 0.1, Time: 0.1}, StrategyDemandBased.Weights())
	require.Equal(t, Weights{Demand: 0.2, Competition: 0.6, Inventory: 0.1, Time: 0.1}, StrategyCompetitionBased.Weights())
	require.Equal(t, Weights{Demand: 0.2, Competition: 0.1, Inventory: 0.6, Time: 0.1}, StrategyInventoryBased.Weights())
	require.Equal(t, Weights{Demand: 0.2, Competition: 0.1, Inventory: 0.1, Time: 0.6}, StrategyTimeBased.Weights())
}

func TestStrategiesReturnsCopy(t *testing.T) {
	listed := Strategies()
	listed[0], listed[3] = listed[3], listed[0]
	require.Equal(t, []Strategy{StrategyDemandBased, StrategyCompetitionBased, StrategyInventoryBased, StrategyTimeBased}, Strategies())
	require.Equal(t, Weights{Demand: 0.6, Competition: 0.2, Inventory: 0.1, Time: 0.1}, StrategyDemandBased.Weights())
}

func TestConfidencePenaltyUsesClampedMultiplier(t *testing.T) {
	req := NewRequest(100, 0.5, WithInventory(500, 1000))
	require.InDelta(t, 0.8, confidence(req, 1.5), 1e-9)
	require.InDelta(t, 0.6, confidence(req, 1.51), 1e-9)

	bare := NewRequest(100, 0.05, WithInventory(0, 1000))
	require.InDelta(t, 0.3, confidence(bare, 2.0), 1e-9)
}

func TestEngineBoundsHoldAcrossInputs(t *testing.T) {
	engine := newTestEngine(t)
	segments := []Segment{SegmentPremium, SegmentStandard, SegmentBudget}
	for _, base := range []float64{0.5, 19.99, 100, 2500} {
		for _, demand := range []float64{0, 0.25, 0.5, 0.85, 1} {
			for _, inventory := range []int{0, 150, 500, 950} {
				for _, timeFactor := range []float64{0.05, 0.9, 1, 1.3, 8} {
					for _, segment := range segments {
						req := NewRequest(base, demand,
							WithCompetitorPrice(base*1.4),
							WithInventory(inventory, 1000),
							WithTimeFactor(timeFactor),
							WithSegment(segment),
						)
						res, err := engine.Compute(req)
						require.NoError(t, err)
						require.GreaterOrEqual(t, res.RecommendedPrice, base*0.7-0.005)
						require.LessOrEqual(t, res.RecommendedPrice, base*2.0+0.005)
						require.GreaterOrEqual(t, res.ConfidenceScore, 0.1)
						require.LessOrEqual(t, res.ConfidenceScore, 1.0)
					}
				}
			}
		}
	}
}

func TestEngineComputeIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)
	req := NewRequest(42.5, 0.73, WithCompetitorPrice(38), WithInventory(120, 400), WithTimeFactor(1.15), WithSegment(SegmentPremium))

	first, err := engine.Compute(req)
	require.NoError(t, err)
	second, err := engine.Compute(req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEngineRejectsDivisionHazards(t *testing.T) {
	engine := newTestEngine(t)
	cases := []struct {
		name string
		req  Request
		msg  string
	}{
		{name: "zero base price", req: NewRequest(0, 0.5), msg: "base_price"},
		{name: "negative base price", req: NewRequest(-5, 0.5), msg: "base_price"},
		{name: "zero max inventory", req: NewRequest(100, 0.5, WithInventory(10, 0)), msg: "max_inventory"},
		{name: "nan demand", req: NewRequest(100, math.NaN()), msg: "demand_score"},
		{name: "infinite time factor", req: NewRequest(100, 0.5, WithTimeFactor(math.Inf(1))), msg: "time_factor"},
		{name: "unknown segment", req: NewRequest(100, 0.5, WithSegment(Segment(9))), msg: "customer_segment"},
		{name: "nan margin target", req: NewRequest(100, 0.5, WithMarginTarget(math.NaN())), msg: "margin_target"},
		{name: "infinite margin target", req: NewRequest(100, 0.5, WithMarginTarget(math.Inf(-1))), msg: "margin_target"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := engine.Compute(tc.req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Contains(t, err.Error(), tc.msg)
			require.Equal(t, Result{}, res)
		})
	}
}

func TestNewEngineValidatesConfig(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.MaxPriceMultiplier = 0.5
	_, err := NewEngine(cfg)
	require.Error(t, err)

	cfg = DefaultEngineConfig()
	cfg.MinPriceMultiplier = 0
	_, err = NewEngine(cfg)
	require.Error(t, err)

	cfg = DefaultEngineConfig()
	cfg.DemandSensitivity = math.NaN()
	_, err = NewEngine(cfg)
	require.Error(t, err)

	engine, err := NewEngine(DefaultEngineConfig())
	require.NoError(t, err)
	require.Equal(t, DefaultEngineConfig(), engine.Config())
}
