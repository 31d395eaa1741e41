package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
)

// Defaults applied when a field is not supplied.
const (
	DefaultBasePrice      = 100.0
	DefaultDemandScore    = 0.5
	DefaultInventoryLevel = 100
	DefaultMaxInventory   = 1000
	DefaultTimeFactor     = 1.0
	DefaultMarginTarget   = 0.3
)

// RequestOption customizes a Request built by NewRequest.
type RequestOption func(*Request)

// WithCompetitorPrice attaches a competitor price signal.
func WithCompetitorPrice(price float64) RequestOption {
	return func(r *Request) {
		r.CompetitorPrice = &price
	}
}

// WithInventory sets the current and maximum inventory.
func WithInventory(level, max int) RequestOption {
	return func(r *Request) {
		r.InventoryLevel = level
		r.MaxInventory = max
	}
}

func WithSegment(segment Segment) RequestOption {
	return func(r *Request) {
		r.Segment = segment
	}
}

func WithTimeFactor(factor float64) RequestOption {
	return func(r *Request) {
		r.TimeFactor = factor
	}
}

func WithMarginTarget(target float64) RequestOption {
	return func(r *Request) {
		r.MarginTarget = target
	}
}

// NewRequest builds a typed request. Base price and demand score have no
// defaults here; everything else starts from the documented defaults.
func NewRequest(basePrice, demandScore float64, opts ...RequestOption) Request {
	req := Request{
		BasePrice:      basePrice,
		DemandScore:    demandScore,
		InventoryLevel: DefaultInventoryLevel,
		MaxInventory:   DefaultMaxInventory,
		Segment:        SegmentStandard,
		TimeFactor:     DefaultTimeFactor,
		MarginTarget:   DefaultMarginTarget,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// RequestFromMap converts a loosely typed payload, typically a decoded JSON
// object, into a Request. Missing keys fall back to defaults, including base
// price and demand score. Unknown keys are ignored.
func RequestFromMap(payload map[string]any) (Request, error) {
	var (
		req = NewRequest(DefaultBasePrice, DefaultDemandScore)
		err error
	)
	if req.BasePrice, err = floatField(payload, "base_price", req.BasePrice); err != nil {
		return Request{}, err
	}
	if req.DemandScore, err = floatField(payload, "demand_score", req.DemandScore); err != nil {
		return Request{}, err
	}
	if raw, ok := payload["competitor_price"]; ok && raw != nil {
		price, err := toFloat("competitor_price", raw)
		if err != nil {
			return Request{}, err
		}
		req.CompetitorPrice = &price
	}
	if req.InventoryLevel, err = intField(payload, "inventory_level", req.InventoryLevel); err != nil {
		return Request{}, err
	}
	if req.MaxInventory, err = intField(payload, "max_inventory", req.MaxInventory); err != nil {
		return Request{}, err
	}
	if raw, ok := payload["customer_segment"]; ok && raw != nil {
		text, isString := raw.(string)
		if !isString {
			return Request{}, fieldTypeError("customer_segment", "a string", raw)
		}
		if req.Segment, err = ParseSegment(text); err != nil {
			return Request{}, err
		}
	}
	if req.TimeFactor, err = floatField(payload, "time_factor", req.TimeFactor); err != nil {
		return Request{}, err
	}
	if req.MarginTarget, err = floatField(payload, "margin_target", req.MarginTarget); err != nil {
		return Request{}, err
	}
	return req, nil
}

func floatField(payload map[string]any, key string, fallback float64) (float64, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	return toFloat(key, raw)
}

func intField(payload map[string]any, key string, fallback int) (int, error) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	}
	f, err := toFloat(key, raw)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be a whole number", key), nil)
	}
	return int(f), nil
}

func toFloat(key string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be a number", key), err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be a number", key), err)
		}
		return f, nil
	}
	return 0, fieldTypeError(key, "a number", raw)
}

func fieldTypeError(key, want string, got any) error {
	return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be %s, got %T", key, want, got), nil)
}
