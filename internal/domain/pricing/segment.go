package pricing

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
)

// Segment classifies the customer a price is quoted for. It is applied as a
// flat adjustment after the weighted blend.
type Segment uint8

const (
	SegmentStandard Segment = iota
	SegmentPremium
	SegmentBudget
)

var segments = [...]Segment{SegmentPremium, SegmentStandard, SegmentBudget}

// Segments lists every recognized segment. The slice is a fresh copy.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments[:])
	return out
}

// ParseSegment maps the wire value ("premium", "standard", "budget") onto a
// Segment. Matching ignores case and surrounding whitespace.
func ParseSegment(raw string) (Segment, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "premium":
		return SegmentPremium, nil
	case "standard":
		return SegmentStandard, nil
	case "budget":
		return SegmentBudget, nil
	}
	return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown customer_segment %q, expected one of premium, standard, budget", raw), nil)
}

// Valid reports whether s is one of the declared segments.
func (s Segment) Valid() bool {
	switch s {
	case SegmentPremium, SegmentStandard, SegmentBudget:
		return true
	}
	return false
}

func (s Segment) String() string {
	switch s {
	case SegmentPremium:
		return "premium"
	case SegmentStandard:
		return "standard"
	case SegmentBudget:
		return "budget"
	}
	return fmt.Sprintf("segment(%d)", uint8(s))
}

// Multiplier returns the post-blend price adjustment for the segment.
func (s Segment) Multiplier() float64 {
	switch s {
	case SegmentPremium:
		return 1.2
	case SegmentBudget:
		return 0.85
	default:
		return 1.0
	}
}

func (s Segment) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid %s", s)
	}
	return []byte(s.String()), nil
}

func (s *Segment) UnmarshalText(text []byte) error {
	parsed, err := ParseSegment(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
