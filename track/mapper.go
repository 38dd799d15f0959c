package track

import (
	"fmt"
	"math"

	"github.com/milk9111/trilho/common"
)

// Mapper converts between physical centimeters and world units.
type Mapper struct {
	physical PhysicalRange
	virtual  VirtualRange
}

// NewMapper rejects degenerate physical ranges so Map never divides by zero.
func NewMapper(physical PhysicalRange, virtual VirtualRange) (Mapper, error) {
	if err := physical.Validate(); err != nil {
		return Mapper{}, err
	}
	if err := virtual.Validate(); err != nil {
		return Mapper{}, err
	}
	return Mapper{physical: physical, virtual: virtual}, nil
}

func (m Mapper) Physical() PhysicalRange { return m.physical }

func (m Mapper) Virtual() VirtualRange { return m.virtual }

// Clamp limits cm to the physical range. NaN maps to MinCm.
func (m Mapper) Clamp(cm float64) float64 {
	if math.IsNaN(cm) {
		return m.physical.MinCm
	}
	return common.Clamp(cm, m.physical.MinCm, m.physical.MaxCm)
}

// Map clamps cm to the physical range and maps it into world units.
func (m Mapper) Map(cm float64) float64 {
	n := common.InverseLerp(m.physical.MinCm, m.physical.MaxCm, m.Clamp(cm))
	return common.Lerp(m.virtual.MinUnit, m.virtual.MaxUnit, n)
}

// Inverse maps world units back to centimeters. The result is not clamped;
// callers that need a position on the track use Clamp. A zero-width virtual
// range maps every x to MinCm.
func (m Mapper) Inverse(worldX float64) float64 {
	n := common.InverseLerp(m.virtual.MinUnit, m.virtual.MaxUnit, worldX)
	return common.Lerp(m.physical.MinCm, m.physical.MaxCm, n)
}

// Sanitize turns a raw sample into a usable in-range position. Non-finite
// samples fall back to fallback, out-of-range samples are clamped. The
// returned error wraps ErrInvalidSample and is for diagnostics only; the
// position is always usable.
func (m Mapper) Sanitize(cm, fallback float64) (float64, error) {
	if !finite(cm) {
		return m.Clamp(fallback), fmt.Errorf("%w: %v", ErrInvalidSample, cm)
	}
	if cm < m.physical.MinCm || cm > m.physical.MaxCm {
		return m.Clamp(cm), fmt.Errorf("%w: %.3f outside [%.3f, %.3f]", ErrInvalidSample, cm, m.physical.MinCm, m.physical.MaxCm)
	}
	return cm, nil
}
