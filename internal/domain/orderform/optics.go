package orderform

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OpticalKind selects the rounding and clamping policy of an optometric value.
type OpticalKind string

const (
	KindSphere   OpticalKind = "sphere"
	KindCylinder OpticalKind = "cylinder"
	KindAxis     OpticalKind = "axis"
	KindDNP      OpticalKind = "dnp"
	KindHeight   OpticalKind = "height"
)

const (
	dioptreStep = 0.25
	dioptreMax  = 30
	axisStep    = 5
	axisMax     = 180
	lengthMax   = 100
)

func (k OpticalKind) Valid() bool {
	switch k {
	case KindSphere, KindCylinder, KindAxis, KindDNP, KindHeight:
		return true
	}
	return false
}

// ApplyPolicy moves v to the nearest legal value of kind:
//   - sphere: nearest 0.25 within [-30, 30]
//   - cylinder: nearest 0.25 within [-30, 0]
//   - axis: nearest 5 within [0, 180]
//   - dnp, height: nearest integer within [0, 100]
func ApplyPolicy(kind OpticalKind, v float64) float64 {
	switch kind {
	case KindSphere:
		return roundTo(clamp(v, -dioptreMax, dioptreMax), dioptreStep)
	case KindCylinder:
		return math.Min(roundTo(clamp(v, -dioptreMax, dioptreMax), dioptreStep), 0)
	case KindAxis:
		return roundTo(clamp(v, 0, axisMax), axisStep)
	case KindDNP, KindHeight:
		return clamp(math.Round(v), 0, lengthMax)
	default:
		return v
	}
}

// FormatOptical prints a policy-conforming value. Positive spheres carry an
// explicit plus sign.
func FormatOptical(kind OpticalKind, v float64) string {
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	switch kind {
	case KindSphere:
		if v > 0 {
			return fmt.Sprintf("+%.2f", v)
		}
		return fmt.Sprintf("%.2f", v)
	case KindCylinder:
		return fmt.Sprintf("%.2f", v)
	default:
		return strconv.Itoa(int(v))
	}
}

// CorrectOptical coerces free-form input to the nearest legal value. Empty
// input stays empty and input that is not a number is cleared.
func CorrectOptical(kind OpticalKind, raw string) string {
	v, ok := ParseOptical(raw)
	if !ok {
		return ""
	}
	return FormatOptical(kind, ApplyPolicy(kind, v))
}

// StepOptical adds delta to the current value (zero when unset) and applies
// the policy of kind.
func StepOptical(kind OpticalKind, raw string, delta float64) string {
	v, ok := ParseOptical(raw)
	if !ok {
		v = 0
	}
	return FormatOptical(kind, ApplyPolicy(kind, v+delta))
}

// ParseOptical reads a typed value, accepting a decimal comma.
func ParseOptical(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
