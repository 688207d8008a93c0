package orderform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-9
}

func TestStepOptical_Policies(t *testing.T) {
	deltas := []float64{-7.3, -1, -0.25, 0.1, 0.25, 0.3, 1, 4.9, 12}
	starts := []string{"", "0", "+1.25", "-3.75", "2,5", "abc", "179", "95", "1e308", "-1e308"}

	for _, start := range starts {
		for _, delta := range deltas {
			sph, ok := ParseOptical(StepOptical(KindSphere, start, delta))
			require.True(t, ok)
			assert.True(t, isMultiple(sph, 0.25), "sphere %v", sph)

			cyl, ok := ParseOptical(StepOptical(KindCylinder, start, delta))
			require.True(t, ok)
			assert.True(t, isMultiple(cyl, 0.25), "cylinder %v", cyl)
			assert.LessOrEqual(t, cyl, 0.0)

			axis, ok := ParseOptical(StepOptical(KindAxis, start, delta*10))
			require.True(t, ok)
			assert.True(t, isMultiple(axis, 5), "axis %v", axis)
			assert.GreaterOrEqual(t, axis, 0.0)
			assert.LessOrEqual(t, axis, 180.0)

			for _, kind := range []OpticalKind{KindDNP, KindHeight} {
				v, ok := ParseOptical(StepOptical(kind, start, delta*10))
				require.True(t, ok)
				assert.Equal(t, math.Trunc(v), v)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 100.0)
			}
		}
	}
}

func TestFormatOptical(t *testing.T) {
	assert.Equal(t, "+2.50", FormatOptical(KindSphere, 2.5))
	assert.Equal(t, "-0.75", FormatOptical(KindSphere, -0.75))
	assert.Equal(t, "0.00", FormatOptical(KindSphere, 0))
	assert.Equal(t, "0.00", FormatOptical(KindCylinder, math.Copysign(0, -1)))
	assert.Equal(t, "-1.25", FormatOptical(KindCylinder, -1.25))
	assert.Equal(t, "90", FormatOptical(KindAxis, 90))
	assert.Equal(t, "32", FormatOptical(KindDNP, 32))
}

func TestCorrectOptical(t *testing.T) {
	cases := []struct {
		kind OpticalKind
		in   string
		want string
	}{
		{KindSphere, "2.3", "+2.25"},
		{KindSphere, "-1,13", "-1.25"},
		{KindSphere, "", ""},
		{KindSphere, "x", ""},
		{KindCylinder, "1.5", "0.00"},
		{KindCylinder, "-0.6", "-0.50"},
		{KindAxis, "182", "180"},
		{KindAxis, "-10", "0"},
		{KindAxis, "93", "95"},
		{KindDNP, "31.6", "32"},
		{KindHeight, "140", "100"},
		{KindHeight, "-3", "0"},
		{KindSphere, "1e308", "+30.00"},
		{KindSphere, "-31.1", "-30.00"},
		{KindCylinder, "-1e308", "-30.00"},
		{KindAxis, "1e308", "180"},
		{KindDNP, "1e308", "100"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind)+"_"+tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CorrectOptical(tc.kind, tc.in))
		})
	}
}

func TestCorrectOptical_FixedPoint(t *testing.T) {
	inputs := []string{"2.3", "-7.1", "0", "181", "45.5", "-0.1", "99.4", "abc", "", "1e308", "-1e308"}
	for _, kind := range []OpticalKind{KindSphere, KindCylinder, KindAxis, KindDNP, KindHeight} {
		for _, in := range inputs {
			once := CorrectOptical(kind, in)
			assert.Equal(t, once, CorrectOptical(kind, once), "kind %s input %q", kind, in)
		}
	}
}
