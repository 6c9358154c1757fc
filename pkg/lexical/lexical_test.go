package lexical_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventkit/pkg/lexical"
)

func TestFormatFloat64_ShortestForm(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0:         "0",
		1:         "1",
		-1:        "-1",
		0.1:       "0.1",
		0.25:      "0.25",
		-2.5:      "-2.5",
		100:       "100",
		12345.678: "12345.678",
	}

	for v, want := range cases {
		assert.Equal(t, want, lexical.FormatFloat64(v))
	}

	// One third needs the full 17 significant digits to round-trip.
	third := lexical.FormatFloat64(1.0 / 3.0)
	assert.Equal(t, "0.3333333333333333", third)
}

func TestFormatFloat64_NeverExponential(t *testing.T) {
	t.Parallel()

	values := []float64{
		1e300,
		-1e300,
		1e-300,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		2.2250738585072014e-308, // smallest normal
	}

	for _, v := range values {
		s := lexical.FormatFloat64(v)
		assert.NotContains(t, s, "e", "plain notation expected for %g", v)
		assert.NotContains(t, s, "E", "plain notation expected for %g", v)
	}
}

func TestFormatFloat64_EdgeValues(t *testing.T) {
	t.Parallel()

	t.Run("max float64 expands fully", func(t *testing.T) {
		t.Parallel()

		s := lexical.FormatFloat64(math.MaxFloat64)
		assert.Len(t, s, 309, "shortest digits plus padding zeros up to 10^308")
		assert.True(t, strings.HasPrefix(s, "17976931348623157"))
		assert.NotContains(t, s, ".")
	})

	t.Run("smallest subnormal", func(t *testing.T) {
		t.Parallel()

		s := lexical.FormatFloat64(math.SmallestNonzeroFloat64)
		assert.True(t, strings.HasPrefix(s, "0.000"))
		assert.True(t, strings.HasSuffix(s, "5"))

		v, err := lexical.ParseFloat64(s)
		require.NoError(t, err)
		assert.Equal(t, math.SmallestNonzeroFloat64, v)
	})

	t.Run("negative zero keeps its sign", func(t *testing.T) {
		t.Parallel()

		negZero := math.Copysign(0, -1)
		s := lexical.FormatFloat64(negZero)
		assert.Equal(t, "-0", s)

		v, err := lexical.ParseFloat64(s)
		require.NoError(t, err)
		assert.True(t, math.Signbit(v))
	})

	t.Run("non-finite values", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "NaN", lexical.FormatFloat64(math.NaN()))
		assert.Equal(t, "+Inf", lexical.FormatFloat64(math.Inf(1)))
		assert.Equal(t, "-Inf", lexical.FormatFloat64(math.Inf(-1)))
	})
}

func TestRoundTrip_Float64(t *testing.T) {
	t.Parallel()

	values := []float64{
		0,
		0.1,
		1.0 / 3.0,
		math.Pi,
		math.E,
		1e300,
		1e-300,
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
		-12345.6789,
		math.Copysign(0, -1),
	}

	for _, v := range values {
		s := lexical.FormatFloat64(v)
		got, err := lexical.ParseFloat64(s)
		require.NoError(t, err, "parse of %q", s)
		assert.Equal(t, math.Float64bits(v), math.Float64bits(got),
			"%q should round-trip bit for bit", s)
	}
}

func TestRoundTrip_Float32(t *testing.T) {
	t.Parallel()

	values := []float32{
		0,
		0.1,
		float32(1.0 / 3.0),
		math.MaxFloat32,
		math.SmallestNonzeroFloat32,
		-6.25,
	}

	for _, v := range values {
		s := lexical.FormatFloat32(v)
		assert.NotContains(t, s, "e", "plain notation expected for %g", v)

		got, err := lexical.ParseFloat32(s)
		require.NoError(t, err, "parse of %q", s)
		assert.Equal(t, math.Float32bits(v), math.Float32bits(got),
			"%q should round-trip bit for bit", s)
	}

	// The float32 shortest form is shorter than the float64-exact expansion
	// of the same bits.
	assert.Equal(t, "0.1", lexical.FormatFloat32(0.1))
	assert.NotEqual(t, "0.1", lexical.FormatFloat64(float64(float32(0.1))))
}

func TestAppendFloat(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 0, 64)
	buf = lexical.AppendFloat64(buf, 2.5)
	buf = append(buf, ',')
	buf = lexical.AppendFloat32(buf, 0.25)

	assert.Equal(t, "2.5,0.25", string(buf))
	assert.Equal(t, 64, cap(buf), "append should reuse the preallocated buffer")
}

func TestParseFloat_Errors(t *testing.T) {
	t.Parallel()

	t.Run("syntax error preserved", func(t *testing.T) {
		t.Parallel()

		_, err := lexical.ParseFloat64("not-a-number")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)

		var numErr *strconv.NumError
		assert.ErrorAs(t, err, &numErr)
	})

	t.Run("float32 range overflow", func(t *testing.T) {
		t.Parallel()

		_, err := lexical.ParseFloat32("1e200")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := lexical.ParseFloat64("")
		require.Error(t, err)
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})
}
