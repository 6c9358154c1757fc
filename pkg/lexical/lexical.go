package lexical

import (
	"fmt"
	"strconv"
)

// FormatFloat64 returns the shortest decimal string that parses back to
// exactly v, always in plain positional notation. Non-finite values format
// as "NaN", "+Inf", and "-Inf".
func FormatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFloat32 returns the shortest decimal string that parses back to
// exactly v through a float32 round trip, always in plain positional
// notation.
func FormatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// AppendFloat64 appends the FormatFloat64 representation of v to dst and
// returns the extended slice.
func AppendFloat64(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', -1, 64)
}

// AppendFloat32 appends the FormatFloat32 representation of v to dst and
// returns the extended slice.
func AppendFloat32(dst []byte, v float32) []byte {
	return strconv.AppendFloat(dst, float64(v), 'f', -1, 32)
}

// ParseFloat64 parses a decimal string into a float64. The underlying
// *strconv.NumError is wrapped, so errors.Is(err, strconv.ErrSyntax) and
// errors.As keep working.
func ParseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse float64 %q: %w", s, err)
	}
	return v, nil
}

// ParseFloat32 parses a decimal string into a float32, rounding to the
// nearest representable value. Values overflowing float32 range return an
// error wrapping strconv.ErrRange.
func ParseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("parse float32 %q: %w", s, err)
	}
	return float32(v), nil
}
