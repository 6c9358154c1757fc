// Package lexical pins a stable text contract for floating-point values:
// the shortest decimal string that round-trips to the exact same bits,
// always in plain positional notation, never exponential.
//
// The contract matters wherever float text must be both minimal and
// lossless, such as event payloads, cache keys, and log output that is later
// parsed. Two properties hold for every finite value:
//
//   - Round trip: ParseFloat64(FormatFloat64(v)) == v, bit for bit.
//   - Plain notation: the output never contains an exponent, so
//     math.MaxFloat64 formats as its full 309-digit expansion rather
//     than "1.7976931348623157e+308".
//
// # Usage
//
//	s := lexical.FormatFloat64(0.1) // "0.1", not "0.1000000000000000055511..."
//
//	buf := make([]byte, 0, 64)
//	buf = lexical.AppendFloat64(buf, 2.5)
//	buf = append(buf, ',')
//	buf = lexical.AppendFloat32(buf, 0.25)
//
//	v, err := lexical.ParseFloat64(s)
//	if err != nil {
//		// The wrapped *strconv.NumError is preserved:
//		// errors.Is(err, strconv.ErrSyntax), errors.As(err, &numErr)
//	}
//
// Float32 values use the dedicated Float32 functions so the shortest form is
// computed against float32 precision: FormatFloat32(0.1) is "0.1", while
// formatting the same value through float64 would print the longer
// float64-exact expansion.
package lexical
