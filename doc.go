/*
Package decswar converts ASCII decimal text to integers of 8 to 128 bits, and
to fixed-point and floating point values, by working on up to 16 digits at a
time inside ordinary integer registers rather than one byte at a time.

Each input must be exactly one number: an optional leading '-' (signed types
only), then ASCII digits with any number of leading zeros. Finding where a
number begins and ends in a larger buffer is up to the caller.

	v, err := decswar.ParseInt32([]byte("-2147483648"))
	// v == math.MinInt32, err == nil

	_, err = decswar.ParseInt32([]byte("2147483648"))
	// errors.Is(err, decswar.Overflow) == true

Failures are reported as a *ParseError carrying one of four ErrorKinds:
Empty, NonDecimal, Overflow and NegOverflow.

Widths can also be chosen at runtime:

	u, err := decswar.ParseUnsigned(decswar.WidthUint16, b)
	i, err := decswar.ParseSigned(decswar.WidthInt128, b)

The 128-bit results use the U128 and I128 value types, which support the
following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Decimals with a fractional part go through a Parser:

	p := decswar.NewParser(decswar.WithKnownFractionLength(2))
	f, err := p.ParseFloat64([]byte("-12.34"))

All functions are pure and safe for concurrent use.
*/
package decswar
