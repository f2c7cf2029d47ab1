package decswar

// Parser is the configurable entry point. A Parser holds no mutable state
// and is safe for concurrent use.
type Parser struct {
	// fracLen is the number of digits after the point, or -1 if the point
	// has to be searched for.
	fracLen int
}

type Option func(p *Parser)

// WithKnownFractionLength tells the Parser that every input has exactly n
// digits after its decimal point, so the point does not have to be searched
// for. With n == 0 the input must either have no point or end with one.
// Inputs that do not have a point in the expected place are NonDecimal.
//
// It panics if n is negative.
func WithKnownFractionLength(n int) Option {
	if n < 0 {
		panic("decswar: negative fraction length")
	}
	return func(p *Parser) {
		p.fracLen = n
	}
}

// NewParser returns a Parser that scans for the decimal point unless an
// option says where it is.
func NewParser(opts ...Option) *Parser {
	p := &Parser{fracLen: -1}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultParser = NewParser()

// FractionLength returns the configured fraction length and whether one was
// configured.
func (p *Parser) FractionLength() (n int, known bool) {
	return p.fracLen, p.fracLen >= 0
}

// The integer methods ignore the fraction length and behave exactly like the
// package-level functions of the same name.

func (p *Parser) ParseInt64(b []byte) (int64, error) { return ParseInt64(b) }

func (p *Parser) ParseUint64(b []byte) (uint64, error) { return ParseUint64(b) }

func (p *Parser) ParseSigned(w Width, b []byte) (I128, error) { return ParseSigned(w, b) }

func (p *Parser) ParseUnsigned(w Width, b []byte) (U128, error) { return ParseUnsigned(w, b) }

// ParseFloat64 parses b with the default Parser. See Parser.ParseDecimal for
// the accepted syntax.
func ParseFloat64(b []byte) (float64, error) { return defaultParser.ParseFloat64(b) }

// ParseDecimal parses b with the default Parser.
func ParseDecimal(b []byte) (Decimal, error) { return defaultParser.ParseDecimal(b) }
