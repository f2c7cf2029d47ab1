// Command decswar parses newline-separated decimal fields with the decswar
// parsers and prints the values, their total, or a dump of each one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"

	"github.com/shabbyrobe/go-decswar"
	"github.com/shabbyrobe/go-decswar/column"
)

// Error is the class of every failure the tool reports itself.
var Error = errs.Class("decswar")

const usage = `Usage: decswar [options] [file...]

Reads one decimal field per line from each file, or from stdin if no files
are given ("-" also means stdin). Bad lines are reported on stderr and
skipped unless -strict is set.

Options:
`

const (
	exitOK    = 0
	exitBad   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type kind int

const (
	intKind kind = iota
	floatKind
	decimalKind
)

type mode struct {
	name   string
	kind   kind
	decode func(b []byte) (any, error)
}

var widths = map[string]decswar.Width{
	"u8":   decswar.WidthUint8,
	"u16":  decswar.WidthUint16,
	"u32":  decswar.WidthUint32,
	"u64":  decswar.WidthUint64,
	"u128": decswar.WidthUint128,
	"i8":   decswar.WidthInt8,
	"i16":  decswar.WidthInt16,
	"i32":  decswar.WidthInt32,
	"i64":  decswar.WidthInt64,
	"i128": decswar.WidthInt128,
}

func newMode(name string, frac int) (m mode, err error) {
	m.name = name

	switch name {
	case "f64", "dec":
		var opts []decswar.Option
		if frac >= 0 {
			opts = append(opts, decswar.WithKnownFractionLength(frac))
		}
		p := decswar.NewParser(opts...)
		if name == "f64" {
			m.kind = floatKind
			m.decode = func(b []byte) (any, error) { return p.ParseFloat64(b) }
		} else {
			m.kind = decimalKind
			m.decode = func(b []byte) (any, error) { return p.ParseDecimal(b) }
		}
		return m, nil
	}

	w, ok := widths[name]
	if !ok {
		return m, Error.New("unknown width %q", name)
	}
	if frac >= 0 {
		return m, Error.New("-frac needs -width f64 or dec, not %s", name)
	}
	m.kind = intKind
	if w.Signed() {
		m.decode = func(b []byte) (any, error) { return decswar.ParseSigned(w, b) }
	} else {
		m.decode = func(b []byte) (any, error) { return decswar.ParseUnsigned(w, b) }
	}
	return m, nil
}

// entry is one decoded line. Outside strict mode a bad line is carried here
// instead of failing the whole column.
type entry struct {
	v   any
	err error
}

type tool struct {
	mode    mode
	workers int
	strict  bool
	sum     bool
	dump    bool

	out io.Writer
	log *log.Logger

	total total
	bad   int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decswar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		width   = fs.String("width", "i64", "field type: u8..u128, i8..i128, f64 or dec")
		frac    = fs.Int("frac", -1, "known fraction length for f64 and dec (-1 to scan for the point)")
		sum     = fs.Bool("sum", false, "print the total instead of each value")
		dump    = fs.Bool("dump", false, "dump each parsed value with go-spew")
		workers = fs.Int("workers", 1, "decode with this many goroutines (0 for GOMAXPROCS)")
		strict  = fs.Bool("strict", false, "stop at the first bad line")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if *frac < -1 {
		fmt.Fprintln(stderr, Error.New("-frac must be >= 0"))
		return exitUsage
	}

	m, err := newMode(*width, *frac)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	t := &tool{
		mode:    m,
		workers: *workers,
		strict:  *strict,
		sum:     *sum,
		dump:    *dump,
		out:     stdout,
		log:     log.New(stderr, "decswar: ", 0),
		total:   newTotal(),
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}
	for _, name := range names {
		if err := t.processFile(name, stdin); err != nil {
			fmt.Fprintln(stderr, err)
			return exitBad
		}
	}

	if t.sum {
		fmt.Fprintln(t.out, t.total.String(t.mode.kind))
	}
	if t.bad > 0 {
		t.log.Printf("%d bad lines", t.bad)
	}
	return exitOK
}

func (t *tool) processFile(name string, stdin io.Reader) error {
	if name == "-" {
		return t.process("<stdin>", stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return Error.Wrap(oops.Trace(err))
	}
	defer f.Close()
	return t.process(name, f)
}

func readColumn(r io.Reader) (c column.Column, err error) {
	defer Error.WrapP(&err)

	data, err := io.ReadAll(r)
	if err != nil {
		return c, oops.Trace(err)
	}
	return column.SplitLines(data), nil
}

func (t *tool) process(name string, r io.Reader) error {
	c, err := readColumn(r)
	if err != nil {
		return err
	}

	rows := make([]entry, c.Len())
	err = column.DecodeParallel(c, rows, t.workers, t.decodeRow)

	var rowErr *column.RowError
	if errors.As(err, &rowErr) {
		// The rows below the failing one are complete.
		t.emit(name, c, rows[:rowErr.Row])
		t.report(name, rowErr.Row, c.Field(rowErr.Row), rowErr.Err)
		return Error.New("%s:%d: stopped at bad line", name, rowErr.Row+1)
	} else if err != nil {
		return Error.Wrap(err)
	}

	t.emit(name, c, rows)
	return nil
}

func (t *tool) decodeRow(b []byte) (entry, error) {
	v, err := t.mode.decode(b)
	if err != nil && t.strict {
		return entry{}, err
	}
	return entry{v: v, err: err}, nil
}

func (t *tool) emit(name string, c column.Column, rows []entry) {
	for i, e := range rows {
		if e.err != nil {
			t.report(name, i, c.Field(i), e.err)
			continue
		}
		if t.sum {
			t.total.add(e.v)
		}
		if t.dump {
			spew.Fdump(t.out, e.v)
		} else if !t.sum {
			t.print(e.v)
		}
	}
}

func (t *tool) print(v any) {
	switch v := v.(type) {
	case float64:
		fmt.Fprintln(t.out, strconv.FormatFloat(v, 'g', -1, 64))
	case fmt.Stringer:
		fmt.Fprintln(t.out, v.String())
	default:
		fmt.Fprintln(t.out, v)
	}
}

func (t *tool) report(name string, row int, field []byte, err error) {
	t.bad++
	t.log.Printf("%s:%d: %q is not a valid %s: %s", name, row+1, field, t.mode.name, decswar.KindOf(err).String())
}

// total accumulates a sum without losing precision: integers in a big.Int,
// decimals in a big.Rat. float64 fields sum as float64.
type total struct {
	i     *big.Int
	r     *big.Rat
	f     float64
	scale int
}

func newTotal() total {
	return total{i: new(big.Int), r: new(big.Rat)}
}

func (s *total) add(v any) {
	switch v := v.(type) {
	case decswar.I128:
		s.i.Add(s.i, v.AsBigInt())
	case decswar.U128:
		s.i.Add(s.i, v.AsBigInt())
	case float64:
		s.f += v
	case decswar.Decimal:
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.Scale)), nil)
		s.r.Add(s.r, new(big.Rat).SetFrac(v.Coef.AsBigInt(), den))
		s.scale = max(s.scale, v.Scale)
	default:
		panic(fmt.Errorf("decswar: unexpected value %T", v))
	}
}

func (s *total) String(k kind) string {
	switch k {
	case floatKind:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case decimalKind:
		return s.r.FloatString(s.scale)
	default:
		return s.i.String()
	}
}
