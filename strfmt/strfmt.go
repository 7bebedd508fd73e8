// Package strfmt implements the typed positional formatting mini-language
// used for user-facing strings.
//
// Two placeholder syntaxes are supported and keep separate argument
// numbering:
//
//	%c %d %f %s %v  consume arguments strictly left to right ("%%" is a
//	                literal percent sign)
//	{N}             references the N-th supplied argument (0-based), may
//	                repeat and appear out of order ("\{" is a literal brace)
//
// Placeholders are typed: %c accepts only Char arguments, %d only Int, %f
// only Float, %s only Str, while %v and {N} accept any argument. A type
// mismatch or a reference past the supplied arguments fails the whole call,
// there is no partial output. When positional references are used every
// index from 0 to the largest referenced one must appear at least once,
// otherwise the format string is rejected.
package strfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type argKind int

const (
	kindNone argKind = iota
	kindChar
	kindInt
	kindFloat
	kindStr
	kindAny
	kindLiteral
)

// Arg is a typed formatting argument. The zero value is the "no value"
// sentinel: trailing zero Args are trimmed before evaluation which is what
// makes optional trailing parameters possible.
type Arg struct {
	kind argKind
	c    rune
	i    int64
	f    float64
	s    string
}

// Char makes a character argument (matched by %c).
func Char(c rune) Arg {
	return Arg{kind: kindChar, c: c}
}

// Int makes an integer argument (matched by %d).
func Int(i int) Arg {
	return Arg{kind: kindInt, i: int64(i)}
}

// Int64 makes an integer argument (matched by %d).
func Int64(i int64) Arg {
	return Arg{kind: kindInt, i: i}
}

// Float makes a floating point argument (matched by %f).
func Float(f float64) Arg {
	return Arg{kind: kindFloat, f: f}
}

// Str makes a string argument (matched by %s).
func Str(s string) Arg {
	return Arg{kind: kindStr, s: s}
}

var (
	// ErrBadFormat reports a positional format string that leaves a gap in
	// its argument references.
	ErrBadFormat = errors.New("format references argument indexes inconsistently")
	// ErrArgType reports an argument whose type does not match its placeholder.
	ErrArgType = errors.New("argument type does not match placeholder")
	// ErrMissingArg reports a placeholder referencing an argument that was
	// not supplied.
	ErrMissingArg = errors.New("placeholder references missing argument")
)

// maxInstructions bounds the parsed instruction list. Format strings are
// compile-time literals, overflowing the limit is programmer error and
// panics instead of failing softly.
const maxInstructions = 32

type inst struct {
	kind  argKind // kindLiteral for text coming from the format string itself
	argNo int
	lit   string
}

type parsed struct {
	insts     [maxInstructions]inst
	n         int
	percArgNo int
}

func (p *parsed) add(in inst) {
	if p.n >= maxInstructions {
		panic("strfmt: too many placeholders in format string")
	}
	p.insts[p.n] = in
	p.n++
}

func (p *parsed) addLiteral(s string) {
	if len(s) == 0 {
		return
	}
	p.add(inst{kind: kindLiteral, argNo: -1, lit: s})
}

func kindFromVerb(c byte) argKind {
	switch c {
	case 'c':
		return kindChar
	case 'd':
		return kindInt
	case 'f':
		return kindFloat
	case 's':
		return kindStr
	case 'v':
		return kindAny
	}
	panic("strfmt: unknown placeholder verb %" + string(c))
}

// parsePositional scans {N} starting at the opening brace, returns the
// offset right past the closing one.
func (p *parsed) parsePositional(format string, i int) int {
	i++ // skip '{'
	n := 0
	for {
		if i >= len(format) {
			panic("strfmt: unterminated positional placeholder")
		}
		c := format[i]
		if c == '}' {
			break
		}
		if c < '0' || c > '9' {
			panic("strfmt: positional placeholder is not a number")
		}
		n = n*10 + int(c-'0')
		i++
	}
	p.add(inst{kind: kindAny, argNo: n})
	return i + 1
}

func (p *parsed) parsePerc(format string, i int) int {
	if i+1 >= len(format) {
		panic("strfmt: format string ends in the middle of a placeholder")
	}
	p.add(inst{kind: kindFromVerb(format[i+1]), argNo: p.percArgNo})
	p.percArgNo++
	return i + 2
}

func parse(format string) (*parsed, error) {
	p := &parsed{}
	start := 0
	i := 0
	for i < len(format) {
		switch c := format[i]; {
		case c == '\\' && i+1 < len(format) && format[i+1] == '{':
			p.addLiteral(format[start:i])
			start = i + 1 // literal brace stays in the next literal run
			i += 2
		case c == '{':
			p.addLiteral(format[start:i])
			i = p.parsePositional(format, i)
			start = i
		case c == '%' && i+1 < len(format) && format[i+1] == '%':
			p.addLiteral(format[start:i])
			start = i + 1 // second percent stays in the next literal run
			i += 2
		case c == '%':
			p.addLiteral(format[start:i])
			i = p.parsePerc(format, i)
			start = i
		default:
			i++
		}
	}
	p.addLiteral(format[start:])

	// Positional references may repeat but must cover the whole range from
	// zero to the largest index used.
	maxArgNo := -1
	for j := 0; j < p.n; j++ {
		if p.insts[j].kind != kindLiteral && p.insts[j].argNo > maxArgNo {
			maxArgNo = p.insts[j].argNo
		}
	}
	for want := 0; want <= maxArgNo; want++ {
		found := false
		for j := 0; j < p.n; j++ {
			if p.insts[j].kind != kindLiteral && p.insts[j].argNo == want {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("argument %d is never referenced: %w", want, ErrBadFormat)
		}
	}
	return p, nil
}

func compatible(instKind, argKind argKind) bool {
	switch instKind {
	case kindAny:
		return argKind != kindNone
	case kindChar, kindInt, kindFloat, kindStr:
		return instKind == argKind
	}
	return false
}

func (p *parsed) eval(args []Arg) (string, error) {
	var sb strings.Builder
	for j := 0; j < p.n; j++ {
		in := &p.insts[j]
		if in.kind == kindLiteral {
			sb.WriteString(in.lit)
			continue
		}
		if in.argNo >= len(args) {
			return "", fmt.Errorf("argument %d of %d: %w", in.argNo, len(args), ErrMissingArg)
		}
		arg := args[in.argNo]
		if !compatible(in.kind, arg.kind) {
			return "", fmt.Errorf("argument %d: %w", in.argNo, ErrArgType)
		}
		switch arg.kind {
		case kindChar:
			sb.WriteRune(arg.c)
		case kindInt:
			sb.WriteString(strconv.FormatInt(arg.i, 10))
		case kindFloat:
			// 'G' avoids trailing zeros
			sb.WriteString(strconv.FormatFloat(arg.f, 'G', -1, 64))
		case kindStr:
			sb.WriteString(arg.s)
		}
	}
	return sb.String(), nil
}

// Format renders format with the supplied arguments. Trailing zero-value
// arguments are treated as omitted. On any mismatch the call fails as a
// whole and the returned string is empty.
func Format(format string, args ...Arg) (string, error) {
	for len(args) > 0 && args[len(args)-1].kind == kindNone {
		args = args[:len(args)-1]
	}
	p, err := parse(format)
	if err != nil {
		return "", err
	}
	return p.eval(args)
}
