package calc

import "strconv"

// SyntaxKind classifies a SyntaxError.
type SyntaxKind int8

const (
	// Unexpected is a character that cannot begin a term, including the end
	// of the input where a term is required.
	Unexpected SyntaxKind = iota + 1
	// Unclosed is a parenthesized expression or function argument missing its
	// closing parenthesis.
	Unclosed
	// Trailing is input left over after a complete expression.
	Trailing
)

var syntaxKinds = [...]string{
	Unexpected: "Unexpected",
	Unclosed:   "Unclosed",
	Trailing:   "Trailing",
}

func (k SyntaxKind) String() string {
	if k <= 0 || int(k) >= len(syntaxKinds) {
		return "SyntaxKind(" + strconv.Itoa(int(k)) + ")"
	}
	return syntaxKinds[k]
}

// SyntaxError is an error indicating input that does not match the grammar of
// expressions. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending character.
	Col int
	// Kind is the reason for the error.
	Kind SyntaxKind
	// Text is the offending character, or the empty string if the error
	// occurred at the end of the input.
	Text string
	// Func is the function name whose argument is missing its closing
	// parenthesis, for Unclosed errors in call form.
	Func string
}

func (err *SyntaxError) Error() string {
	switch err.Kind {
	case Unclosed:
		if err.Func != "" {
			return errpos(err.Col, "missing ')' after argument to "+err.Func)
		}
		return errpos(err.Col, "missing ')'")
	case Trailing:
		return errpos(err.Col, "unexpected trailing "+quoteText(err.Text))
	default:
		return errpos(err.Col, "unexpected "+quoteText(err.Text))
	}
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a token made of digits and dots that is
// not a valid number, e.g. "1.2.3". It is deliberately not a SyntaxError. It
// implements InputError.
type NumberError struct {
	// Col is the position of the start of the number.
	Col int
	// Text is the invalid number.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

func (err *NumberError) Pos() int {
	return err.Col
}

// DepthError is an error indicating an expression nested more deeply than the
// evaluator allows. It implements InputError.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
	// Max is the maximum nesting depth.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression too deeply nested (max depth "+strconv.Itoa(err.Max)+")")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// quoteText formats an offending character for an error message.
func quoteText(s string) string {
	if s == "" {
		return "end of input"
	}
	return "'" + s + "'"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*DepthError)(nil)
)
