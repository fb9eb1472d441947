package calc

import (
	"math"
	"strconv"
)

// Func is a named function of one variable. The set of functions is closed;
// every name that is not one of them is Unknown.
type Func int8

const (
	// Unknown is any function name not otherwise recognized. Applying it
	// returns the argument unchanged.
	Unknown Func = iota
	Sqrt
	Sin
	Cos
	Tan
	Abs
	Ceil
	Floor
	Atan
	Round
	Exp

	nfuncs
)

var funcnames = [nfuncs]string{
	Unknown: "",
	Sqrt:    "sqrt",
	Sin:     "sin",
	Cos:     "cos",
	Tan:     "tan",
	Abs:     "abs",
	Ceil:    "ceil",
	Floor:   "floor",
	Atan:    "atan",
	Round:   "round",
	Exp:     "exp",
}

var funcimpls = [nfuncs]func(float64) float64{
	Unknown: func(x float64) float64 { return x },
	Sqrt:    math.Sqrt,
	Sin:     math.Sin,
	Cos:     math.Cos,
	Tan:     math.Tan,
	Abs:     math.Abs,
	Ceil:    math.Ceil,
	Floor:   math.Floor,
	Atan:    math.Atan,
	Round:   roundHalfUp,
	Exp:     math.Exp,
}

var funcsByName = func() map[string]Func {
	m := make(map[string]Func, nfuncs-1)
	for f := Unknown + 1; f < nfuncs; f++ {
		m[funcnames[f]] = f
	}
	return m
}()

// LookupFunc returns the function with the given name. If there is no such
// function, the result is Unknown.
func LookupFunc(name string) Func {
	return funcsByName[name]
}

// Funcs returns the names of all known functions.
func Funcs() []string {
	r := make([]string, 0, nfuncs-1)
	for f := Unknown + 1; f < nfuncs; f++ {
		r = append(r, funcnames[f])
	}
	return r
}

// Apply evaluates the function at x.
func (f Func) Apply(x float64) float64 {
	if f < 0 || f >= nfuncs {
		panic("calc: invalid Func " + strconv.Itoa(int(f)))
	}
	return funcimpls[f](x)
}

func (f Func) String() string {
	switch {
	case f == Unknown:
		return "Unknown"
	case 0 < f && f < nfuncs:
		return funcnames[f]
	default:
		return "Func(" + strconv.Itoa(int(f)) + ")"
	}
}

// roundHalfUp rounds x to the nearest integer, with ties going toward positive
// infinity: 2.5 rounds to 3 and -2.5 rounds to -2. NaN and infinities are
// returned unchanged.
func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}
