// Package calc implements a calculator for float64 arithmetic expressions.
//
// Expressions are evaluated in a single pass while they are parsed; there is
// no intermediate syntax tree. The grammar is the usual one for infix math,
// with "^" for right-associative exponentiation and a small set of named
// functions. Functions can take a parenthesized argument, "sqrt(16)", or a
// single bare term, "sin 30". "-2^2" is "-(2^2)" and "2^3^2" is "2^(3^2)".
//
// Names which are not known functions are accepted and return their argument
// unchanged, so "foo(5)" is 5.
//
package calc
