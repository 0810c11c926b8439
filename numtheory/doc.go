/*
Package numtheory provides elementary number theory: primality, greatest
common divisors, modular arithmetic, digits in arbitrary radix and the
derivation of divisibility rules.

Divisibility Rules

Let n be a number with digits d₀, d₁, … in base b, d₀ being the least
significant digit. Then

	n = d₀ + d₁·b + d₂·b² + …

and for every set of coefficients cᵢ with cᵢ ≡ bⁱ (mod m)

	n ≡ c₀·d₀ + c₁·d₁ + c₂·d₂ + …   (mod m)

Thus n is divisible by m if and only if the weighted digit sum is. Every
residue rᵢ = bⁱ mod m may be used either as is or as the negative
representative rᵢ - m, which yields a family of equivalent rules. The
well-known rule for 11 in base 10, alternating digit sums, uses the
coefficients (1, -1).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package numtheory

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'blocks'
func tracer() tracing.Trace {
	return tracing.Select("blocks")
}

var (
	// ErrArgument signals an argument outside of the domain of a function.
	ErrArgument = errors.New("numtheory: argument out of range")
	// ErrModulus signals a modulus which is not positive (or ≤ 1, where required).
	ErrModulus = errors.New("numtheory: invalid modulus")
	// ErrNoInverse signals that a number has no inverse for a modulus.
	ErrNoInverse = errors.New("numtheory: no modular inverse")
	// ErrTooManyDigits signals a number with more digits than a non-periodic
	// rule has coefficients.
	ErrTooManyDigits = errors.New("numtheory: number has more digits than rule coefficients")
)
