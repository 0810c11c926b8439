/*
Command divisibilidad derives divisibility rules.

Usage:

	divisibilidad [-d|--directo] <divisor> <base> <coeficientes>

With flag -d the command prints all divisibility rules for divisor in the
given base, with the given number of coefficients. Without it, the command
prints its help text (in Spanish).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
