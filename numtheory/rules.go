package numtheory

import (
	"fmt"
	"strings"

	"github.com/npillmayer/blocks"
	"github.com/npillmayer/blocks/series"
)

// MaxVariableCoefficients limits the number of coefficients with two possible
// representatives, thus the number of rules enumerated is at most
// 2^MaxVariableCoefficients.
const MaxVariableCoefficients = 16

// Rule is a divisibility rule for Divisor in base Base.
//
// Coefficient i is congruent to Base^i modulo Divisor.
type Rule struct {
	Divisor      int64
	Base         int64
	Coefficients *series.Series[int64]
}

// IsPeriodic reports whether the coefficients may be repeated cyclically for
// numbers with more digits than the rule has coefficients, i.e. whether
// Base^k ≡ 1 (mod Divisor) for k coefficients.
func (r Rule) IsPeriodic() bool {
	k := int64(r.Coefficients.Len())
	p, err := ModPow(r.Base, k, r.Divisor)
	return err == nil && p == Mod(1, r.Divisor)
}

// Apply returns the weighted digit sum of n, which is congruent to n modulo the
// divisor. For negative n the sum is negated.
func (r Rule) Apply(n int64) (int64, error) {
	digits, err := Digits(n, r.Base)
	if err != nil {
		return 0, err
	}
	k := r.Coefficients.Len()
	if digits.Len() > k && !r.IsPeriodic() {
		return 0, fmt.Errorf("%w: %d has %d digits in base %d, rule has %d coefficients",
			ErrTooManyDigits, n, digits.Len(), r.Base, k)
	}
	var sum int64
	for i, d := range digits.All() {
		c, _ := r.Coefficients.At(i % k)
		sum += c * d
	}
	if n < 0 {
		sum = -sum
	}
	return sum, nil
}

// Divides reports whether the divisor divides n, judged by the rule.
func (r Rule) Divides(n int64) (bool, error) {
	sum, err := r.Apply(n)
	if err != nil {
		return false, err
	}
	return sum%r.Divisor == 0, nil
}

// Weight returns the sum of the absolute values of the coefficients. Rules of
// smaller weight are easier to apply by hand.
func (r Rule) Weight() int64 {
	var w int64
	for _, c := range r.Coefficients.All() {
		if c < 0 {
			c = -c
		}
		w += c
	}
	return w
}

// String returns a rule as "7|10: (1, 3, 2)".
func (r Rule) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d|%d: (", r.Divisor, r.Base)
	for i, c := range r.Coefficients.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// DivisibilityRules derives all divisibility rules for divisor in base base,
// with count coefficients each.
//
// Coefficient i is either the residue rᵢ = base^i mod divisor or its negative
// representative rᵢ - divisor. Zero residues have a single representative.
// Rules are enumerated by counting through the choices with a boolean array,
// starting with all residues positive.
func DivisibilityRules(divisor, base int64, count int) (*blocks.List[Rule], error) {
	if divisor <= 1 || base <= 1 || count <= 0 {
		return nil, fmt.Errorf("%w: divisor=%d, base=%d, coefficients=%d", ErrArgument, divisor, base, count)
	}
	residues := make([]int64, count)
	var variable []int // indices of residues with two representatives
	for i := range residues {
		r, err := ModPow(base, int64(i), divisor)
		if err != nil {
			return nil, err
		}
		residues[i] = r
		if r != 0 {
			variable = append(variable, i)
		}
	}
	if len(variable) > MaxVariableCoefficients {
		return nil, fmt.Errorf("%w: %d coefficients would yield 2^%d rules",
			ErrArgument, count, len(variable))
	}
	rules, err := blocks.New(blocks.Config[Rule]{
		Extender: blocks.DoublingExtender(4, 256),
	})
	if err != nil {
		return nil, err
	}
	negative := make([]bool, len(variable))
	for {
		coeffs := append([]int64(nil), residues...)
		for j, i := range variable {
			if negative[j] {
				coeffs[i] -= divisor
			}
		}
		name := fmt.Sprintf("rule %d|%d #%d", divisor, base, rules.Len()+1)
		rule := Rule{
			Divisor:      divisor,
			Base:         base,
			Coefficients: series.FromSlice(name, series.Config[int64]{}, coeffs),
		}
		if err = rules.Append(rule); err != nil {
			return nil, err
		}
		if !increment(negative) {
			break
		}
	}
	tracer().Debugf("divisibility rules %d|%d: %d rules with %d coefficients", divisor, base, rules.Len(), count)
	return rules, nil
}

// increment advances a little-endian binary counter of flags and reports
// false on wrap-around.
func increment(flags []bool) bool {
	for i := range flags {
		if !flags[i] {
			flags[i] = true
			return true
		}
		flags[i] = false
	}
	return false
}

// MinimalRule returns the rule of least weight, preferring earlier rules on
// ties. ok is false for an empty list.
func MinimalRule(rules *blocks.List[Rule]) (min Rule, ok bool) {
	for _, r := range rules.All() {
		if !ok || r.Weight() < min.Weight() {
			min, ok = r, true
		}
	}
	return
}
