package numtheory

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/blocks/series"
	"golang.org/x/exp/constraints"
)

// IsPrime reports whether n is prime, using trial division.
func IsPrime[N constraints.Integer](n N) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := N(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns the series of all primes p ≤ n, in ascending order.
func PrimesUpTo(n int64) *series.Series[int64] {
	primes := series.New(fmt.Sprintf("primes≤%d", n), series.Config[int64]{})
	for i := int64(2); i <= n; i++ {
		if IsPrime(i) {
			primes.Append(i)
		}
	}
	return primes
}

// GCD returns the greatest common divisor of a and b, which is never negative.
// GCD(0, 0) is 0.
func GCD[N constraints.Integer](a, b N) N {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of a and b, which is never negative.
// If one of the arguments is 0, LCM returns 0.
func LCM[N constraints.Integer](a, b N) N {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x and y
// satisfying a·x + b·y = g.
func ExtendedGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// Mod returns a modulo m in [0, m). m must be positive.
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// ModInverse returns x in [0, m) with a·x ≡ 1 (mod m).
//
// m has to be greater than 1 and a has to be coprime to m.
func ModInverse(a, m int64) (int64, error) {
	if m <= 1 {
		return 0, fmt.Errorf("%w: %d", ErrModulus, m)
	}
	g, x, _ := ExtendedGCD(Mod(a, m), m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, g)
	}
	return Mod(x, m), nil
}

// ModPow returns base^exp mod m in [0, m), by repeated squaring.
//
// m has to be positive and exp must not be negative.
func ModPow(base, exp, m int64) (int64, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrModulus, m)
	}
	if exp < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrArgument, exp)
	}
	mod := uint64(m)
	result := uint64(1) % mod
	b := uint64(Mod(base, m))
	for e := uint64(exp); e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, b, mod)
		}
		b = mulMod(b, b, mod)
	}
	return int64(result), nil
}

// mulMod returns a·b mod m without overflowing, for a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Digits returns the digits of |n| in the given radix, least significant digit
// first. The digits of 0 are [0].
func Digits(n, radix int64) (*series.Series[int64], error) {
	if radix < 2 {
		return nil, fmt.Errorf("%w: radix %d", ErrArgument, radix)
	}
	digits := series.New(fmt.Sprintf("%d₍%d₎", n, radix), series.Config[int64]{})
	u := uint64(n)
	if n < 0 {
		u = -u
	}
	r := uint64(radix)
	for {
		digits.Append(int64(u % r))
		u /= r
		if u == 0 {
			break
		}
	}
	return digits, nil
}
