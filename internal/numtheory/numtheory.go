// Package numtheory implements the small-integer number theory behind the
// RSA puzzles: primality, gcd, modular inverse and modular exponentiation.
//
// Moduli in the game stay well below 2^31, so every product fits in a uint64
// and no big-integer arithmetic is required.
package numtheory

import "errors"

// ErrNoInverse is returned by ModInverse when gcd(e, m) != 1.
var ErrNoInverse = errors.New("numtheory: no modular inverse")

// IsPrime reports whether n is prime using trial division up to sqrt(n).
// Values below 2 are never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Primes returns all primes in [lo, hi] in ascending order.
func Primes(lo, hi int) []int {
	var out []int
	for n := max(lo, 2); n <= hi; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

// GCD returns the greatest common divisor of a and b (always non-negative).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b int) bool {
	return GCD(a, b) == 1
}

// ExtendedGCD returns g = gcd(a, b) and Bezout coefficients x, y with
// a*x + b*y = g.
func ExtendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1
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

// ModInverse returns d in [0, m) with e*d ≡ 1 (mod m).
func ModInverse(e, m int) (int, error) {
	if m <= 1 {
		return 0, ErrNoInverse
	}
	g, x, _ := ExtendedGCD(e, m)
	if g != 1 {
		return 0, ErrNoInverse
	}
	x %= m
	if x < 0 {
		x += m
	}
	return x, nil
}

// ModPow computes base^exp mod m by square-and-multiply.
// exp must be non-negative and m positive.
func ModPow(base, exp, m int) int {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	b := uint64(((base % m) + m) % m)
	mod := uint64(m)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = result * b % mod
		}
		b = b * b % mod
	}
	return int(result)
}

// EncryptText turns each character of text into its code point and raises
// it to e modulo n.
func EncryptText(text string, e, n int) []int {
	runes := []rune(text)
	out := make([]int, len(runes))
	for i, r := range runes {
		out[i] = ModPow(int(r), e, n)
	}
	return out
}

// DecryptText inverts EncryptText with the private exponent d.
func DecryptText(cipher []int, d, n int) string {
	runes := make([]rune, len(cipher))
	for i, c := range cipher {
		runes[i] = rune(ModPow(c, d, n))
	}
	return string(runes)
}
