//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package gf256

import (
	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// Eval evaluates poly (coefficients low-degree first) at x, using Horner's
// method. x == 0 is disallowed: evaluating a Shamir polynomial at 0 would
// return the secret itself, so it is never legitimate share arithmetic.
func Eval(x byte, poly []byte) (byte, *vaultErrors.VaultError) {
	if x == 0 {
		return 0, vaultErrors.ErrFieldEvalAtZero
	}
	if len(poly) == 0 {
		return 0, nil
	}

	degree := len(poly) - 1
	out := poly[degree]
	for i := degree - 1; i >= 0; i-- {
		out = Add(Mul(out, x), poly[i])
	}
	return out, nil
}

// AddPoly returns a+b, right-padding the shorter operand with zeros and
// XORing byte-wise.
func AddPoly(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		out[i] = Add(av, bv)
	}
	return out
}

// MulPoly returns a*b via schoolbook multiplication: the coefficient of
// x^(i+j) accumulates Mul(a[i], b[j]).
func MulPoly(a, b []byte) []byte {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]byte, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			out[i+j] = Add(out[i+j], Mul(av, bv))
		}
	}
	return out
}

// scale returns poly with every coefficient multiplied by s.
func scale(poly []byte, s byte) []byte {
	out := make([]byte, len(poly))
	for i, c := range poly {
		out[i] = Mul(c, s)
	}
	return out
}

// FullLagrange returns the coefficient vector (low-degree first, length
// len(xs)) of the unique polynomial of degree <= len(xs)-1 that passes
// through the points (xs[i], ys[i]). All xs[i] must be distinct and
// nonzero; a duplicate fails with ErrFieldDuplicateX.
func FullLagrange(xs, ys []byte) ([]byte, *vaultErrors.VaultError) {
	n := len(xs)
	result := make([]byte, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if xs[i] == xs[j] {
				return nil, vaultErrors.ErrFieldDuplicateX
			}
		}
	}

	for i := 0; i < n; i++ {
		numerator := []byte{1}
		var denominator byte = 1

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			// (x - xs[j]) == (x + xs[j]) in characteristic 2: [xs[j], 1].
			numerator = MulPoly(numerator, []byte{xs[j], 1})
			denominator = Mul(denominator, Add(xs[i], xs[j]))
		}

		invDenominator, divErr := Div(1, denominator)
		if divErr != nil {
			return nil, divErr
		}

		basis := scale(numerator, Mul(ys[i], invDenominator))
		result = AddPoly(result, basis)
	}

	return result, nil
}
