//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package gf256

import (
	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// primitivePolynomial is the AES/Rijndael reduction polynomial x^8 + x^4 +
// x^3 + x + 1, represented in its 0x11b form (the implicit leading x^8
// term plus 0x1b for the low-order terms).
const primitivePolynomial = 0x11b

// expTable[i] holds generator^i for i in [0, 255); expTable[255] is unused,
// since the multiplicative group has order 255 and exponents are reduced
// mod 255.
var expTable [256]byte

// logTable[v] holds the discrete log base 3 of v, for v in [1, 255].
// logTable[0] is unused: zero has no logarithm in a multiplicative group.
var logTable [256]byte

func init() {
	var x uint16 = 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(x)
		logTable[x] = byte(i)

		// Multiply by the generator (g=3 = x+1): x*3 = (x<<1) ^ x.
		x = (x << 1) ^ x
		if x >= 256 {
			x ^= primitivePolynomial
		}
	}
}

// Add returns a+b in GF(2^8), which is XOR.
func Add(a, b byte) byte {
	return a ^ b
}

// Sub returns a-b in GF(2^8). Subtraction is identical to addition in a
// characteristic-2 field.
func Sub(a, b byte) byte {
	return a ^ b
}

// Mul returns a*b in GF(2^8) via the exp/log tables.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(logTable[a]) + int(logTable[b])
	return expTable[sum%255]
}

// Div returns a/b in GF(2^8). Div(0, b) is 0 for any nonzero b. Div(a, 0)
// fails with ErrFieldDivisionByZero regardless of a.
func Div(a, b byte) (byte, *vaultErrors.VaultError) {
	if b == 0 {
		return 0, vaultErrors.ErrFieldDivisionByZero
	}
	if a == 0 {
		return 0, nil
	}
	diff := int(logTable[a]) - int(logTable[b])
	diff %= 255
	if diff < 0 {
		diff += 255
	}
	return expTable[diff], nil
}
