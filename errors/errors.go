//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package errors

// MaybeError converts an error to its string representation if the error is
// not nil. If the error is nil, it returns an empty string.
func MaybeError(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
