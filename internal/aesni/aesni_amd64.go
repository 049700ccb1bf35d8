//go:build amd64 && !purego

package aesni

import "golang.org/x/sys/cpu"

// hasAES is set if the current CPU supports the AES-NI instructions.
var hasAES = cpu.X86.HasAES //nolint:gochecknoglobals // should only check once

//go:noescape
func aesenc(dst, state, key *[16]byte)

//go:noescape
func aesenclast(dst, state, key *[16]byte)

func enc(state, key [16]byte) [16]byte {
	if !hasAES {
		return encGeneric(state, key)
	}
	var dst [16]byte
	aesenc(&dst, &state, &key)
	return dst
}

func encLast(state, key [16]byte) [16]byte {
	if !hasAES {
		return encLastGeneric(state, key)
	}
	var dst [16]byte
	aesenclast(&dst, &state, &key)
	return dst
}
