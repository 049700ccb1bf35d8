// Package aesni provides single AES round operations with the semantics of the x86 AES-NI instructions.
//
// On amd64 and arm64 processors with AES instructions, each operation compiles down to the corresponding
// hardware round. Everywhere else (and with the purego build tag) it uses a bitsliced, pure Go
// implementation of the round which attempts to be constant time.
package aesni

// AESENC performs one AES encryption round (SubBytes, ShiftRows, MixColumns, AddRoundKey) on a
// 128-bit state, matching the AESENC instruction.
func AESENC(state, key [16]byte) [16]byte {
	return enc(state, key)
}

// AESENCLAST performs the final AES encryption round (SubBytes, ShiftRows, AddRoundKey, no
// MixColumns) on a 128-bit state, matching the AESENCLAST instruction.
func AESENCLAST(state, key [16]byte) [16]byte {
	return encLast(state, key)
}
