//go:build (!amd64 && !arm64) || purego

package aesni

func enc(state, key [16]byte) [16]byte {
	return encGeneric(state, key)
}

func encLast(state, key [16]byte) [16]byte {
	return encLastGeneric(state, key)
}
