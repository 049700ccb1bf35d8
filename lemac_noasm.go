//go:build (!amd64 && !arm64) || purego

package lemac

func absorbBlocks(st *comboState, p []byte) {
	absorbBlocksGeneric(st, p)
}

func absorbZeroBlocks(st *comboState) {
	absorbZeroBlocksGeneric(st)
}
