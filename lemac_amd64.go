//go:build amd64 && !purego

package lemac

import "golang.org/x/sys/cpu"

// useAsm is set if the current CPU supports the AES-NI instructions used by the assembly
// absorption loop.
var useAsm = cpu.X86.HasAES //nolint:gochecknoglobals // should only check once

//go:noescape
func absorbBlocksAsm(st *comboState, p *byte, blocks int)

func absorbBlocks(st *comboState, p []byte) {
	blocks := len(p) / BlockSize
	if blocks == 0 {
		return
	}
	if useAsm {
		absorbBlocksAsm(st, &p[0], blocks)
		return
	}
	absorbBlocksGeneric(st, p)
}

func absorbZeroBlocks(st *comboState) {
	if useAsm {
		absorbBlocksAsm(st, &zeroPad[0], finalZeroBlocks)
		return
	}
	absorbZeroBlocksGeneric(st)
}
