package lemac

import "github.com/codahale/lemac/internal/aesni"

func absorbBlocksGeneric(st *comboState, p []byte) {
	for ; len(p) >= BlockSize; p = p[BlockSize:] {
		absorbBlockGeneric(st, p)
	}
}

// absorbBlockGeneric applies one round of the absorption function to a 64-byte block. The uneven
// use of the four message lanes (M3 three times, M0 and M1 twice, M2 once) is the fixed LeMac
// message schedule and must not be rearranged.
func absorbBlockGeneric(st *comboState, m []byte) {
	m0 := [16]byte(m[0:16])
	m1 := [16]byte(m[16:32])
	m2 := [16]byte(m[32:48])
	m3 := [16]byte(m[48:64])

	t := st.s[8]
	st.s[8] = aesni.AESENC(st.s[7], m3)
	st.s[7] = aesni.AESENC(st.s[6], m1)
	st.s[6] = aesni.AESENC(st.s[5], m1)
	st.s[5] = aesni.AESENC(st.s[4], m0)
	st.s[4] = aesni.AESENC(st.s[3], m0)
	st.s[3] = aesni.AESENC(st.s[2], xor16(st.r1, st.r2))
	st.s[2] = aesni.AESENC(st.s[1], m3)
	st.s[1] = aesni.AESENC(st.s[0], m3)
	st.s[0] = xor16(xor16(st.s[0], t), m2)
	st.r2 = st.r1
	st.r1 = st.r0
	st.r0 = xor16(st.rr, m1)
	st.rr = m2
}

// absorbZeroBlocksGeneric runs the four all-zero rounds that close out finalization. With
// M0..M3 = 0 the message XORs drop out of the round.
func absorbZeroBlocksGeneric(st *comboState) {
	var zero [16]byte
	for i := 0; i < finalZeroBlocks; i++ {
		t := st.s[8]
		st.s[8] = aesni.AESENC(st.s[7], zero)
		st.s[7] = aesni.AESENC(st.s[6], zero)
		st.s[6] = aesni.AESENC(st.s[5], zero)
		st.s[5] = aesni.AESENC(st.s[4], zero)
		st.s[4] = aesni.AESENC(st.s[3], zero)
		st.s[3] = aesni.AESENC(st.s[2], xor16(st.r1, st.r2))
		st.s[2] = aesni.AESENC(st.s[1], zero)
		st.s[1] = aesni.AESENC(st.s[0], zero)
		st.s[0] = xor16(st.s[0], t)
		st.r2 = st.r1
		st.r1 = st.r0
		st.r0 = st.rr
		st.rr = zero
	}
}
