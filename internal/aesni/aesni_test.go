package aesni

import (
	"bytes"
	"golang.org/x/crypto/sha3"
	"encoding/hex"
	"testing"
)

func unhex(t *testing.T, s string) [16]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return [16]byte(b)
}

func TestAESENC(t *testing.T) {
	// Cross-checked against a table-based AES round. The all-zero case is easy to see by hand:
	// SubBytes(0) = 0x63, ShiftRows and MixColumns leave a constant state unchanged
	// (2x + 3x + x + x = x in GF(2^8)), and the zero round key does nothing.
	for _, v := range []struct{ state, key, want string }{
		{"00000000000000000000000000000000", "00000000000000000000000000000000", "63636363636363636363636363636363"},
		{"000102030405060708090a0b0c0d0e0f", "00000000000000000000000000000000", "6a6a5c452c6d3351b0d95d61279c215c"},
		{"000102030405060708090a0b0c0d0e0f", "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff", "9a9baeb6d898c5a64820a79adb61dfa3"},
		{"00112233445566778899aabbccddeeff", "0f0e0d0c0b0a09080706050403020100", "6c77ebd5ff6df27eaa0039f0d1e98ba3"},
	} {
		state, key, want := unhex(t, v.state), unhex(t, v.key), unhex(t, v.want)
		if got := AESENC(state, key); !bytes.Equal(got[:], want[:]) {
			t.Errorf("AESENC(%s, %s) = %x, want %x", v.state, v.key, got, want)
		}
		if got := encGeneric(state, key); !bytes.Equal(got[:], want[:]) {
			t.Errorf("encGeneric(%s, %s) = %x, want %x", v.state, v.key, got, want)
		}
	}
}

func TestAESENCLAST(t *testing.T) {
	for _, v := range []struct{ state, key, want string }{
		{"00000000000000000000000000000000", "00000000000000000000000000000000", "63636363636363636363636363636363"},
		{"000102030405060708090a0b0c0d0e0f", "00000000000000000000000000000000", "636b6776f201ab7b30d777c5fe7c6f2b"},
		{"000102030405060708090a0b0c0d0e0f", "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff", "939a958506f45d8cc82e8d3e028191d4"},
		{"00112233445566778899aabbccddeeff", "0f0e0d0c0b0a09080706050403020100", "6cf2a11a10e421cbc3c796f1488032ea"},
	} {
		state, key, want := unhex(t, v.state), unhex(t, v.key), unhex(t, v.want)
		if got := AESENCLAST(state, key); !bytes.Equal(got[:], want[:]) {
			t.Errorf("AESENCLAST(%s, %s) = %x, want %x", v.state, v.key, got, want)
		}
		if got := encLastGeneric(state, key); !bytes.Equal(got[:], want[:]) {
			t.Errorf("encLastGeneric(%s, %s) = %x, want %x", v.state, v.key, got, want)
		}
	}
}

func FuzzAESENC(f *testing.F) {
	drbg := sha3.NewShake128()
	_, _ = drbg.Write([]byte("aesni round"))
	for i := 0; i < 10; i++ {
		seed := make([]byte, 32)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 32 {
			t.Skip()
		}

		state := [16]byte(data[:16])
		key := [16]byte(data[16:])
		if got, want := AESENC(state, key), encGeneric(state, key); got != want {
			t.Errorf("AESENC(%x, %x) = %x, want = %x", state, key, got, want)
		}
		if got, want := AESENCLAST(state, key), encLastGeneric(state, key); got != want {
			t.Errorf("AESENCLAST(%x, %x) = %x, want = %x", state, key, got, want)
		}
	})
}
