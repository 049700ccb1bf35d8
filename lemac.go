// Package lemac implements [LeMac], a keyed 128-bit message authentication code designed for very
// high throughput on processors with AES round instructions.
//
// On AMD64 and ARM64 architectures, lemac uses the hardware AES instructions to absorb message
// blocks. On other architectures, or if the purego build tag is used, it uses a much-slower Go
// implementation with a bitsliced, constant-time AES round implementation. All backends produce
// byte-identical tags.
//
// [LeMac]: https://github.com/AugustinBariant/Implementations_LeMac_PetitMac
package lemac

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"errors"

	"github.com/codahale/lemac/internal/aesni"
)

const (
	// KeySize is the length of a LeMac key in bytes.
	KeySize = 16

	// NonceSize is the length of a LeMac nonce in bytes.
	NonceSize = 16

	// TagSize is the length of a LeMac tag in bytes.
	TagSize = 16

	// BlockSize is the message block length in bytes. Inputs are absorbed 64 bytes at a time, as
	// four 128-bit lanes.
	BlockSize = 64
)

// ErrInvalidKeyLength is returned when a key is not exactly KeySize bytes.
var ErrInvalidKeyLength = errors.New("lemac: invalid key length")

const (
	numS            = 9  // 128-bit words in the S state
	numSubkeys      = 18 // context subkeys, used as nine overlapping round-key windows
	finalZeroBlocks = 4  // all-zero blocks absorbed during finalization
)

// context holds the key-derived tables: the initial S state, the eighteen subkeys consumed by the
// tag output, and the two secondary AES key schedules. It is computed once at construction and
// never modified afterwards.
type context struct {
	init    [numS][16]byte
	subkeys [numSubkeys][16]byte
	k2, k3  cipher.Block
}

// comboState is the state that evolves as message blocks are absorbed: nine 128-bit S words and
// the four-word R shift register. The assembly absorption loop loads and stores it as a single
// 208-byte region, so the field order and the absence of padding are load-bearing.
type comboState struct {
	s  [numS][16]byte
	rr [16]byte
	r0 [16]byte
	r1 [16]byte
	r2 [16]byte
}

// A Hasher computes LeMac tags over a stream of input. The zero value is not usable; construct one
// with New or NewDefault.
//
// Hasher instances are not concurrent-safe, with one exception: Oneshot does not touch the
// absorption state, so multiple goroutines may call Oneshot on a shared Hasher as long as none of
// them uses the mutating methods.
type Hasher struct {
	ctx     context
	state   comboState
	buf     [BlockSize]byte
	bufsize int
}

// New returns a Hasher keyed with the given 16-byte key. It returns ErrInvalidKeyLength if the key
// is any other length.
func New(key []byte) (*Hasher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	h := new(Hasher)
	h.ctx.expand(key)
	h.Reset()
	return h, nil
}

// NewDefault returns a Hasher keyed with the all-zero key.
func NewDefault() *Hasher {
	h, _ := New(make([]byte, KeySize))
	return h
}

// Sum computes the LeMac tag of msg under the given key and nonce. A nil nonce is treated as all
// zeros.
//
// Sum derives a fresh key context on every call. When tagging many messages under the same key,
// construct a Hasher once and use Oneshot instead; key expansion dominates for short inputs.
func Sum(key, nonce, msg []byte) ([TagSize]byte, error) {
	h, err := New(key)
	if err != nil {
		return [TagSize]byte{}, err
	}
	return h.Oneshot(msg, nonce), nil
}

// Update absorbs p into the hasher. The resulting tag depends only on the concatenation of all
// updated input, not on how it was split across calls.
func (h *Hasher) Update(p []byte) {
	if h.bufsize > 0 {
		n := copy(h.buf[h.bufsize:], p)
		h.bufsize += n
		p = p[n:]
		if h.bufsize < BlockSize {
			return
		}
		absorbBlocks(&h.state, h.buf[:])
		h.bufsize = 0
	}

	if n := len(p) &^ (BlockSize - 1); n > 0 {
		absorbBlocks(&h.state, p[:n])
		p = p[n:]
	}

	if len(p) > 0 {
		h.bufsize = copy(h.buf[:], p)
	}
}

// Write absorbs p into the hasher, implementing io.Writer. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Finalize mixes the nonce into the absorbed state and returns the 16-byte tag. A nil nonce is
// treated as all zeros; any other length than NonceSize panics.
//
// Finalize leaves the absorption state unspecified. Call Reset before reusing the hasher.
func (h *Hasher) Finalize(nonce []byte) [TagSize]byte {
	var tag [TagSize]byte
	h.FinalizeTo(nonce, &tag)
	return tag
}

// FinalizeTo mixes the nonce into the absorbed state and writes the 16-byte tag into tag. A nil
// nonce is treated as all zeros; any other length than NonceSize panics.
//
// FinalizeTo leaves the absorption state unspecified. Call Reset before reusing the hasher.
func (h *Hasher) FinalizeTo(nonce []byte, tag *[TagSize]byte) {
	h.buf[h.bufsize] = 0x01
	clear(h.buf[h.bufsize+1:])
	absorbBlocks(&h.state, h.buf[:])
	absorbZeroBlocks(&h.state)
	h.ctx.tail(&h.state.s, nonceWord(nonce), tag)
}

// Oneshot computes the tag of data under the given nonce, producing the same bytes as Reset,
// Update, and Finalize on a fresh hasher with the same key. It runs on stack-local state and does
// not modify the hasher. A nil nonce is treated as all zeros.
func (h *Hasher) Oneshot(data, nonce []byte) [TagSize]byte {
	st := comboState{s: h.ctx.init}

	if n := len(data) &^ (BlockSize - 1); n > 0 {
		absorbBlocks(&st, data[:n])
		data = data[n:]
	}

	var buf [BlockSize]byte
	n := copy(buf[:], data)
	buf[n] = 0x01
	absorbBlocks(&st, buf[:])
	absorbZeroBlocks(&st)

	var tag [TagSize]byte
	h.ctx.tail(&st.s, nonceWord(nonce), &tag)
	return tag
}

// Reset restores the absorption state to its post-construction value, as if no input had been
// absorbed. The key context is unaffected.
func (h *Hasher) Reset() {
	h.state = comboState{s: h.ctx.init}
	h.bufsize = 0
}

// Clone returns an independent copy of the hasher with the same key context and the current
// absorption state. Subsequent operations on the copy and the original do not affect each other.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// expand derives the context tables from a 16-byte key: nine init words and eighteen subkeys are
// AES encryptions of the little-endian block counters 0..26, and the two secondary schedules are
// expanded from the encryptions of counters 27 and 28.
func (c *context) expand(key []byte) {
	kc := mustCipher(key)

	var w [16]byte
	for i := range c.init {
		binary.LittleEndian.PutUint64(w[:8], uint64(i))
		kc.Encrypt(c.init[i][:], w[:])
	}
	for i := range c.subkeys {
		binary.LittleEndian.PutUint64(w[:8], uint64(numS+i))
		kc.Encrypt(c.subkeys[i][:], w[:])
	}

	var root [16]byte
	binary.LittleEndian.PutUint64(w[:8], uint64(numS+numSubkeys))
	kc.Encrypt(root[:], w[:])
	c.k2 = mustCipher(root[:])

	binary.LittleEndian.PutUint64(w[:8], uint64(numS+numSubkeys+1))
	kc.Encrypt(root[:], w[:])
	c.k3 = mustCipher(root[:])
}

// tail combines the nonce and the final S state into the tag.
func (c *context) tail(s *[numS][16]byte, n [16]byte, tag *[TagSize]byte) {
	var t [16]byte
	c.k2.Encrypt(t[:], n[:])
	t = xor16(t, n)
	for i := range s {
		t = xor16(t, aesModified(c.subkeys[i:i+10], s[i]))
	}
	c.k3.Encrypt(tag[:], t[:])
}

// aesModified is the modified AES-128 used only in the tag output: ten rounds keyed by consecutive
// context subkeys, where the last round keeps MixColumns and uses a zero round key instead of the
// standard final round.
func aesModified(keys [][16]byte, x [16]byte) [16]byte {
	x = xor16(x, keys[0])
	for _, k := range keys[1:10] {
		x = aesni.AESENC(x, k)
	}
	return aesni.AESENC(x, [16]byte{})
}

// nonceWord loads a nonce as a single 128-bit word. nil means all zeros.
func nonceWord(nonce []byte) [16]byte {
	if nonce == nil {
		return [16]byte{}
	}
	if len(nonce) != NonceSize {
		panic("lemac: invalid nonce length")
	}
	return [16]byte(nonce)
}

func mustCipher(key []byte) cipher.Block {
	b, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	return b
}

func xor16(a, b [16]byte) [16]byte {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}

// zeroPad backs the four all-zero finalization blocks on the assembly path.
var zeroPad [finalZeroBlocks * BlockSize]byte //nolint:gochecknoglobals // read-only
