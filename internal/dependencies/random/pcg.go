package random

import (
	"encoding/binary"
	"math/bits"
)

// DefaultSeed is the seed the letter search uses unless configured otherwise
const DefaultSeed uint64 = 2

// 128-bit LCG multiplier, split into 64-bit halves
const (
	pcgMulHi = 0x2360ed051fc65da4
	pcgMulLo = 0x4385df649fccf645
)

// Constants of the 32-bit PCG used to expand a u64 seed into 32 seed bytes
const (
	seedMul = 6364136223846793005
	seedInc = 11634580027462260723
)

// PCG64 is a 128-bit LCG with XSL-RR output. Seeding and range reduction
// match the widely used Rust rand_pcg/rand crates so sequences are
// reproducible across implementations.
type PCG64 struct {
	hi, lo       uint64 // state
	incHi, incLo uint64 // increment, always odd
}

// NewPCG64 creates a generator deterministically seeded from seed
func NewPCG64(seed uint64) *PCG64 {
	var buf [32]byte
	s := seed
	for i := 0; i < 8; i++ {
		s = s*seedMul + seedInc
		xorshifted := uint32(((s >> 18) ^ s) >> 27)
		rot := int(s >> 59)
		binary.LittleEndian.PutUint32(buf[i*4:], bits.RotateLeft32(xorshifted, -rot))
	}

	p := &PCG64{
		lo:    binary.LittleEndian.Uint64(buf[0:8]),
		hi:    binary.LittleEndian.Uint64(buf[8:16]),
		incLo: binary.LittleEndian.Uint64(buf[16:24]) | 1,
		incHi: binary.LittleEndian.Uint64(buf[24:32]),
	}

	var carry uint64
	p.lo, carry = bits.Add64(p.lo, p.incLo, 0)
	p.hi, _ = bits.Add64(p.hi, p.incHi, carry)
	p.step()
	return p
}

// Seeded returns a Factory producing generators that all start from seed
func Seeded(seed uint64) Factory {
	return func() Random {
		return NewPCG64(seed)
	}
}

func (p *PCG64) step() {
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi*pcgMulLo + p.lo*pcgMulHi

	var carry uint64
	lo, carry = bits.Add64(lo, p.incLo, 0)
	hi, _ = bits.Add64(hi, p.incHi, carry)
	p.hi, p.lo = hi, lo
}

// Uint64 advances the generator and returns the next output
func (p *PCG64) Uint64() uint64 {
	p.step()
	rot := int(p.hi >> 58)
	return bits.RotateLeft64(p.hi^p.lo, -rot)
}

// Intn returns an int in [0, n) using widening-multiply rejection sampling
func (p *PCG64) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r := uint64(n)
	zone := (r << bits.LeadingZeros64(r)) - 1
	for {
		hi, lo := bits.Mul64(p.Uint64(), r)
		if lo <= zone {
			return int(hi)
		}
	}
}

// String generates a string of the given length from the given alphabet
func (p *PCG64) String(length int, alphabet string) string {
	return randomString(p, length, alphabet)
}

var _ Random = (*PCG64)(nil)
