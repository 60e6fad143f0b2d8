package kmeans

import "math/bits"

// cluster is a half-open index range [low, high) of the sorted samples with
// the running sum of the values inside it.
//
// The sum is held as a 128-bit two's complement value. Samples of 32 bits or
// less never touch the upper word; int64 samples may.
type cluster struct {
	low, high int
	hi        int64
	lo        uint64
}

func (c *cluster) add(v int64) {
	var carry uint64
	c.lo, carry = bits.Add64(c.lo, uint64(v), 0)
	c.hi += v>>63 + int64(carry)
}

func (c *cluster) sub(v int64) {
	var borrow uint64
	c.lo, borrow = bits.Sub64(c.lo, uint64(v), 0)
	c.hi -= v>>63 + int64(borrow)
}

func (c *cluster) count() int { return c.high - c.low }

// mean returns the sum divided by the count, rounded half away from zero.
// The count must be positive.
func (c *cluster) mean() int64 {
	count := uint64(c.count())
	neg := c.hi < 0
	hi, lo := uint64(c.hi), c.lo
	if neg {
		// two's complement negate of the 128-bit value
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}
	var carry uint64
	lo, carry = bits.Add64(lo, count>>1, 0)
	hi += carry
	// |sum| < count * 2^63, so hi < count and Div64 cannot panic.
	q, _ := bits.Div64(hi, lo, count)
	if neg {
		return -int64(q)
	}
	return int64(q)
}
