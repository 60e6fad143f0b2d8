// Package bitpack stores small non-negative integers as fixed-width bit
// fields in a []uint64 stream.
package bitpack

import (
	"math/bits"

	"github.com/yyyoichi/bitstream-go"
)

// Width returns the number of bits needed for indices in [0, levels).
// It is at least 1.
func Width(levels int) int {
	if levels <= 2 {
		return 1
	}
	return bits.Len(uint(levels - 1))
}

// Pack writes each value as a width-bit field, most significant bit first.
// Only the low width bits of a value are kept.
// It returns the packed words and the number of bits written.
func Pack(values []int, width int) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range values {
		for b := width - 1; b >= 0; b-- {
			w.WriteBool((v>>b)&1 == 1)
		}
	}
	return w.Data(), w.Bits()
}

// Unpack reads the width-bit fields written by Pack from the first size
// bits of data.
func Unpack(data []uint64, size int, width int) []int {
	if width < 1 {
		return nil
	}
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(size)
	values := make([]int, size/width)
	for i := range values {
		var v int
		for b := range width {
			bit, _ := r.ReadBitAt(i*width + b)
			v <<= 1
			if bit {
				v |= 1
			}
		}
		values[i] = v
	}
	return values
}
