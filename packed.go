package intlevels

import (
	"fmt"

	"github.com/yyyoichi/intlevels/internal/bitpack"
)

// Packed holds level indices as fixed-width bit fields.
type Packed struct {
	Words []uint64
	// Bits is the number of valid bits in Words.
	Bits int
	// Width is the number of bits per index.
	Width int
	// Count is the number of packed indices.
	Count int
}

// Pack quantizes data and packs the level indices using the fewest bits
// that can address every level.
func (q *Quantizer[T]) Pack(data []T) *Packed {
	width := bitpack.Width(q.Len())
	words, size := bitpack.Pack(q.Quantize(data), width)
	return &Packed{
		Words: words,
		Bits:  size,
		Width: width,
		Count: len(data),
	}
}

// Unpack restores the quantized values from p. p must have been packed by a
// Quantizer with the same number of levels.
func (q *Quantizer[T]) Unpack(p *Packed) ([]T, error) {
	switch {
	case p == nil:
		return nil, fmt.Errorf("%w: nil packed data", ErrInvalidArgument)
	case p.Width != bitpack.Width(q.Len()):
		return nil, fmt.Errorf("%w: width %d, want %d for %d levels", ErrInvalidArgument, p.Width, bitpack.Width(q.Len()), q.Len())
	case p.Count < 0 || p.Bits != p.Width*p.Count:
		return nil, fmt.Errorf("%w: %d bits for %d indices of width %d", ErrInvalidArgument, p.Bits, p.Count, p.Width)
	case len(p.Words)*64 < p.Bits:
		return nil, fmt.Errorf("%w: %d words hold fewer than %d bits", ErrInvalidArgument, len(p.Words), p.Bits)
	}
	return q.Dequantize(bitpack.Unpack(p.Words, p.Bits, p.Width))
}
