package intlevels

import (
	"fmt"
	"slices"
	"sort"

	"github.com/yyyoichi/intlevels/internal/kmeans"
	"gonum.org/v1/gonum/stat"
)

// Quantizer maps values to the nearest of a fixed set of levels.
//
// A value exactly between two levels maps to the upper one, the same rule
// Centroids uses to assign samples to clusters.
type Quantizer[T Integer] struct {
	levels     []T
	thresholds []int64
}

// NewQuantizer returns a Quantizer over levels, which must be non-empty and
// sorted in non-decreasing order. The slice is copied.
func NewQuantizer[T Integer](levels []T) (*Quantizer[T], error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidArgument)
	}
	if err := checkSorted(levels); err != nil {
		return nil, err
	}
	q := &Quantizer[T]{
		levels:     slices.Clone(levels),
		thresholds: make([]int64, len(levels)-1),
	}
	for i := range q.thresholds {
		q.thresholds[i] = kmeans.Threshold(int64(levels[i]), int64(levels[i+1]))
	}
	return q, nil
}

// Len returns the number of levels.
func (q *Quantizer[T]) Len() int { return len(q.levels) }

// Levels returns a copy of the levels.
func (q *Quantizer[T]) Levels() []T { return slices.Clone(q.levels) }

// Level returns the i-th level. It panics if i is out of range.
func (q *Quantizer[T]) Level(i int) T { return q.levels[i] }

// Index returns the index of the level nearest to v.
func (q *Quantizer[T]) Index(v T) int {
	x := int64(v)
	return sort.Search(len(q.thresholds), func(i int) bool {
		return x < q.thresholds[i]
	})
}

// Quantize returns the level index of every value in data.
func (q *Quantizer[T]) Quantize(data []T) []int {
	indices := make([]int, len(data))
	for i, v := range data {
		indices[i] = q.Index(v)
	}
	return indices
}

// Dequantize maps level indices back to level values.
func (q *Quantizer[T]) Dequantize(indices []int) ([]T, error) {
	values := make([]T, len(indices))
	for i, at := range indices {
		if at < 0 || at >= len(q.levels) {
			return nil, fmt.Errorf("%w: level index %d at %d, have %d levels", ErrOutOfRange, at, i, len(q.levels))
		}
		values[i] = q.levels[at]
	}
	return values, nil
}

// Distortion returns the mean squared error between data and its
// quantized values. It is 0 for empty data.
func (q *Quantizer[T]) Distortion(data []T) float64 {
	if len(data) == 0 {
		return 0
	}
	errs := make([]float64, len(data))
	for i, v := range data {
		d := float64(int64(v) - int64(q.levels[q.Index(v)]))
		errs[i] = d * d
	}
	return stat.Mean(errs, nil)
}
