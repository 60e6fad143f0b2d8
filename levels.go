// Package intlevels reduces a distribution of integers to a few
// representative levels with a one-dimensional k-means.
//
// Centroids works on sorted samples and returns k levels in non-decreasing
// order, each one the rounded mean of a contiguous run of samples. A
// Quantizer then maps values to the nearest level and packs level indices
// into a compact bit stream.
package intlevels

import (
	"fmt"

	"github.com/yyyoichi/intlevels/internal/kmeans"
)

type (
	// Integer is the set of sample types accepted by Centroids. Every value
	// converts to int64 without loss, so uint, uint64 and uintptr are not
	// included.
	Integer = kmeans.Integer
)

var (
	ErrInvalidArgument = kmeans.ErrInvalidArgument
	ErrOutOfRange      = kmeans.ErrOutOfRange
	ErrUnsorted        = fmt.Errorf("%w: samples not sorted", kmeans.ErrInvalidArgument)
)

// Centroids returns k centroids of data in non-decreasing order.
//
// data must be sorted in non-decreasing order and hold at least k samples;
// it is not modified. The iteration stops when no centroid moves or after
// 2*bits.Len(len(data)) passes, whichever comes first. Each centroid is the
// mean of its cluster rounded half away from zero.
//
// Invalid arguments are reported with ErrInvalidArgument. ErrOutOfRange is
// returned when a centroid cannot be represented by T.
func Centroids[T Integer](data []T, k int, opts ...Option) ([]T, error) {
	c, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if c.checkSorted {
		if err := checkSorted(data); err != nil {
			return nil, err
		}
	}
	limit := c.limit
	if limit == 0 {
		limit = kmeans.DefaultLimit(len(data))
	}
	return kmeans.Solve(data, k, limit)
}

// Fit computes k centroids of data and returns a Quantizer over them.
func Fit[T Integer](data []T, k int, opts ...Option) (*Quantizer[T], error) {
	levels, err := Centroids(data, k, opts...)
	if err != nil {
		return nil, err
	}
	return NewQuantizer(levels)
}

func checkSorted[T Integer](data []T) error {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return fmt.Errorf("%w: index %d (%d < %d)", ErrUnsorted, i, data[i], data[i-1])
		}
	}
	return nil
}
