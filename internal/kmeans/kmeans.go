package kmeans

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("value out of range")
)

// Integer is the set of sample types whose values convert to int64 without
// loss.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// DefaultLimit returns the iteration cap used for n samples.
func DefaultLimit(n int) int {
	return 2 * bits.Len(uint(n))
}

// Solve returns k centroids of data in non-decreasing order.
//
// data must be sorted in non-decreasing order and 1 <= k <= len(data).
// At most limit passes are run; the loop stops earlier once no centroid
// changes. A centroid is the mean of its cluster rounded half away from zero.
func Solve[T Integer](data []T, k int, limit int) ([]T, error) {
	n := len(data)
	switch {
	case n == 0:
		return nil, fmt.Errorf("%w: no samples", ErrInvalidArgument)
	case k < 1 || k > n:
		return nil, fmt.Errorf("%w: cluster count %d not in [1, %d]", ErrInvalidArgument, k, n)
	case limit < 0:
		return nil, fmt.Errorf("%w: negative iteration limit %d", ErrInvalidArgument, limit)
	}

	clusters := make([]cluster, k)
	centroids := make([]int64, k)
	for i := range clusters {
		at := 0
		if k > 1 {
			at = i * (n - 1) / (k - 1)
		}
		clusters[i].low, clusters[i].high = at, at
		centroids[i] = int64(data[at])
	}
	last := &clusters[k-1]
	for _, v := range data[last.low:] {
		last.add(int64(v))
	}
	last.high = n

	for range limit {
		for i := range k - 1 {
			threshold := Threshold(centroids[i], centroids[i+1])
			lower, upper := &clusters[i], &clusters[i+1]

			// samples below the threshold belong to the lower cluster
			for lower.high > 0 && int64(data[lower.high-1]) >= threshold {
				lower.high--
				lower.sub(int64(data[lower.high]))
			}
			for lower.high < n && int64(data[lower.high]) < threshold {
				lower.add(int64(data[lower.high]))
				lower.high++
			}

			for upper.low < n && int64(data[upper.low]) < threshold {
				upper.sub(int64(data[upper.low]))
				upper.low++
			}
			for upper.low > 0 && int64(data[upper.low-1]) >= threshold {
				upper.low--
				upper.add(int64(data[upper.low]))
			}
		}

		changed := false
		for i := range clusters {
			if clusters[i].count() <= 0 {
				continue
			}
			c := clusters[i].mean()
			changed = changed || c != centroids[i]
			centroids[i] = c
		}
		if !changed {
			break
		}
	}

	result := make([]T, k)
	for i, c := range centroids {
		v, err := narrow[T](c)
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", i, err)
		}
		result[i] = v
	}
	return result, nil
}

// narrow converts v to T, failing when T cannot represent it.
func narrow[T Integer](v int64) (T, error) {
	t := T(v)
	if int64(t) != v {
		return 0, fmt.Errorf("%w: %d does not fit in %T", ErrOutOfRange, v, t)
	}
	return t, nil
}

// Threshold returns the boundary between two adjacent centroids a <= b,
// ceil((a+b)/2), computed without overflowing int64. Samples below it are
// closer to a; samples at or above it belong to b.
func Threshold(a, b int64) int64 {
	return a>>1 + b>>1 + (a|b)&1
}
