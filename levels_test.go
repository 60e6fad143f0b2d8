package intlevels

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentroids(t *testing.T) {
	test := []struct {
		name string
		data []int
		k    int
		opts []Option
		want []int
	}{
		{"three clusters", []int{1, 2, 3, 10, 11, 12, 20, 21, 22}, 3, nil, []int{2, 11, 21}},
		{"four clusters", []int{1, 2, 3, 10, 11, 12, 20, 21, 22, 30, 31, 32}, 4, nil, []int{2, 11, 21, 31}},
		{"ties", []int{5, 5, 5, 5}, 2, nil, []int{5, 5}},
		{"one cluster", []int{1, 2, 3, 4}, 1, nil, []int{3}},
		{"one per sample", []int{-7, 0, 9}, 3, nil, []int{-7, 0, 9}},
		{"sort check passes", []int{1, 2, 3, 10, 11, 12, 20, 21, 22}, 3, []Option{WithSortCheck()}, []int{2, 11, 21}},
		{"limit", []int{0, 3, 9, 27, 81}, 3, []Option{WithIterationLimit(1)}, []int{2, 18, 81}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.data)
			got, err := Centroids(data, tt.k, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.data, data, "input must not be modified")
		})
	}
}

func TestCentroidsErrors(t *testing.T) {
	test := []struct {
		name    string
		data    []int16
		k       int
		opts    []Option
		wantErr error
	}{
		{"empty", nil, 1, nil, ErrInvalidArgument},
		{"zero clusters", []int16{1}, 0, nil, ErrInvalidArgument},
		{"too many clusters", []int16{1, 2}, 3, nil, ErrInvalidArgument},
		{"zero limit", []int16{1, 2}, 1, []Option{WithIterationLimit(0)}, ErrInvalidArgument},
		{"unsorted", []int16{1, 3, 2}, 2, []Option{WithSortCheck()}, ErrUnsorted},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Centroids(tt.data, tt.k, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}

	t.Run("unsorted is an invalid argument", func(t *testing.T) {
		_, err := Centroids([]int{2, 1}, 1, WithSortCheck())
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "index 1")
	})
}

func TestFit(t *testing.T) {
	q, err := Fit([]uint16{100, 101, 102, 103, 200, 201, 202}, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{102, 201}, q.Levels())
	assert.Equal(t, []int{0, 0, 1, 1}, q.Quantize([]uint16{0, 151, 152, 65535}))

	_, err = Fit([]uint16{1}, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
