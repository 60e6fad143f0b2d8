package intlevels

import "fmt"

type Option func(*config) error

type config struct {
	limit       int
	checkSorted bool
}

func newConfig(opts ...Option) (*config, error) {
	c := new(config)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithIterationLimit caps the number of refinement passes at n instead of
// the default 2*bits.Len(len(data)).
// A lower cap trades accuracy for speed on large inputs. n must be positive.
func WithIterationLimit(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: iteration limit %d", ErrInvalidArgument, n)
		}
		c.limit = n
		return nil
	}
}

// WithSortCheck verifies that the samples are sorted before clustering and
// reports ErrUnsorted otherwise. Without it unsorted input yields
// meaningless centroids.
func WithSortCheck() Option {
	return func(c *config) error {
		c.checkSorted = true
		return nil
	}
}
