// Command intlevels reads integers and prints k representative levels.
//
//	intlevels -k 4 costs.txt
//	cat rates.txt | intlevels -k 8 -quantize
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yyyoichi/intlevels"
)

type options struct {
	k        int
	limit    int
	quantize bool
}

func main() {
	var opts options
	flag.IntVar(&opts.k, "k", 4, "number of levels")
	flag.IntVar(&opts.limit, "limit", 0, "maximum refinement passes (0 uses the default)")
	flag.BoolVar(&opts.quantize, "quantize", false, "print the level index of every input value instead of the levels")
	flag.Parse()

	var inputs []io.Reader
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer f.Close()
		inputs = append(inputs, f)
	}
	if len(inputs) == 0 {
		inputs = append(inputs, os.Stdin)
	}

	if err := run(io.MultiReader(inputs...), os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

func run(r io.Reader, w io.Writer, opts options) error {
	values, err := readValues(r)
	if err != nil {
		return err
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var fitOpts []intlevels.Option
	if opts.limit > 0 {
		fitOpts = append(fitOpts, intlevels.WithIterationLimit(opts.limit))
	}
	q, err := intlevels.Fit(sorted, opts.k, fitOpts...)
	if err != nil {
		return fmt.Errorf("fit %d levels to %d values: %w", opts.k, len(values), err)
	}
	log.Printf("%d values, %d levels, distortion %.3f", len(values), q.Len(), q.Distortion(values))

	if opts.quantize {
		_, err = fmt.Fprintln(w, join(q.Quantize(values)))
		return err
	}
	_, err = fmt.Fprintln(w, join(q.Levels()))
	return err
}

func readValues(r io.Reader) ([]int64, error) {
	var values []int64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse value %d: %w", len(values)+1, err)
		}
		values = append(values, v)
	}
	return values, sc.Err()
}

func join[T int | int64](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, " ")
}
