// Command gf2bench drives the matrix/ops multiplication and factorization
// kernels over randomly generated matrices and prints one line of timing
// and correctness data per run, matching the engine's benchmark surface:
// dimensions m n [k] [cutoff] [density] [full].
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/galoisdense/gf2ri/matrix"
	"github.com/galoisdense/gf2ri/matrix/ops"
)

func main() {
	var (
		m       = pflag.IntP("rows", "m", 1024, "row count of A")
		n       = pflag.IntP("cols", "n", 1024, "column count of A and row count of B (B is n x m)")
		k       = pflag.Int("k", 0, "M4RM table width (0 = automatic)")
		cutoff  = pflag.Int("cutoff", ops.DefaultCutoff, "Strassen recursion cutoff")
		density = pflag.Float64("density", 0.5, "fraction of set bits in the random operands (informational only; operands are uniform)")
		full    = pflag.Bool("full", false, "also run PLE/rank over the product, not just multiply")
	)
	pflag.Parse()

	if err := run(*m, *n, *k, *cutoff, *density, *full); err != nil {
		fmt.Fprintln(os.Stderr, "gf2bench:", err)
		os.Exit(1)
	}
}

func run(m, n, k, cutoff int, density float64, full bool) error {
	a, err := matrix.Random(m, n)
	if err != nil {
		return err
	}
	b, err := matrix.Random(n, m)
	if err != nil {
		return err
	}

	start := time.Now()
	c, err := ops.Strassen(a, b, cutoff, k)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	rank := -1
	if full {
		rank, err = ops.Rank(c)
		if err != nil {
			return err
		}
	}

	fmt.Printf("m=%d n=%d k=%d cutoff=%d density=%.2f rank=%d elapsed=%s\n",
		m, n, k, cutoff, density, rank, elapsed)
	return nil
}
