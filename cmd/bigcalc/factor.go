package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	bigmath "github.com/deveel/deveel-math-sub001"
	"github.com/deveel/deveel-math-sub001/primes"
)

var factorCmd = &cobra.Command{
	Use:   "factor <n>",
	Short: "Print the prime factorization of a positive integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := bigmath.ParseInt(args[0], 10)
		if err != nil {
			return err
		}
		fs, err := primes.Factorize(x, nil)
		if err != nil {
			return err
		}
		if len(fs) == 0 {
			resultColor.Println("1")
			return nil
		}
		parts := make([]string, len(fs))
		for i, f := range fs {
			parts[i] = f.Prime.String()
			if f.Exponent > 1 {
				parts[i] += "^" + strconv.Itoa(f.Exponent)
			}
		}
		resultColor.Println(strings.Join(parts, " * "))
		return nil
	},
}
