package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	bigmath "github.com/deveel/deveel-math-sub001"
)

var intCmd = &cobra.Command{
	Use:   "int",
	Short: "Arbitrary-precision integer operations",
}

func init() {
	intCmd.PersistentFlags().Int("radix", 10, "radix of integer arguments and results (2-36)")

	intCmd.AddCommand(intAddCmd)
	intCmd.AddCommand(intMulCmd)
	intCmd.AddCommand(intDivRemCmd)
	intCmd.AddCommand(intGcdCmd)
	intCmd.AddCommand(intPowCmd)
	intCmd.AddCommand(intShiftCmd)
	intCmd.AddCommand(intBitsCmd)
}

func intArgs(cmd *cobra.Command, args []string) ([]*bigmath.Int, int, error) {
	radix, _ := cmd.Flags().GetInt("radix")
	xs := make([]*bigmath.Int, len(args))
	for i, a := range args {
		x, err := bigmath.ParseInt(a, radix)
		if err != nil {
			return nil, 0, err
		}
		xs[i] = x
	}
	return xs, radix, nil
}

func printInt(x *bigmath.Int, radix int) error {
	s, err := x.Text(radix)
	if err != nil {
		return err
	}
	resultColor.Println(s)
	return nil
}

var intAddCmd = &cobra.Command{
	Use:   "add <x> <y>",
	Short: "Print x + y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args)
		if err != nil {
			return err
		}
		return printInt(xs[0].Add(xs[1]), radix)
	},
}

var intMulCmd = &cobra.Command{
	Use:   "mul <x> <y>",
	Short: "Print x * y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args)
		if err != nil {
			return err
		}
		return printInt(xs[0].Mul(xs[1]), radix)
	},
}

var intDivRemCmd = &cobra.Command{
	Use:   "divrem <x> <y>",
	Short: "Print the truncated quotient and remainder of x / y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args)
		if err != nil {
			return err
		}
		q, r, err := xs[0].DivRem(xs[1])
		if err != nil {
			return err
		}
		qs, err := q.Text(radix)
		if err != nil {
			return err
		}
		rs, err := r.Text(radix)
		if err != nil {
			return err
		}
		resultColor.Printf("%s r %s\n", qs, rs)
		return nil
	},
}

var intGcdCmd = &cobra.Command{
	Use:   "gcd <x> <y>",
	Short: "Print the greatest common divisor of x and y",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args)
		if err != nil {
			return err
		}
		return printInt(xs[0].Gcd(xs[1]), radix)
	},
}

var intPowCmd = &cobra.Command{
	Use:   "pow <x> <n>",
	Short: "Print x raised to the non-negative power n",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args[:1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return bigmath.ErrInvalidFormat.New("exponent %q", args[1])
		}
		z, err := xs[0].Pow(n)
		if err != nil {
			return err
		}
		return printInt(z, radix)
	},
}

var intShiftCmd = &cobra.Command{
	Use:   "shift <x> <n>",
	Short: "Print x shifted left by n bits (negative n shifts right)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, radix, err := intArgs(cmd, args[:1])
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return bigmath.ErrInvalidFormat.New("shift count %q", args[1])
		}
		return printInt(xs[0].ShiftLeft(n), radix)
	},
}

var intBitsCmd = &cobra.Command{
	Use:   "bits <x>",
	Short: "Print the bit length, bit count and two's-complement bytes of x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xs, _, err := intArgs(cmd, args)
		if err != nil {
			return err
		}
		x := xs[0]
		resultColor.Printf("bitlen=%d bitcount=%d bytes=%s\n",
			x.BitLen(), x.BitCount(), fmt.Sprintf("%x", x.Bytes()))
		return nil
	},
}
