package main

import (
	"strconv"

	"github.com/spf13/cobra"

	bigmath "github.com/deveel/deveel-math-sub001"
)

var decCmd = &cobra.Command{
	Use:   "dec",
	Short: "Scale-aware decimal operations",
}

func init() {
	decCmd.AddCommand(decAddCmd)
	decCmd.AddCommand(decMulCmd)
	decCmd.AddCommand(decDivCmd)
	decCmd.AddCommand(decRoundCmd)
	decCmd.AddCommand(decSetScaleCmd)
	decCmd.AddCommand(decStripCmd)
}

func decArgs(args []string) ([]bigmath.Decimal, error) {
	ds := make([]bigmath.Decimal, len(args))
	for i, a := range args {
		d, err := bigmath.ParseDecimal(a)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

var decAddCmd = &cobra.Command{
	Use:   "add <x> <y>",
	Short: "Print x + y rounded to the configured context",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args)
		if err != nil {
			return err
		}
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		z, err := ds[0].AddCtx(ds[1], ctx)
		if err != nil {
			return err
		}
		resultColor.Println(z)
		return nil
	},
}

var decMulCmd = &cobra.Command{
	Use:   "mul <x> <y>",
	Short: "Print x * y rounded to the configured context",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args)
		if err != nil {
			return err
		}
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		z, err := ds[0].MulCtx(ds[1], ctx)
		if err != nil {
			return err
		}
		resultColor.Println(z)
		return nil
	},
}

var decDivCmd = &cobra.Command{
	Use:   "div <x> <y>",
	Short: "Print x / y under the configured context (exact when precision is 0)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args)
		if err != nil {
			return err
		}
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		z, err := ds[0].DivCtx(ds[1], ctx)
		if err != nil {
			return err
		}
		resultColor.Println(z)
		return nil
	},
}

var decRoundCmd = &cobra.Command{
	Use:   "round <x>",
	Short: "Print x rounded to the configured context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args)
		if err != nil {
			return err
		}
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		z, err := ds[0].Round(ctx)
		if err != nil {
			return err
		}
		resultColor.Println(z)
		return nil
	},
}

var decSetScaleCmd = &cobra.Command{
	Use:   "setscale <x> <scale>",
	Short: "Print x rescaled to the given scale with the configured rounding mode",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args[:1])
		if err != nil {
			return err
		}
		scale, err := strconv.Atoi(args[1])
		if err != nil {
			return bigmath.ErrInvalidFormat.New("scale %q", args[1])
		}
		ctx, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		z, err := ds[0].SetScale(scale, ctx.Rounding)
		if err != nil {
			return err
		}
		resultColor.Println(z)
		return nil
	},
}

var decStripCmd = &cobra.Command{
	Use:   "strip <x>",
	Short: "Print x with trailing zeros removed from the coefficient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := decArgs(args)
		if err != nil {
			return err
		}
		resultColor.Println(ds[0].StripTrailingZeros())
		return nil
	},
}
