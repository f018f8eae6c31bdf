package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benz9527/xalgo/lib/recursion"
)

func newAggCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agg",
		Short: "Recursive aggregates over integer arguments",
	}
	intsRunE := func(fn func(s []int) (string, error)) func(cmd *cobra.Command, args []string) error {
		return cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
			s, err := parseInts(args)
			if err != nil {
				return err
			}
			res, err := fn(s)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmdCtx.out, res)
			return err
		})
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "sum n1 n2 ...",
			Short: "Sum of the arguments, 0 if none",
			RunE: intsRunE(func(s []int) (string, error) {
				return fmt.Sprint(recursion.Sum(s)), nil
			}),
		},
		&cobra.Command{
			Use:   "count n1 n2 ...",
			Short: "Number of the arguments",
			RunE: intsRunE(func(s []int) (string, error) {
				return fmt.Sprint(recursion.Count(s)), nil
			}),
		},
		&cobra.Command{
			Use:   "max n1 n2 ...",
			Short: "Largest argument, absent if none",
			RunE: intsRunE(func(s []int) (string, error) {
				m, ok := recursion.Max(s)
				if !ok {
					return "absent", nil
				}
				return fmt.Sprint(m), nil
			}),
		},
	)
	return cmd
}
