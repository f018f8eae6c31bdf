package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/sorts"
)

const (
	keySortAlgo    = "sort.algo"
	keySortPivot   = "sort.pivot"
	keySortStrings = "sort.strings"
)

func sortValues[E infra.OrderedKey](algo string, pivot sorts.PivotPolicy, s []E) ([]E, error) {
	switch algo {
	case "selection":
		return sorts.SelectionSort(s), nil
	case "quick":
		return sorts.QuickSortE(s, sorts.WithPivotPolicy(pivot))
	default:
	}
	return nil, infra.NewErrorStack("[xalgo] unknown sort algorithm: " + algo)
}

func newSortCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort n1 n2 ...",
		Short: "Sort the arguments in ascending order",
	}

	f := cmd.Flags()
	f.String("algo", "quick", "Sort algorithm: selection|quick")
	f.String("pivot", "first", "Quick sort pivot policy: first|middle|median3|random")
	f.Bool("strings", false, "Sort the arguments as strings instead of integers")

	// Lookups
	_ = cmdCtx.v.BindPFlag(keySortAlgo, f.Lookup("algo"))
	_ = cmdCtx.v.BindPFlag(keySortPivot, f.Lookup("pivot"))
	_ = cmdCtx.v.BindPFlag(keySortStrings, f.Lookup("strings"))

	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		pivot, err := sorts.ParsePivotPolicy(cmdCtx.v.GetString(keySortPivot))
		if err != nil {
			return err
		}
		algo := cmdCtx.v.GetString(keySortAlgo)
		var line string
		if cmdCtx.v.GetBool(keySortStrings) {
			res, err := sortValues(algo, pivot, append([]string{}, args...))
			if err != nil {
				return err
			}
			line = joinValues(res)
		} else {
			s, err := parseInts(args)
			if err != nil {
				return err
			}
			res, err := sortValues(algo, pivot, s)
			if err != nil {
				return err
			}
			line = joinValues(res)
		}
		_, err = fmt.Fprintln(cmdCtx.out, line)
		return err
	})
	return cmd
}
