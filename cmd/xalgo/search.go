package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/search"
)

const (
	keySearchAlgo   = "search.algo"
	keySearchTarget = "search.target"
)

func newSearchCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search --target N n1 n2 ...",
		Short: "Search the target among the integer arguments",
		Long:  "Binary searches require ascending input; unsorted input is rejected instead of silently missing.",
	}

	f := cmd.Flags()
	f.String("algo", "binary", "Search algorithm: linear|binary|recursive")
	f.Int("target", 0, "The value to look for")

	// Lookups
	_ = cmdCtx.v.BindPFlag(keySearchAlgo, f.Lookup("algo"))
	_ = cmdCtx.v.BindPFlag(keySearchTarget, f.Lookup("target"))

	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		s, err := parseInts(args)
		if err != nil {
			return err
		}
		target := cmdCtx.v.GetInt(keySearchTarget)
		var (
			idx int
			ok  bool
		)
		switch algo := cmdCtx.v.GetString(keySearchAlgo); algo {
		case "linear":
			idx, ok = search.LinearSearch(s, target)
		case "binary", "recursive":
			if !slices.IsSorted(s) {
				return infra.NewErrorStack("[xalgo] " + algo + " search requires ascending input")
			}
			if algo == "binary" {
				idx, ok = search.BinarySearch(s, target)
			} else {
				idx, ok = search.RecursiveBinarySearch(s, target)
			}
		default:
			return infra.NewErrorStack("[xalgo] unknown search algorithm: " + algo)
		}
		if !ok {
			_, err = fmt.Fprintln(cmdCtx.out, "not found")
			return err
		}
		_, err = fmt.Fprintf(cmdCtx.out, "found at index %d\n", idx)
		return err
	})
	return cmd
}
