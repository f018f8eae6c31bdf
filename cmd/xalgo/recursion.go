package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/recursion"
)

func newFactorialCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factorial N",
		Short: "N! for 0 <= N <= 20",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return infra.WrapErrorStackWithMessage(err, "[xalgo] factorial input is not an integer")
		}
		res, err := recursion.Factorial(n)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmdCtx.out, res)
		return err
	})
	return cmd
}

func newCountdownCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countdown N",
		Short: "Print N down to the base case 0",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return infra.WrapErrorStackWithMessage(err, "[xalgo] countdown input is not an integer")
		}
		visited := make([]int, 0, max(n, 0)+1)
		recursion.Countdown(n, func(i int) {
			visited = append(visited, i)
		})
		_, err = fmt.Fprintln(cmdCtx.out, joinValues(visited))
		return err
	})
	return cmd
}

func newGreetCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet NAME",
		Short: "Walk through the greet call stack",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		return recursion.Greet(cmdCtx.out, args[0])
	})
	return cmd
}
