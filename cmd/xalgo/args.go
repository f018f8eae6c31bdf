package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/infra"
)

// parseInts reports every malformed argument at once.
func parseInts(args []string) ([]int, error) {
	var merr error
	res := lo.FilterMap(args, func(arg string, i int) (int, bool) {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			merr = multierr.Append(merr, fmt.Errorf("argument %d %q is not an integer", i, arg))
			return 0, false
		}
		return n, true
	})
	if merr != nil {
		return nil, infra.WrapErrorStackWithMessage(merr, "[xalgo] invalid integer arguments")
	}
	return res, nil
}

func joinValues[E any](s []E) string {
	return strings.Join(lo.Map(s, func(e E, _ int) string {
		return fmt.Sprint(e)
	}), " ")
}

func xlogCommandField(cmd *cobra.Command) zap.Field {
	return zap.String("command", cmd.CommandPath())
}
