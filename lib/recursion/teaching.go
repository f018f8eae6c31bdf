package recursion

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"

	"github.com/benz9527/xalgo/lib/infra"
)

var (
	ErrNegativeInput     = errors.New("negative input")
	ErrFactorialOverflow = errors.New("factorial overflows uint64")
)

// MaxFactorialInput is the largest n whose factorial fits in uint64.
const MaxFactorialInput = 20

// Countdown visits i, i-1, ... until the base case i <= 0 and returns
// the value it stopped at. So a positive input returns 0 and a
// non-positive one returns itself.
func Countdown(i int, visit func(i int)) int {
	if visit != nil {
		visit(i)
	}
	if i <= 0 {
		return i
	}
	return Countdown(i-1, visit)
}

// Greet pushes a second frame on top of itself, lets it return,
// then calls bye.
func Greet(w io.Writer, name string) error {
	var merr error
	_, err := fmt.Fprintf(w, "hello %s!\n", name)
	merr = multierr.Append(merr, err)
	merr = multierr.Append(merr, secondGreet(w, name))
	_, err = io.WriteString(w, "getting ready to say bye...\n")
	merr = multierr.Append(merr, err)
	merr = multierr.Append(merr, bye(w))
	return infra.WrapErrorStackWithMessage(merr, "[recursion] greet failed")
}

func secondGreet(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "how are you, %s?\n", name)
	return err
}

func bye(w io.Writer) error {
	_, err := io.WriteString(w, "ok bye!\n")
	return err
}

// Factorial rejects the inputs having no uint64 answer.
func Factorial(n int64) (uint64, error) {
	if n < 0 {
		return 0, infra.WrapErrorStackWithMessage(ErrNegativeInput, fmt.Sprintf("[recursion] factorial(%d)", n))
	}
	if n > MaxFactorialInput {
		return 0, infra.WrapErrorStackWithMessage(ErrFactorialOverflow, fmt.Sprintf("[recursion] factorial(%d)", n))
	}
	return factorial(uint64(n)), nil
}

func factorial(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	return factorial(n-1) * n
}
