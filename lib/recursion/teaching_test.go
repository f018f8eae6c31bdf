package recursion

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xalgo/lib/infra"
)

func TestCountdown(t *testing.T) {
	visited := make([]int, 0, 16)
	require.Equal(t, 0, Countdown(10, func(i int) {
		visited = append(visited, i)
	}))
	require.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, visited)

	require.Equal(t, -10, Countdown(-10, nil))
	require.Equal(t, 0, Countdown(0, nil))
}

func TestGreet(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Greet(buf, "Churchill"))
	require.Equal(t, "hello Churchill!\n"+
		"how are you, Churchill?\n"+
		"getting ready to say bye...\n"+
		"ok bye!\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestGreet_WriterFailed(t *testing.T) {
	err := Greet(brokenWriter{}, "Winston")
	require.Error(t, err)
	_, ok := err.(infra.ErrorStack)
	require.True(t, ok)
	t.Logf("%+v", err)
}

func TestFactorial(t *testing.T) {
	testcases := []struct {
		n    int64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tc := range testcases {
		res, err := Factorial(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.want, res)
	}
}

func TestFactorial_DomainErrors(t *testing.T) {
	_, err := Factorial(-1)
	require.ErrorIs(t, err, ErrNegativeInput)
	_, ok := err.(infra.ErrorStack)
	require.True(t, ok)

	_, err = Factorial(MaxFactorialInput + 1)
	require.ErrorIs(t, err, ErrFactorialOverflow)
}
