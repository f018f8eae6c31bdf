package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xalgo/lib/infra"
)

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
}

func TestParseLogLevelAndEncoder(t *testing.T) {
	require.Equal(t, LogLevelInfo, ParseLogLevel(" info "))
	require.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	require.Equal(t, LogLevelDebug, ParseLogLevel(""))
	require.Equal(t, LogLevelDebug, ParseLogLevel("verbose"))
	require.Equal(t, PlainText, ParseLogEncoder("console"))
	require.Equal(t, JSON, ParseLogEncoder("json"))
	require.Equal(t, JSON, ParseLogEncoder(""))
}

type testMemOutWriter struct {
	lock sync.Mutex
	data bytes.Buffer
}

func (w *testMemOutWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.data.Write(p)
}

func (w *testMemOutWriter) lines() []map[string]any {
	w.lock.Lock()
	defer w.lock.Unlock()
	res := make([]map[string]any, 0, 8)
	for _, line := range strings.Split(strings.TrimSpace(w.data.String()), "\n") {
		if len(line) == 0 {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal([]byte(line), &m); err == nil {
			res = append(res, m)
		}
	}
	return res
}

func newTestLogger(t *testing.T, opts ...XLoggerOption) (XLogger, *testMemOutWriter) {
	w := &testMemOutWriter{}
	opts = append([]XLoggerOption{
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(w),
	}, opts...)
	logger := NewXLogger(opts...)
	require.NotNil(t, logger)
	return logger, w
}

func TestXLogger_Levels(t *testing.T) {
	logger, w := newTestLogger(t)
	logger.Debug("debug msg", zap.Int("n", 1))
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error(errors.New("boom"), "error msg")
	logger.Error(nil, "error without err")
	logger.Logf(zapcore.InfoLevel, "formatted %d", 10)
	require.NoError(t, logger.Sync())

	lines := w.lines()
	require.Len(t, lines, 6)
	require.Equal(t, "DEBUG", lines[0]["lvl"])
	require.Equal(t, "debug msg", lines[0]["msg"])
	require.Equal(t, float64(1), lines[0]["n"])
	require.Equal(t, "boom", lines[3]["error"])
	_, ok := lines[4]["error"]
	require.False(t, ok)
	require.Equal(t, "formatted 10", lines[5]["msg"])
	require.Contains(t, lines[1]["callAt"], "xlog_test.go")
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	logger, w := newTestLogger(t)
	require.Equal(t, "debug", logger.Level())
	logger.IncreaseLogLevel(zapcore.WarnLevel)
	require.Equal(t, "warn", logger.Level())
	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	require.Len(t, w.lines(), 1)

	logger.IncreaseLogLevel(zapcore.DebugLevel)
	logger.Debug("kept again")
	require.Len(t, w.lines(), 2)
}

func TestXLogger_ErrorStack(t *testing.T) {
	logger, w := newTestLogger(t)
	logger.ErrorStack(infra.NewErrorStack("stacked"), "with stack")
	logger.ErrorStack(errors.New("plain"), "without stack")
	logger.ErrorStack(nil, "nil error")

	lines := w.lines()
	require.Len(t, lines, 3)
	require.Equal(t, "stacked", lines[0]["error"])
	frames, ok := lines[0]["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestXLogger_ErrorStack")

	require.Equal(t, "plain", lines[1]["error"])
	_, ok = lines[1]["errorStack"]
	require.False(t, ok)
	_, ok = lines[2]["error"]
	require.False(t, ok)
}

func TestXLogger_ContextFields(t *testing.T) {
	logger, w := newTestLogger(t,
		WithXLoggerContextFieldExtract("runID", "run"),
		WithXLoggerContextFieldExtract("round"),
		WithXLoggerContextFieldExtract("trace", ContextKeyMapToOmitempty),
		WithXLoggerContextFieldExtract(""),
	)
	ctx := context.WithValue(context.Background(), ContextKey("runID"), "r-1")
	logger.InfoContext(ctx, "first")

	ctx = context.WithValue(ctx, ContextKey("trace"), "t-9")
	ctx = context.WithValue(ctx, ContextKey("round"), 3)
	logger.DebugContext(ctx, "second")
	logger.WarnContext(ctx, "third")
	logger.ErrorContext(ctx, errors.New("ctx boom"), "fourth")
	logger.ErrorStackContext(ctx, infra.NewErrorStack("ctx stack"), "fifth")
	logger.InfoContext(nil, "no ctx") //nolint:staticcheck // nil context has no fields

	lines := w.lines()
	require.Len(t, lines, 6)
	require.Equal(t, "r-1", lines[0]["run"])
	require.Equal(t, "nil", lines[0]["round"])
	_, ok := lines[0]["trace"]
	require.False(t, ok)

	require.Equal(t, float64(3), lines[1]["round"])
	require.Equal(t, "t-9", lines[1]["trace"])
	require.Equal(t, "ctx boom", lines[3]["error"])
	require.Equal(t, "ctx stack", lines[4]["error"])
	_, ok = lines[5]["run"]
	require.False(t, ok)
}

type testBanner struct{}

func (testBanner) JSON() string {
	return "{\"app\":\"xalgo\"}"
}

func (testBanner) PlainText() string {
	return "xalgo"
}

func TestXLogger_Banner(t *testing.T) {
	logger, w := newTestLogger(t)
	logger.IncreaseLogLevel(zapcore.ErrorLevel)
	logger.Banner(testBanner{})
	logger.Banner(testBanner{})
	logger.Banner(nil)
	lines := w.lines()
	require.Len(t, lines, 1)
	require.Equal(t, "{\"app\":\"xalgo\"}", lines[0]["banner"])

	plain := &testMemOutWriter{}
	logger = NewXLogger(WithXLoggerEncoder(PlainText), WithXLoggerWriter(plain))
	logger.Banner(testBanner{})
	require.Contains(t, plain.data.String(), "xalgo")
}

func TestXLogger_BadOptions(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(nil))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.NotPanics(t, func() {
		l := NewXLogger(nil, WithXLoggerLevelEncoder(nil), WithXLoggerTimeEncoder(nil), WithXLoggerStdErrWriter())
		require.NotNil(t, l)
	})
}

func TestXLogger_TeeWriters(t *testing.T) {
	w1, w2 := &testMemOutWriter{}, &testMemOutWriter{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerWriter(w1),
		WithXLoggerWriter(w2),
	)
	logger.Info("fanout", zap.String("k", "v"))
	logger.Debug("dropped")
	require.Len(t, w1.lines(), 1)
	require.Len(t, w2.lines(), 1)

	child := logger.zap().With(zap.String("child", "yes"))
	child.Info("from child")
	require.Len(t, w1.lines(), 2)
	require.Equal(t, "yes", w2.lines()[1]["child"])
}

func TestWrapCore(t *testing.T) {
	_, err := WrapCore(nil, componentCoreEncoderCfg)
	require.Error(t, err)

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	w := &testMemOutWriter{}
	cc := newConsoleCore(zapcore.AddSync(w), lvl, JSON, zapcore.CapitalLevelEncoder, zapcore.ISO8601TimeEncoder)
	require.NotNil(t, cc)
	require.Nil(t, newConsoleCore(nil, lvl, JSON, nil, nil))

	_, err = WrapCore(cc, nil)
	require.Error(t, err)

	wrapped, err := WrapCore(cc, componentCoreEncoderCfg)
	require.NoError(t, err)
	require.False(t, wrapped.Enabled(zapcore.DebugLevel))
	lvl.SetLevel(zapcore.DebugLevel)
	require.True(t, wrapped.Enabled(zapcore.DebugLevel))
	// The shared config is not mutated by the wrap.
	require.Nil(t, componentCoreEncoderCfg.EncodeLevel)
}
