package xlog

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ zapcore.Core = (xLogMultiCore)(nil)

type xLogMultiCore []xLogCore

func (mc xLogMultiCore) With(fields []zap.Field) zapcore.Core {
	clone := make(xLogMultiCore, 0, len(mc))
	for i := range mc {
		if cc, ok := mc[i].With(fields).(xLogCore); ok {
			clone = append(clone, cc)
		}
	}
	return clone
}

func (mc xLogMultiCore) Enabled(lvl zapcore.Level) bool {
	for i := range mc {
		if mc[i].Enabled(lvl) {
			return true
		}
	}
	return false
}

func (mc xLogMultiCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	for i := range mc {
		ce = mc[i].Check(ent, ce)
	}
	return ce
}

func (mc xLogMultiCore) Write(ent zapcore.Entry, fields []zap.Field) error {
	var err error
	for i := range mc {
		err = multierr.Append(err, mc[i].Write(ent, fields))
	}
	return err
}

func (mc xLogMultiCore) Sync() error {
	var err error
	for i := range mc {
		err = multierr.Append(err, mc[i].Sync())
	}
	return err
}

func XLogTeeCore(cores ...xLogCore) zapcore.Core {
	return xLogMultiCore(cores)
}

func wrapCores(cores []xLogCore, cfg *zapcore.EncoderConfig) (xLogMultiCore, error) {
	newCores := make(xLogMultiCore, 0, len(cores))
	for i := range cores {
		newCore, err := WrapCore(cores[i], cfg)
		if err != nil {
			return nil, err
		}
		newCores = append(newCores, newCore)
	}
	return newCores, nil
}

// componentLogger derives a named child logger whose cores use the
// component encoder config.
func componentLogger(parent XLogger, name string) *xLogger {
	l := &xLogger{}
	l.logger.Store(parent.
		zap().
		Named(name).
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			if core == nil {
				panic("[XLogger] core is nil")
			}
			var (
				cc  zapcore.Core
				err error
			)
			switch c := core.(type) {
			case xLogMultiCore:
				cc, err = wrapCores(c, componentCoreEncoderCfg)
			case xLogCore:
				cc, err = WrapCore(c, componentCoreEncoderCfg)
			default:
				panic("[XLogger] core is not XLogCore")
			}
			if err != nil {
				panic(err)
			}
			return cc
		})),
	)
	if pl, ok := parent.(*xLogger); ok {
		l.dynamicLevelEnabler = pl.dynamicLevelEnabler
		l.ctxFields = pl.ctxFields
		l.encoder = pl.encoder
		l.writers = pl.writers
	}
	return l
}
