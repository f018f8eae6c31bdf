package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/verify"
	"github.com/benz9527/xalgo/observability"
	"github.com/benz9527/xalgo/xlog"
)

const (
	keyVerifyRounds  = "verify.rounds"
	keyVerifyPool    = "verify.pool"
	keyVerifySeed    = "verify.seed"
	keyVerifyMetrics = "verify.metrics"
	keyVerifyTimeout = "verify.timeout"

	metricsInterval = 10 * time.Second
	metricsTimeout  = 5 * time.Second
)

type verifyConfig struct {
	rounds   int
	poolSize int
	seed     uint64
	exporter observability.ExporterType
	timeout  time.Duration
}

func (c *cmdContext) loadVerifyConfig() (verifyConfig, error) {
	typ, err := observability.ParseExporterType(c.v.GetString(keyVerifyMetrics))
	if err != nil {
		return verifyConfig{}, err
	}
	cfg := verifyConfig{
		rounds:   c.v.GetInt(keyVerifyRounds),
		poolSize: c.v.GetInt(keyVerifyPool),
		seed:     c.v.GetUint64(keyVerifySeed),
		exporter: typ,
		timeout:  c.v.GetDuration(keyVerifyTimeout),
	}
	if cfg.rounds <= 0 {
		return verifyConfig{}, infra.NewErrorStack("[xalgo] verify rounds must be positive")
	}
	return cfg, nil
}

func newVerifyMeter(lc fx.Lifecycle, cmdCtx *cmdContext, cfg verifyConfig) (metric.Meter, error) {
	var (
		shutdown observability.ShutdownFunc
		err      error
	)
	if cfg.exporter == observability.ConsoleExporter {
		shutdown, err = observability.NewConsoleMetricsExporter(
			metricsInterval,
			metricsTimeout,
			stdoutmetric.WithWriter(cmdCtx.out),
			stdoutmetric.WithPrettyPrint(),
		)
	} else {
		shutdown, err = observability.NewMetricsExporter(cfg.exporter, metricsInterval, metricsTimeout)
	}
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return otel.Meter(verify.RunnerStatsName), nil
}

func newVerifyRunner(lc fx.Lifecycle, logger xlog.XLogger, meter metric.Meter, cfg verifyConfig) (*verify.Runner, error) {
	opts := []verify.RunnerOption{
		verify.WithRunnerLogger(logger),
		verify.WithRunnerMeter(meter),
		verify.WithRunnerRounds(cfg.rounds),
	}
	if cfg.poolSize > 0 {
		opts = append(opts, verify.WithRunnerPoolSize(cfg.poolSize))
	}
	if cfg.seed != 0 {
		opts = append(opts, verify.WithRunnerSeed(cfg.seed))
	}
	r, err := verify.NewRunner(opts...)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			r.Release()
			return nil
		},
	})
	return r, nil
}

func runVerify(ctx context.Context, cmdCtx *cmdContext, cfg verifyConfig) (verify.Report, error) {
	var runner *verify.Runner
	app := fx.New(
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Supply(cmdCtx, cfg),
		fx.Provide(
			func() xlog.XLogger { return cmdCtx.logger },
			newVerifyMeter,
			newVerifyRunner,
		),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					observability.InitAppStats(ctx, "verify", nil)
					return nil
				},
			})
		}),
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		return verify.Report{}, infra.WrapErrorStackWithMessage(err, "[xalgo] verify wiring failed")
	}
	if err := app.Start(ctx); err != nil {
		return verify.Report{}, infra.WrapErrorStackWithMessage(err, "[xalgo] verify start failed")
	}

	runCtx := ctx
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	report, runErr := runner.Run(runCtx, verify.AllProperties()...)

	stopCtx, cancel := context.WithTimeout(context.Background(), metricsTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = infra.WrapErrorStackWithMessage(err, "[xalgo] verify stop failed")
	}
	return report, runErr
}

func newVerifyCommand(cmdCtx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the kernel laws against random fixtures",
		Args:  cobra.NoArgs,
	}

	f := cmd.Flags()
	f.Int("rounds", verify.DefaultRounds, "Rounds per property")
	f.Int("pool", 0, "Worker pool size, 0 means the number of CPUs")
	f.Uint64("seed", 0, "Fixture seed, 0 means a time based seed")
	f.String("metrics", "none", "Metrics exporter: none|stdout|prometheus")
	f.Duration("timeout", 0, "Abort the run after the duration, 0 means no limit")

	// Lookups
	_ = cmdCtx.v.BindPFlag(keyVerifyRounds, f.Lookup("rounds"))
	_ = cmdCtx.v.BindPFlag(keyVerifyPool, f.Lookup("pool"))
	_ = cmdCtx.v.BindPFlag(keyVerifySeed, f.Lookup("seed"))
	_ = cmdCtx.v.BindPFlag(keyVerifyMetrics, f.Lookup("metrics"))
	_ = cmdCtx.v.BindPFlag(keyVerifyTimeout, f.Lookup("timeout"))

	cmd.RunE = cmdCtx.runE(func(cmd *cobra.Command, args []string) error {
		cfg, err := cmdCtx.loadVerifyConfig()
		if err != nil {
			return err
		}
		report, runErr := runVerify(cmd.Context(), cmdCtx, cfg)
		if _, err := fmt.Fprint(cmdCtx.out, report.String()); err != nil {
			return err
		}
		return runErr
	})
	return cmd
}
