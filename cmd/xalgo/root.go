package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/xlog"
)

const (
	envPrefix = "XALGO"

	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
)

type cmdContext struct {
	v          *viper.Viper
	out        io.Writer
	logOut     io.Writer
	configFile string
	logger     xlog.XLogger
}

func (c *cmdContext) initConfig() error {
	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()
	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
		if err := c.v.ReadInConfig(); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[xalgo] unable to read config "+c.configFile)
		}
	}
	c.logger = xlog.NewXLogger(
		xlog.WithXLoggerWriter(c.logOut),
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(c.v.GetString(keyLogLevel))),
		xlog.WithXLoggerEncoder(xlog.ParseLogEncoder(c.v.GetString(keyLogFormat))),
	)
	return nil
}

// runE logs the failure with its stack before cobra reports a non-zero exit.
func (c *cmdContext) runE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil && c.logger != nil {
			c.logger.ErrorStack(err, "xalgo command failed", xlogCommandField(cmd))
			_ = c.logger.Sync()
		}
		return err
	}
}

func newRootCommand(out, logOut io.Writer) *cobra.Command {
	cmdCtx := &cmdContext{
		v:      viper.New(),
		out:    out,
		logOut: logOut,
	}
	cmd := &cobra.Command{
		Use:   "xalgo",
		Short: "Searching, sorting and recursive aggregation kernels",
		Long: `xalgo runs the search, sort and recursive aggregate kernels over command line input,
and verifies their laws against random fixtures.

Put "--" before the values when any of them is negative, e.g. "xalgo agg max -- -3 -1".`,
		// Errors are logged by runE.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.initConfig()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(logOut)

	f := cmd.PersistentFlags()
	f.StringVar(&cmdCtx.configFile, "config", "", "Path to a yaml/json/toml config file")
	f.String("log-level", "info", "Log level: debug|info|warn|error")
	f.String("log-format", "plain", "Log format: json|plain")

	// Lookups
	_ = cmdCtx.v.BindPFlag(keyLogLevel, f.Lookup("log-level"))
	_ = cmdCtx.v.BindPFlag(keyLogFormat, f.Lookup("log-format"))

	cmd.AddCommand(
		newSearchCommand(cmdCtx),
		newSortCommand(cmdCtx),
		newAggCommand(cmdCtx),
		newFactorialCommand(cmdCtx),
		newCountdownCommand(cmdCtx),
		newGreetCommand(cmdCtx),
		newVerifyCommand(cmdCtx),
	)
	return cmd
}
