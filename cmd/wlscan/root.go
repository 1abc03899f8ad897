package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/canonical/go-wlscan/logging"
	"github.com/canonical/go-wlscan/tracing"
)

// Flags shared by all commands.
type globals struct {
	level string
	trace bool
	log   logging.Func
}

// Configure logging from the persistent flags.
func (g *globals) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(g.level)
	if err != nil {
		return err
	}
	if g.trace && (level == logging.None || level > logging.Debug) {
		level = logging.Debug
	}
	g.log = logging.New(level, cmd.ErrOrStderr())
	return nil
}

// Return a context carrying a tracer if tracing was requested.
func (g *globals) context(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.trace {
		ctx = tracing.WithTracer(ctx, tracing.Log(g.log))
	}
	return ctx
}

// Return a new root command.
func newRoot() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:   "wlscan",
		Short: "Generate typed Go client bindings from protocol descriptions",
		Long: `wlscan reads the description of an object-capability protocol, such as a
Wayland XML file, and generates a Go API with one proxy type per interface,
requests as methods and events decoded into structs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.level, "log-level", "l", "warn", "log level: none, debug, info, warn or error")
	flags.BoolVar(&g.trace, "trace", false, "log the duration of each generation stage")

	cmd.AddCommand(newGenerate(g))
	cmd.AddCommand(newDump(g))
	cmd.AddCommand(newExplore(g))
	cmd.AddCommand(newBench(g))

	return cmd
}
