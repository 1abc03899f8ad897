package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/canonical/go-wlscan/internal/config"
	"github.com/canonical/go-wlscan/internal/generator"
	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/logging"
)

// A single protocol to generate bindings for.
type job struct {
	config.Protocol
	Runtime string
	Format  bool
}

// Return a new generate command.
func newGenerate(g *globals) *cobra.Command {
	var input, output, pkg, root, runtime, configFile string
	var noFormat bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Go bindings of a protocol.",
		Example: `  wlscan generate -i wayland.xml -o wayland/wayland.go
  wlscan generate --config wlscan.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := g.context(cmd.Context())

			if configFile != "" {
				if input != "" || output != "" {
					return errors.New("--config cannot be combined with --input or --output")
				}
				cfg, err := config.Load(configFile)
				if err != nil {
					return err
				}
				if runtime == "" {
					runtime = cfg.Runtime
				}
				for _, p := range cfg.Protocols {
					if err := generate(ctx, g.log, job{Protocol: p, Runtime: runtime, Format: !noFormat}); err != nil {
						return err
					}
				}
				return nil
			}

			if input == "" || output == "" {
				return errors.New("both --input and --output are required")
			}
			p := config.Protocol{Input: input, Output: output, Package: pkg, Root: root}
			return generate(ctx, g.log, job{Protocol: p, Runtime: runtime, Format: !noFormat})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "protocol description (.xml, .yaml, .yml or .json)")
	flags.StringVarP(&output, "output", "o", "", "generated Go file")
	flags.StringVarP(&pkg, "package", "p", "", "package name (default is the protocol name)")
	flags.StringVar(&root, "root", generator.DefaultRootInterface, "interface of the connection object")
	flags.StringVar(&runtime, "runtime", "", "import path of the runtime package (default "+generator.DefaultRuntimeImport+")")
	flags.StringVarP(&configFile, "config", "c", "", "wlscan.toml project file listing the protocols to generate")
	flags.BoolVar(&noFormat, "no-format", false, "do not run gofmt on the output")

	return cmd
}

func generate(ctx context.Context, log logging.Func, j job) error {
	p, err := protocol.Load(j.Input)
	if err != nil {
		return err
	}

	options := []generator.Option{
		generator.WithLogFunc(log),
		generator.WithFormat(j.Format),
	}
	if j.Package != "" {
		options = append(options, generator.WithPackage(j.Package))
	}
	if j.Root != "" {
		options = append(options, generator.WithRootInterface(j.Root))
	}
	if j.Runtime != "" {
		options = append(options, generator.WithRuntimeImport(j.Runtime))
	}

	result, err := generator.Generate(ctx, p, options...)
	if err != nil {
		return errors.Wrapf(err, "generate %s", j.Input)
	}
	if err := generator.WriteFile(j.Output, result); err != nil {
		return err
	}

	log(logging.Info, "wrote %s (%d bytes, %d requests skipped)", j.Output, len(result.Source), len(result.Skipped))
	return nil
}
