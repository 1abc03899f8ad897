package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/canonical/go-wlscan/internal/protocol"
)

// Return a new dump command.
func newDump(g *globals) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved protocol description as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := protocol.Load(input)
			if err != nil {
				return err
			}
			data, err := protocol.MarshalYAML(p)
			if err != nil {
				return errors.Wrap(err, "encode protocol")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "protocol description")
	cmd.MarkFlagRequired("input")

	return cmd
}
