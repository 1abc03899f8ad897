package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/internal/shell"
)

// Return a new explore command.
func newExplore(g *globals) *cobra.Command {
	var input string
	var format string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse a protocol description interactively.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := protocol.Load(input)
			if err != nil {
				return err
			}

			sh, err := shell.New(p, shell.WithFormat(format))
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)
			line.SetCompleter(completer(p))

			ctx := g.context(cmd.Context())
			out := cmd.OutOrStdout()
			for {
				text, err := line.Prompt(p.Name + "> ")
				if err != nil {
					if err == io.EOF || err == liner.ErrPromptAborted {
						break
					}
					return err
				}
				if strings.TrimSpace(text) == "quit" {
					break
				}
				line.AppendHistory(text)

				result, err := sh.Process(ctx, text)
				if err != nil {
					fmt.Fprintln(out, "Error: ", err)
				} else if result != "" {
					fmt.Fprintln(out, result)
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&input, "input", "i", "", "protocol description")
	flags.StringVarP(&format, "format", "f", "tabular", "output format of show: tabular or yaml")
	cmd.MarkFlagRequired("input")

	return cmd
}

// Complete the last word of the line with a command or interface name.
func completer(p *protocol.Protocol) liner.Completer {
	words := []string{"interfaces", "show", "requests", "events", "enums", "signature", "help", "quit"}
	for _, iface := range p.Interfaces {
		words = append(words, iface.Name)
	}
	return func(line string) []string {
		head, last := "", line
		if i := strings.LastIndex(line, " "); i >= 0 {
			head, last = line[:i+1], line[i+1:]
		}
		var candidates []string
		for _, word := range words {
			if strings.HasPrefix(word, last) {
				candidates = append(candidates, head+word)
			}
		}
		return candidates
	}
}
