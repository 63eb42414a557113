// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (f *Frontend) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "conf",
		Short: "Read and write entries of a running conf server",
		Long: `conf talks to the conf server of the current user session.

The server port is read from $XDG_RUNTIME_DIR/conf-keeper/port and the access
token from $XDG_RUNTIME_DIR/conf-keeper/token.`,
		Example: `  conf get <key>
  conf set <key> <value>
  conf help`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &UnknownCommandError{}
			}
			switch args[0] {
			case "-h", "--help":
				return cmd.Help()
			}
			return &UnknownCommandError{Command: args[0]}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(f.getCommand(), f.setCommand())

	return root
}

// get and set take keys and values verbatim, so "-x" is a valid key.

func (f *Frontend) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "get <key>",
		Short:              "Print the value stored under key",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &BadInputError{Reason: fmt.Sprintf("get expects exactly one key, got %d arguments", len(args))}
			}
			if args[0] == "" {
				return &BadInputError{Reason: "key must not be empty"}
			}

			client, err := f.client()
			if err != nil {
				return err
			}

			payload, err := client.ConfGet(cmd.Context(), []string{args[0]})
			if err != nil {
				return err
			}

			return f.print(payload)
		},
	}
}

func (f *Frontend) setCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "set <key> <value>",
		Short:              "Store value under key as a JSON string",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &BadInputError{Reason: fmt.Sprintf("set expects a key and a value, got %d arguments", len(args))}
			}
			if args[0] == "" {
				return &BadInputError{Reason: "key must not be empty"}
			}

			value, err := json.Marshal(args[1])
			if err != nil {
				return &BadInputError{Reason: "value cannot be encoded", Err: err}
			}

			client, err := f.client()
			if err != nil {
				return err
			}

			payload, err := client.ConfSet(cmd.Context(), map[string]json.RawMessage{args[0]: value})
			if err != nil {
				return err
			}

			return f.print(payload)
		},
	}
}
