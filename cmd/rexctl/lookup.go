package main

import (
	"fmt"
	"strings"

	"thesaurusrex/internal/modal"

	"github.com/spf13/cobra"
)

func newLookupCmd(open envOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.TrimSpace(args[0])
			return withEnv(open, func(e *env) error {
				entry, err := e.lookup.Lookup(cmd.Context(), word)
				state := modal.State{Word: word, Entry: entry, Err: err}
				fmt.Fprintln(cmd.OutOrStdout(), state.Render())
				if err != nil {
					return fmt.Errorf("lookup %q: %w", word, err)
				}
				if audio := entry.AudioURL(); audio != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "audio: "+audio)
				}
				return nil
			})
		},
	}
}
