package main

import (
	"fmt"
	"strconv"

	"thesaurusrex/internal/domain"
	"thesaurusrex/internal/service"

	"github.com/spf13/cobra"
)

func newPrefsCmd(open envOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change a user's preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the preference flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}
			return withEnv(open, func(e *env) error {
				prefs := service.NewPreferencesService(e.kv, e.logger).Get(cmd.Context(), userID)
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", domain.KeyDefinitionEnabled, prefs.DefinitionEnabled)
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%t\n", domain.KeyPlaySoundEnabled, prefs.PlaySoundEnabled)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <true|false>",
		Short: "Change one preference flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := userFlag(cmd)
			if err != nil {
				return err
			}
			value, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			return withEnv(open, func(e *env) error {
				return service.NewPreferencesService(e.kv, e.logger).Set(cmd.Context(), userID, args[0], value)
			})
		},
	})

	return cmd
}
