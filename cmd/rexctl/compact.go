package main

import (
	"fmt"

	"thesaurusrex/internal/service"

	"github.com/spf13/cobra"
)

func newCompactCmd(open envOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Reclaim space in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(open, func(e *env) error {
				maintenance := service.NewMaintenanceService(e.kv, e.logger)
				if !maintenance.Supported() {
					fmt.Fprintln(cmd.OutOrStdout(), "store does not support compaction")
					return nil
				}
				if err := maintenance.Compact(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "compaction finished")
				return nil
			})
		},
	}
}
