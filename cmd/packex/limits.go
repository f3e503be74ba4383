package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/packex/pkg/config"
	"github.com/arthur-debert/packex/pkg/style"
)

func newLimitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limits",
		Short: MsgLimitsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderLimits(settings.Limits, settings.Divisor))
			return nil
		},
	}
}
