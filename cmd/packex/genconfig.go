package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/packex/pkg/config"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}
}
