package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "PACKEX",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "/tmp", "Directory to write the man page to")
	return cmd
}
