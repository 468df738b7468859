package main

import (
	"github.com/sensignal/cstruct-go/cstruct"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSizeCmd())
}

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <format>",
		Short: "Compute the byte size of a format's layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := cstruct.SizeOf(args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]int{"size": n})
			}
			printInfo("%d\n", n)
			return nil
		},
	}
}
