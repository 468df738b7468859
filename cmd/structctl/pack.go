package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sensignal/cstruct-go/cstruct"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPackCmd())
}

func newPackCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "pack <format> [value...]",
		Short: "Pack values into a binary layout",
		Long: `Pack encodes one value per non-padding field of the format and writes
the result to a file, or as hex to stdout when no output is given.

Array fields take comma-separated elements, 128-bit fields take 32 hex
digits, strings are taken verbatim.

Example:
  structctl pack "<I4s>H" 1 name 80 -o header.bin
  structctl pack ">4H" 1,2,3,4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], args[1:], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write packed bytes to this file")
	return cmd
}

func runPack(format string, vals []string, output string) error {
	fields, err := cstruct.Fields(format)
	if err != nil {
		return err
	}
	args, err := buildArgs(fields, vals)
	if err != nil {
		return err
	}
	out, err := cstruct.AppendPack(nil, format, args...)
	if err != nil {
		return err
	}
	printVerbose("packed %d field(s) into %d bytes\n", len(fields), len(out))

	if output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printInfo("%s: %d bytes\n", output, len(out))
		return nil
	}
	if jsonOut {
		return printJSON(map[string]any{"size": len(out), "hex": hex.EncodeToString(out)})
	}
	printInfo("%s\n", hex.EncodeToString(out))
	return nil
}
