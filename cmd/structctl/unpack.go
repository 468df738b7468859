package main

import (
	"fmt"

	"github.com/sensignal/cstruct-go/cstruct"
	"github.com/sensignal/cstruct-go/internal/mmfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newUnpackCmd())
}

type fieldOutput struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Offset int    `json:"offset"`
	Value  any    `json:"value,omitempty"`
}

func newUnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <format> <file>",
		Short: "Decode a binary file into its fields",
		Long: `Unpack maps the file, decodes it with the format, and prints one line
per field (padding fields are listed but carry no value).

Example:
  structctl unpack "<I4s>H" header.bin
  structctl unpack "<I4s>H" header.bin --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(args[0], args[1])
		},
	}
	return cmd
}

func runUnpack(format, path string) error {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("map %s: %w", path, err)
	}
	defer release()

	fields, err := cstruct.Fields(format)
	if err != nil {
		return err
	}
	var dests []any
	for _, f := range fields {
		if f.Kind == cstruct.KindPadding {
			continue
		}
		dests = append(dests, makeDest(f))
	}
	n, err := cstruct.Unpack(data, format, dests...)
	if err != nil {
		return err
	}
	printVerbose("decoded %d of %d bytes\n", n, len(data))

	var out []fieldOutput
	di := 0
	for i, f := range fields {
		fo := fieldOutput{Index: i, Kind: f.Kind.String(), Offset: f.Offset}
		if f.Kind != cstruct.KindPadding {
			fo.Value = renderDest(f, dests[di])
			di++
		}
		out = append(out, fo)
	}
	if jsonOut {
		return printJSON(out)
	}
	for _, fo := range out {
		if fo.Value == nil {
			printInfo("%3d  %-8s @%-4d -\n", fo.Index, fo.Kind, fo.Offset)
			continue
		}
		printInfo("%3d  %-8s @%-4d %v\n", fo.Index, fo.Kind, fo.Offset, fo.Value)
	}
	return nil
}
