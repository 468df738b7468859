package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/sensignal/cstruct-go/cstruct"
	"github.com/sensignal/cstruct-go/internal/mmfile"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLocateCmd())
}

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <format> <file> <index>",
		Short: "Find the byte offset of a field inside a file",
		Long: `Locate walks the format over the file without decoding and reports
where field <index> starts (fields are counted per token, padding included).

Example:
  structctl locate "HBI" header.bin 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[2], err)
			}
			return runLocate(args[0], args[1], index)
		},
	}
	return cmd
}

func runLocate(format, path string, index int) error {
	data, release, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("map %s: %w", path, err)
	}
	defer release()

	off, err := cstruct.FieldOffset(data, format, index)
	if err != nil {
		return err
	}
	field, err := cstruct.Field(data, format, index)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"offset": off,
			"size":   len(field),
			"hex":    hex.EncodeToString(field),
		})
	}
	printInfo("offset %d, %d bytes: %s\n", off, len(field), hex.EncodeToString(field))
	return nil
}
