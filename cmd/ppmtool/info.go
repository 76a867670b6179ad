package main

import (
	"fmt"

	"github.com/IlesESGI/libppm/ppmutil"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [file]",
		Short: "Print header and payload information",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := ppmutil.GetFileInfo(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", info.Path)
	fmt.Fprintf(out, "Tag:        %s\n", info.Magic)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Max value:  %d\n", info.MaxValue)
	fmt.Fprintf(out, "Encoding:   %s\n", info.Format)
	if info.Consistent {
		fmt.Fprintf(out, "Pixels:     %d\n", info.PixelCount)
	} else {
		fmt.Fprintf(out, "Pixels:     %d (header declares %d)\n", info.PixelCount, info.Width*info.Height)
	}
	fmt.Fprintf(out, "Compressed: %t\n", info.Compressed)
	fmt.Fprintf(out, "File size:  %d bytes\n", info.FileSize)
	return nil
}
