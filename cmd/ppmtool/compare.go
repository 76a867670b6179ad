package main

import (
	"fmt"

	"github.com/IlesESGI/libppm/ppmutil"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [file1] [file2]",
		Short: "Compare the pixels of two PPM files in any encoding",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompare,
	}
	cmd.Flags().Uint8("tolerance", 0, "Maximum allowed per-channel difference")
	cmd.Flags().Bool("ignore-dimensions", false, "Compare pixels even if the header dimensions differ")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	tolerance, _ := cmd.Flags().GetUint8("tolerance")
	ignoreDims, _ := cmd.Flags().GetBool("ignore-dimensions")

	same, diffs, err := ppmutil.CompareFiles(args[0], args[1], ppmutil.CompareOptions{
		Tolerance:        tolerance,
		IgnoreDimensions: ignoreDims,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if same {
		fmt.Fprintln(out, "Images match")
		return nil
	}
	fmt.Fprintln(out, "Images differ:")
	for _, d := range diffs {
		fmt.Fprintf(out, "  %s\n", d)
	}
	return &exitError{code: 1}
}
