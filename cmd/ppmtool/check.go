package main

import (
	"fmt"
	"strings"

	"github.com/IlesESGI/libppm/ppmutil"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate PPM files",
		Long: `Validate PPM files.

Exit codes:
  0: All files valid
  1: One or more files invalid
  2: Error (file could not be validated)`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().BoolP("quiet", "q", false, "Only output errors. Exit code indicates pass/fail.")
	cmd.Flags().BoolP("strict", "s", false, "Treat header/payload disagreements as errors")
	return cmd
}

func runCheck(cmd *cobra.Command, files []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	strict, _ := cmd.Flags().GetBool("strict")
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	validCount := 0
	errorOccurred := false

	for _, filename := range files {
		result, err := ppmutil.ValidateFile(filename, strict)
		if err != nil {
			if !quiet {
				fmt.Fprintf(errOut, "%s: error: %v\n", filename, err)
			}
			errorOccurred = true
			continue
		}

		if result.Valid {
			validCount++
		}

		switch {
		case !quiet:
			printResult(cmd, filename, result)
		case !result.Valid:
			for _, msg := range result.Errors {
				fmt.Fprintf(errOut, "%s: %s\n", filename, msg)
			}
		}
	}

	if len(files) > 1 && !quiet {
		fmt.Fprintf(out, "\nSummary: %d of %d files valid\n", validCount, len(files))
	}

	if errorOccurred {
		return &exitError{code: 2}
	}
	if validCount < len(files) {
		return &exitError{code: 1}
	}
	return nil
}

func printResult(cmd *cobra.Command, filename string, result *ppmutil.ValidationResult) {
	out := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(out, "%s: OK\n", filename)
	} else {
		fmt.Fprintf(out, "%s: INVALID\n", filename)
	}
	for _, msg := range result.Errors {
		fmt.Fprintf(out, "  [ERROR] %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(out, "  [WARNING] %s\n", msg)
	}
	if len(result.Errors)+len(result.Warnings) > 0 {
		fmt.Fprintf(out, "  Checks performed: %s\n", strings.Join(result.Checks, ", "))
	}
}
