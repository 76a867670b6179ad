// ppmtool loads PPM images, applies pixel transforms and writes them back
// in the plain or binary encoding.
//
// Usage:
//
//	ppmtool transform -i in.ppm -o out.ppm --op invert --out-format binary
//	ppmtool info image.ppm
//	ppmtool check [-q] [-s] image.ppm ...
//	ppmtool compare a.ppm b.ppm [--tolerance N]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// logger carries diagnostics; it is silent unless --verbose is given.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// exitError asks main to exit with a specific code without printing.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "ppmtool",
		Short:         "Invert, grayscale or rotate PPM images",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.AddCommand(
		newTransformCmd(),
		newInfoCmd(),
		newCheckCmd(),
		newCompareCmd(),
	)
	return root
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
