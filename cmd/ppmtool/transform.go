package main

import (
	"fmt"
	"strings"

	"github.com/IlesESGI/libppm/ppm"
	"github.com/IlesESGI/libppm/ppmutil"
	"github.com/spf13/cobra"
)

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Load an image, apply operations in order and save it",
		Long: `Load an image, apply operations in order and save it.

Operations: invert (0), grayscale (1), rotate (2). Repeat --op or separate
names with commas. Without --op the image is rewritten unchanged, which
converts between the plain and binary encodings.

An output path ending in .zst is written zstd-compressed; compressed input
is detected automatically.`,
		Args: cobra.NoArgs,
		RunE: runTransform,
	}
	cmd.Flags().StringP("input", "i", "", "Input PPM file")
	cmd.Flags().StringP("output", "o", "", "Output PPM file")
	cmd.Flags().String("in-format", "auto", "Input encoding (auto, plain, binary)")
	cmd.Flags().String("out-format", "plain", "Output encoding (plain, binary)")
	cmd.Flags().StringSlice("op", nil, "Operation to apply (invert, grayscale, rotate)")
	cmd.Flags().Bool("strict", false, "Reject images whose pixel count or max value disagree with the header")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	inFormatStr, _ := cmd.Flags().GetString("in-format")
	outFormatStr, _ := cmd.Flags().GetString("out-format")
	opNames, _ := cmd.Flags().GetStringSlice("op")
	strict, _ := cmd.Flags().GetBool("strict")

	outFormat, err := ppm.ParseFormat(outFormatStr)
	if err != nil {
		return err
	}

	ops := make([]ppm.Operation, 0, len(opNames))
	for _, name := range opNames {
		op, err := ppm.ParseOperation(name)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	var (
		img      *ppm.Image
		inFormat ppm.Format
	)
	if strings.EqualFold(inFormatStr, "auto") {
		img, inFormat, err = ppmutil.Load(inputPath, strict)
	} else {
		if inFormat, err = ppm.ParseFormat(inFormatStr); err != nil {
			return err
		}
		img, err = ppm.Load(inputPath, ppm.DecodeOptions{Format: inFormat, Strict: strict})
	}
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}
	logger.Debug("loaded image", "path", inputPath, "format", inFormat,
		"width", img.Width(), "height", img.Height(), "pixels", img.Len())
	if err := img.Validate(); err != nil {
		logger.Warn("header disagrees with payload", "path", inputPath, "err", err)
	}

	if err := img.Apply(ops...); err != nil {
		return err
	}
	for _, op := range ops {
		logger.Debug("applied operation", "op", op)
	}

	if err := img.Save(outputPath, outFormat); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Debug("saved image", "path", outputPath, "format", outFormat)

	applied := "none"
	if len(ops) > 0 {
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = op.String()
		}
		applied = strings.Join(names, ", ")
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Transformed %dx%d (%d pixels), operations: %s\n", img.Width(), img.Height(), img.Len(), applied)
	fmt.Fprintf(out, "Input:  %s (%s)\n", inputPath, inFormat)
	fmt.Fprintf(out, "Output: %s (%s)\n", outputPath, outFormat)
	return nil
}
