package main

import (
	"github.com/spf13/cobra"

	"mathhelper/internal/mathtool"
)

func newPerimeterCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "perimeter <width> <length>",
		Short: "Rectangle perimeter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseFloatArg("width", args[0])
			if err != nil {
				return err
			}
			length, err := parseFloatArg("length", args[1])
			if err != nil {
				return err
			}
			p, err := mathtool.RectPerimeter(width, length)
			if err != nil {
				return err
			}
			ctx.styles.printResult("Perimeter: %s", formatFloat(p))
			return nil
		},
	}
}

func newAreaCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "area <width> <length>",
		Short: "Rectangle area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseFloatArg("width", args[0])
			if err != nil {
				return err
			}
			length, err := parseFloatArg("length", args[1])
			if err != nil {
				return err
			}
			a, err := mathtool.RectArea(width, length)
			if err != nil {
				return err
			}
			ctx.styles.printResult("Area: %s", formatFloat(a))
			return nil
		},
	}
}

func newVolumeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "volume <width> <length> <height>",
		Short: "Box volume",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseFloatArg("width", args[0])
			if err != nil {
				return err
			}
			length, err := parseFloatArg("length", args[1])
			if err != nil {
				return err
			}
			height, err := parseFloatArg("height", args[2])
			if err != nil {
				return err
			}
			v, err := mathtool.BoxVolume(width, length, height)
			if err != nil {
				return err
			}
			ctx.styles.printResult("Volume: %s", formatFloat(v))
			return nil
		},
	}
}

func newPicksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "picks <interior> <boundary>",
		Short: "Lattice polygon area via Pick's theorem",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			interior, err := parseIntArg("interior", args[0])
			if err != nil {
				return err
			}
			boundary, err := parseIntArg("boundary", args[1])
			if err != nil {
				return err
			}
			a, err := mathtool.PicksArea(int(interior), int(boundary))
			if err != nil {
				return err
			}
			ctx.styles.printResult("Area: %s", formatFloat(a))
			return nil
		},
	}
}
