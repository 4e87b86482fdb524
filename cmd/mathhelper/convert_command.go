package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mathhelper/internal/mathtool"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var listUnits bool

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert between length or mass units",
		Long: "Convert a value between units of the same kind.\n" +
			"Length: mm cm dm m km. Mass: g kg centner t.",
		Args: func(cmd *cobra.Command, args []string) error {
			if listUnits {
				return nil
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listUnits {
				fmt.Println(renderTable(
					[]string{"Kind", "Units"},
					[][]string{
						{"length", strings.Join(mathtool.UnitNames()[:5], " ")},
						{"mass", strings.Join(mathtool.UnitNames()[5:], " ")},
					},
				))
				return nil
			}
			value, err := parseFloatArg("value", args[0])
			if err != nil {
				return err
			}
			result, err := mathtool.Convert(value, args[1], args[2])
			if err != nil {
				return err
			}
			ctx.styles.printResult("%s %s = %s %s", formatFloat(value), args[1], formatFloat(result), args[2])
			return nil
		},
	}

	cmd.Flags().BoolVar(&listUnits, "units", false, "List the supported units")
	return cmd
}
