package main

import (
	"github.com/spf13/cobra"

	"mathhelper/internal/mathtool"
)

func newCalcCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate a two-operand expression",
		Long: "Evaluate an expression of two numbers joined by a single\n" +
			"operator with no spaces. Operators: + - * and : for division.\n" +
			"Example: mathhelper calc 7:2",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := mathtool.Calculate(args[0])
			if err != nil {
				return err
			}
			ctx.styles.printResult("%s = %s", args[0], formatFloat(result))
			return nil
		},
	}
}
