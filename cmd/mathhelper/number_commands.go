package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mathhelper/internal/mathtool"
)

func newDigitsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "digits <number>",
		Short: "Count the digits of a non-negative integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := mathtool.DigitCount(args[0])
			if err != nil {
				return err
			}
			ctx.styles.printResult("%s has %d digit(s)", args[0], n)
			return nil
		},
	}
}

func newDivisorsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "divisors <n>",
		Short: "List all positive divisors of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("n", args[0])
			if err != nil {
				return err
			}
			divisors, err := mathtool.Divisors(n)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(divisors))
			for _, d := range divisors {
				rows = append(rows, []string{
					strconv.FormatInt(d, 10),
					strconv.FormatInt(n/d, 10),
				})
			}
			fmt.Println(renderTable([]string{"Divisor", "Quotient"}, rows))
			ctx.styles.printResult("%d has %d divisor(s)", n, len(divisors))
			return nil
		},
	}
}

func newPrimeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prime <n>",
		Short: "Check whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("n", args[0])
			if err != nil {
				return err
			}
			if mathtool.IsPrime(n) {
				ctx.styles.printResult("%d is prime", n)
			} else {
				ctx.styles.printNegative("%d is not prime", n)
			}
			return nil
		},
	}
}

func newFactorialCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Compute n! for n up to 50000",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseIntArg("n", args[0])
			if err != nil {
				return err
			}
			f, err := mathtool.Factorial(int(n))
			if err != nil {
				return err
			}
			ctx.styles.printResult("%d! = %s", n, f.String())
			return nil
		},
	}
}
