package mathtool

import (
	"fmt"
	"strconv"
	"strings"
)

// calcOperators in the order the expression is scanned. The colon is the
// division sign.
var calcOperators = []string{"+", "-", "*", ":"}

// Calculate evaluates an expression of exactly two numbers joined by one
// of + - * : with no spaces, e.g. "2+3" or "7:2".
func Calculate(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	for _, op := range calcOperators {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}
		left, err := strconv.ParseFloat(expr[:idx], 64)
		if err != nil {
			return 0, fmt.Errorf("bad operand %q", expr[:idx])
		}
		right, err := strconv.ParseFloat(expr[idx+1:], 64)
		if err != nil {
			return 0, fmt.Errorf("bad operand %q", expr[idx+1:])
		}
		switch op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case ":":
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return left / right, nil
		}
	}
	return 0, fmt.Errorf("expression %q has no operator (use + - * :)", expr)
}
