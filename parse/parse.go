// Package parse turns calculator input lines into expressions.
package parse

import (
	"strconv"
	"strings"

	"emperror.dev/errors"
)

// Expression is a single binary operation such as "5 + 3".
type Expression struct {
	Left     float64
	Operator string
	Right    float64
}

// ErrUsage is returned when the input is not exactly three tokens.
const ErrUsage = errors.Sentinel("Usage: <number> <operator> <number>")

// ParseExpression splits input on whitespace into <number> <operator> <number>.
// The operator is not validated here.
func ParseExpression(input string) (Expression, error) {
	parts := strings.Fields(input)
	if len(parts) != 3 {
		return Expression{}, ErrUsage
	}

	left, err := parseNumber(parts[0])
	if err != nil {
		return Expression{}, err
	}
	right, err := parseNumber(parts[2])
	if err != nil {
		return Expression{}, err
	}

	return Expression{Left: left, Operator: parts[1], Right: right}, nil
}

func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewPlain("Invalid number: " + s)
	}
	return n, nil
}
