// Package calc evaluates single binary operations and runs the interactive
// calculator loop.
package calc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"emperror.dev/errors"

	"toolbelt/parse"
)

// Operators lists the supported operators in display order.
const Operators = "+ - * / ^ %"

const ErrDivisionByZero = errors.Sentinel("Error: Division by zero")

// UnknownOperatorError is returned for operators outside Operators.
type UnknownOperatorError struct {
	Operator string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("Unknown operator: %s\nSupported operators: %s", e.Operator, Operators)
}

// Calculate applies operator to left and right.
func Calculate(left float64, operator string, right float64) (float64, error) {
	switch operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	case "^":
		return math.Pow(left, right), nil
	case "%":
		return math.Mod(left, right), nil
	default:
		return 0, &UnknownOperatorError{Operator: operator}
	}
}

// FormatResult prints whole numbers without a fractional part.
func FormatResult(result float64) string {
	if result == math.Trunc(result) && math.Abs(result) < math.MaxInt64 {
		return strconv.FormatInt(int64(result), 10)
	}
	return strconv.FormatFloat(result, 'f', -1, 64)
}

// Eval parses and evaluates one input line.
func Eval(line string) (float64, error) {
	expr, err := parse.ParseExpression(line)
	if err != nil {
		return 0, err
	}
	return Calculate(expr.Left, expr.Operator, expr.Right)
}

// Run reads expressions from in until EOF, "quit" or "exit" and writes the
// prompt, results and error messages to out. Only I/O failures are returned.
func Run(in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintln(out, "Simple Calculator - type an expression or 'quit' to exit"); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			_, err := fmt.Fprintln(out, "Goodbye!")
			return err
		}

		var msg string
		if result, err := Eval(line); err != nil {
			msg = err.Error()
		} else {
			msg = "= " + FormatResult(result)
		}
		if _, err := fmt.Fprintln(out, msg); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "error reading input")
}
