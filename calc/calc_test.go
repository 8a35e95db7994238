package calc_test

import (
	"math"
	"strings"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbelt/calc"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		left     float64
		operator string
		right    float64
		want     float64
	}{
		{2, "+", 3, 5},
		{10, "-", 4, 6},
		{3, "*", 7, 21},
		{10, "/", 4, 2.5},
		{2, "^", 10, 1024},
		{15, "%", 4, 3},
		{-7, "%", 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.operator, func(t *testing.T) {
			got, err := calc.Calculate(tt.left, tt.operator, tt.right)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	_, err := calc.Calculate(10, "/", 0)
	assert.True(t, errors.Is(err, calc.ErrDivisionByZero))
}

func TestCalculateUnknownOperator(t *testing.T) {
	_, err := calc.Calculate(1, "&", 2)

	var opErr *calc.UnknownOperatorError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "&", opErr.Operator)
	assert.Contains(t, err.Error(), calc.Operators)
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "5", calc.FormatResult(5))
	assert.Equal(t, "-3", calc.FormatResult(-3))
	assert.Equal(t, "2.5", calc.FormatResult(2.5))
	assert.Equal(t, "0.1", calc.FormatResult(0.1))
	assert.Equal(t, "0", calc.FormatResult(math.Copysign(0, -1)))
	assert.Equal(t, "NaN", calc.FormatResult(math.NaN()))
	assert.Equal(t, "100000000000000000000", calc.FormatResult(1e20))
}

func TestRunTranscript(t *testing.T) {
	input := strings.Join([]string{
		"5 + 3",
		"",
		"10 / 4",
		"1 / 0",
		"2 & 3",
		"abc + 1",
		"5 +",
		"quit",
		"1 + 1",
	}, "\n")

	var out strings.Builder
	require.NoError(t, calc.Run(strings.NewReader(input), &out))

	expected := strings.Join([]string{
		"Simple Calculator - type an expression or 'quit' to exit",
		"> = 8",
		"> > = 2.5",
		"> Error: Division by zero",
		"> Unknown operator: &",
		"Supported operators: + - * / ^ %",
		"> Invalid number: abc",
		"> Usage: <number> <operator> <number>",
		"> Goodbye!",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestRunStopsAtEOF(t *testing.T) {
	var out strings.Builder
	require.NoError(t, calc.Run(strings.NewReader("2 ^ 3"), &out))
	assert.True(t, strings.HasSuffix(out.String(), "> = 8\n> "))
}
