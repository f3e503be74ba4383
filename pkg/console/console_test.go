package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/packex/pkg/console"
	"github.com/arthur-debert/packex/pkg/errors"
)

func TestDisplayWritesLine(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out)

	c.Display("Thank you!")
	assert.Equal(t, "Thank you!\n", out.String())
}

func TestNumericInputParsesFirstValidLine(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("12.5\n"), &out)

	value, err := c.NumericInput("Please enter the package weight:")
	require.NoError(t, err)
	assert.Equal(t, 12.5, value)
	assert.Equal(t, "Please enter the package weight:\n", out.String())
}

func TestNumericInputTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("  42  \n"), &out)

	value, err := c.NumericInput("prompt:")
	require.NoError(t, err)
	assert.Equal(t, 42.0, value)
}

func TestNumericInputRepromptsOnMalformedInput(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("abc\n\nten\n10\n"), &out)

	value, err := c.NumericInput("Please enter the package weight:")
	require.NoError(t, err)
	assert.Equal(t, 10.0, value)

	// One prompt per attempt, one invalid-input notice per rejection
	assert.Equal(t, 4, strings.Count(out.String(), "Please enter the package weight:"))
	assert.Equal(t, 3, strings.Count(out.String(), console.MsgInvalidInput))
}

func TestNumericInputClosedStream(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader(""), &out)

	_, err := c.NumericInput("prompt:")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInputClosed))
}

func TestNumericInputSequentialReads(t *testing.T) {
	var out bytes.Buffer
	c := console.New(strings.NewReader("1\n2\n3\n"), &out)

	for want := 1.0; want <= 3; want++ {
		value, err := c.NumericInput("next:")
		require.NoError(t, err)
		assert.Equal(t, want, value)
	}
}
