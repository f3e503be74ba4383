// Package console implements the terminal gateway the estimation session
// talks through: displaying lines and prompting for numeric input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/packex/pkg/errors"
	"github.com/arthur-debert/packex/pkg/logging"
)

// Gateway is the prompt/read/print interface consumed by the session.
// Implementations must keep re-prompting on malformed numeric input, so
// NumericInput only errors when the input stream itself gives out.
type Gateway interface {
	Display(message string)
	NumericInput(prompt string) (float64, error)
}

// Console is a Gateway over an input reader and output writer,
// normally stdin and stdout.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Console reading from in and writing to out
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Display writes a single line of text to the user
func (c *Console) Display(message string) {
	fmt.Fprintln(c.out, message)
}

// NumericInput writes the prompt, reads one line and parses it as a
// decimal number. Malformed input is reported and re-prompted
// indefinitely; the only error condition is a closed or failed input
// stream, returned as an INPUT_CLOSED coded error.
func (c *Console) NumericInput(prompt string) (float64, error) {
	logger := logging.GetLogger("console")

	for {
		c.Display(prompt)

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, errors.Wrap(err, errors.ErrInputClosed, "input stream failed")
			}
			return 0, errors.New(errors.ErrInputClosed, "input stream closed")
		}

		raw := strings.TrimSpace(c.in.Text())
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Debug().Str("input", raw).Msg("Rejected non-numeric input")
			c.Display(MsgInvalidInput)
			continue
		}

		return value, nil
	}
}
