// Package testutil provides shared fakes for packex tests.
package testutil

import (
	"github.com/arthur-debert/packex/pkg/console"
	"github.com/arthur-debert/packex/pkg/errors"
)

// ScriptedGateway is a console.Gateway fake fed from a fixed queue of
// numeric inputs. It records everything displayed and every prompt
// issued, so tests can assert on the full transcript.
type ScriptedGateway struct {
	Inputs    []float64
	Displayed []string
	Prompts   []string

	// InputErr is returned once the input queue runs dry. When nil, an
	// INPUT_CLOSED error is returned instead, mimicking a closed stream.
	InputErr error
}

var _ console.Gateway = (*ScriptedGateway)(nil)

// NewScriptedGateway creates a gateway that will answer prompts with the
// given values, in order.
func NewScriptedGateway(inputs ...float64) *ScriptedGateway {
	return &ScriptedGateway{Inputs: inputs}
}

// Display records the message
func (g *ScriptedGateway) Display(message string) {
	g.Displayed = append(g.Displayed, message)
}

// NumericInput records the prompt and pops the next scripted value
func (g *ScriptedGateway) NumericInput(prompt string) (float64, error) {
	g.Prompts = append(g.Prompts, prompt)

	if len(g.Inputs) == 0 {
		if g.InputErr != nil {
			return 0, g.InputErr
		}
		return 0, errors.New(errors.ErrInputClosed, "scripted input exhausted")
	}

	value := g.Inputs[0]
	g.Inputs = g.Inputs[1:]
	return value, nil
}
