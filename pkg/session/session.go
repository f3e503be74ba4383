// Package session drives one estimation session from welcome message to
// termination. The flow is a small state machine: collect the weight,
// validate it, collect the three dimensions, validate those, then compute
// and report the cost. Either validation failure aborts the session early
// with the rejection message and no cost reported.
package session

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/packex/pkg/console"
	"github.com/arthur-debert/packex/pkg/errors"
	"github.com/arthur-debert/packex/pkg/logging"
	"github.com/arthur-debert/packex/pkg/shipping"
)

// State identifies a step of the session state machine
type State string

const (
	StateStart              State = "start"
	StateCollectWeight      State = "collect-weight"
	StateValidateWeight     State = "validate-weight"
	StateCollectDimensions  State = "collect-dimensions"
	StateValidateDimensions State = "validate-dimensions"
	StateComputeAndReport   State = "compute-and-report"

	// Terminal states. Abort means a validation failure ended the
	// session early; End means a cost was reported. Both exit cleanly.
	StateAbort State = "abort"
	StateEnd   State = "end"
)

// Session owns one package being estimated and the collaborators that
// collect, validate and price it. Not safe for concurrent use; a session
// is single-owner by design.
type Session struct {
	gateway    console.Gateway
	validator  shipping.Validator
	calculator shipping.Calculator

	state  State
	pkg    shipping.Package
	logger zerolog.Logger
}

// New creates a session in the Start state
func New(gateway console.Gateway, validator shipping.Validator, calculator shipping.Calculator) *Session {
	return &Session{
		gateway:    gateway,
		validator:  validator,
		calculator: calculator,
		state:      StateStart,
		logger:     logging.GetLogger("session"),
	}
}

// State returns the current state of the session
func (s *Session) State() State {
	return s.state
}

// Package returns the package as collected so far
func (s *Session) Package() shipping.Package {
	return s.pkg
}

// Run drives the state machine until a terminal state. Validation
// failures are a normal outcome and return nil; the only error is a
// gateway failure (input stream closed mid-session).
func (s *Session) Run() error {
	for {
		switch s.state {
		case StateStart:
			s.gateway.Display(MsgWelcome)
			s.state = StateCollectWeight

		case StateCollectWeight:
			weight, err := s.gateway.NumericInput(MsgPromptWeight)
			if err != nil {
				return err
			}
			s.pkg.Weight = weight
			s.state = StateValidateWeight

		case StateValidateWeight:
			if err := s.validator.ValidateWeight(s.pkg.Weight); err != nil {
				s.abort(err)
				continue
			}
			s.state = StateCollectDimensions

		case StateCollectDimensions:
			if err := s.collectDimensions(); err != nil {
				return err
			}
			s.state = StateValidateDimensions

		case StateValidateDimensions:
			if err := s.validator.ValidateDimensions(s.pkg.Width, s.pkg.Height, s.pkg.Length); err != nil {
				s.abort(err)
				continue
			}
			s.state = StateComputeAndReport

		case StateComputeAndReport:
			cost := s.calculator.Cost(s.pkg)
			s.logger.Info().Float64("cost", cost).Msg("Estimate computed")
			s.gateway.Display(fmt.Sprintf(MsgCostFormat, cost))
			s.gateway.Display(MsgThankYou)
			s.state = StateEnd

		case StateAbort, StateEnd:
			return nil

		default:
			return errors.Newf(errors.ErrInternal, "session reached unknown state %q", s.state)
		}
	}
}

// collectDimensions prompts for width, height and length, in that order
func (s *Session) collectDimensions() error {
	prompts := []struct {
		prompt string
		field  *float64
	}{
		{MsgPromptWidth, &s.pkg.Width},
		{MsgPromptHeight, &s.pkg.Height},
		{MsgPromptLength, &s.pkg.Length},
	}

	for _, p := range prompts {
		value, err := s.gateway.NumericInput(p.prompt)
		if err != nil {
			return err
		}
		*p.field = value
	}
	return nil
}

// abort shows the rejection message and ends the session early
func (s *Session) abort(err error) {
	s.logger.Info().
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Session aborted on validation failure")
	s.gateway.Display(errors.UserMessage(err))
	s.state = StateAbort
}
